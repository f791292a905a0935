package types

import "fmt"

// FormatError reports a record or bit pattern that cannot be decoded:
// an unsupported width, a wrong length, a character outside {'0','1'},
// an unknown opcode or a malformed record line.
type FormatError struct {
	Input  string
	Reason string
}

// ErrFormat matches any *FormatError with errors.Is
var ErrFormat = &FormatError{Reason: "unknown"}

func (fe *FormatError) Error() string {
	if fe.Input == "" {
		return "format error: " + fe.Reason
	}
	return fmt.Sprintf("format error: %s: %q", fe.Reason, fe.Input)
}

func (fe *FormatError) Is(err error) bool {
	_, ok := err.(*FormatError)
	return ok
}
