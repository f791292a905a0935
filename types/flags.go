package types

// FlagCount is the number of exception flags in a flag vector
const FlagCount = 5

// Flags is the exception flag vector raised by one operation.
// Flags are independent; several may be set at once.
type Flags struct {
	Invalid   bool
	DivByZero bool
	Overflow  bool
	Underflow bool
	Inexact   bool
}

// FlagNames lists the flags in their fixed wire order
var FlagNames = [FlagCount]string{"invalid", "div0", "overflow", "underflow", "inexact"}

// Slice returns the flags in wire order: invalid, div0, overflow, underflow, inexact
func (f Flags) Slice() [FlagCount]bool {
	return [FlagCount]bool{f.Invalid, f.DivByZero, f.Overflow, f.Underflow, f.Inexact}
}

// String renders the flags as the 5 character string used in expected-output files
func (f Flags) String() string {
	var buf [FlagCount]byte
	for i, set := range f.Slice() {
		buf[i] = '0'
		if set {
			buf[i] = '1'
		}
	}
	return string(buf[:])
}

// Or returns the union of both flag vectors
func (f Flags) Or(o Flags) Flags {
	return Flags{
		Invalid:   f.Invalid || o.Invalid,
		DivByZero: f.DivByZero || o.DivByZero,
		Overflow:  f.Overflow || o.Overflow,
		Underflow: f.Underflow || o.Underflow,
		Inexact:   f.Inexact || o.Inexact,
	}
}

// ParseFlags parses a 5 character flag string
func ParseFlags(s string) (Flags, error) {
	if len(s) != FlagCount {
		return Flags{}, &FormatError{Input: s, Reason: "flag vector must have 5 characters"}
	}
	var set [FlagCount]bool
	for i := 0; i < FlagCount; i++ {
		switch s[i] {
		case '0':
		case '1':
			set[i] = true
		default:
			return Flags{}, &FormatError{Input: s, Reason: "invalid character in flag vector"}
		}
	}
	return Flags{
		Invalid:   set[0],
		DivByZero: set[1],
		Overflow:  set[2],
		Underflow: set[3],
		Inexact:   set[4],
	}, nil
}
