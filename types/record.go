package types

import "strings"

// Vector is one input record: two operand bit patterns and an opcode,
// kept verbatim so malformed input can be reported as written.
type Vector struct {
	A      string
	B      string
	Opcode string
}

// ParseVector parses a `<bits_a> <bits_b> <opcode>` line.
// Only the record shape is checked here; operands are validated when decoded.
func ParseVector(line string) (Vector, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Vector{}, &FormatError{Input: line, Reason: "expected 3 fields"}
	}
	if len(fields[0]) != len(fields[1]) {
		return Vector{}, &FormatError{Input: line, Reason: "operand widths differ"}
	}
	return Vector{A: fields[0], B: fields[1], Opcode: fields[2]}, nil
}

func (v Vector) String() string {
	return v.A + " " + v.B + " " + v.Opcode
}

// Expected is one output record: the result bit pattern and the flag vector
type Expected struct {
	Result string
	Flags  string
}

// ParseExpected parses a `<result_bits> <flags>` line
func ParseExpected(line string) (Expected, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Expected{}, &FormatError{Input: line, Reason: "expected 2 fields"}
	}
	if _, err := ParseFlags(fields[1]); err != nil {
		return Expected{}, err
	}
	return Expected{Result: fields[0], Flags: fields[1]}, nil
}

func (e Expected) String() string {
	return e.Result + " " + e.Flags
}
