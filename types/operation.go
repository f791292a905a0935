package types

// Operation is the 2-bit opcode of the arithmetic unit
type Operation uint8

const (
	Add Operation = 0b00
	Sub Operation = 0b01
	Mul Operation = 0b10
	Div Operation = 0b11
)

// Operations lists every opcode in code order
var Operations = []Operation{Add, Sub, Mul, Div}

// ParseOperation parses the two character opcode used in vector files
func ParseOperation(code string) (Operation, error) {
	switch code {
	case "00":
		return Add, nil
	case "01":
		return Sub, nil
	case "10":
		return Mul, nil
	case "11":
		return Div, nil
	}
	return 0, &FormatError{Input: code, Reason: "unknown opcode"}
}

// Code returns the two character opcode
func (op Operation) Code() string {
	switch op {
	case Add:
		return "00"
	case Sub:
		return "01"
	case Mul:
		return "10"
	case Div:
		return "11"
	}
	return "??"
}

func (op Operation) String() string {
	switch op {
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	case Div:
		return "div"
	}
	return "op(" + op.Code() + ")"
}
