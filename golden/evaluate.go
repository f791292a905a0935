package golden

import (
	"fmt"

	"github.com/fpverif/go-fp-golden/bitcodec"
	"github.com/fpverif/go-fp-golden/types"
	"golang.org/x/xerrors"
)

// Result is the expected output of the arithmetic unit for one operation
type Result struct {
	Format types.Format
	Bits   uint32
	Flags  types.Flags
}

// Pattern returns the result bit pattern
func (r Result) Pattern() string {
	return bitcodec.Pattern(r.Bits, r.Format)
}

// Expected returns the result as an expected-output record
func (r Result) Expected() types.Expected {
	return types.Expected{Result: r.Pattern(), Flags: r.Flags.String()}
}

func (r Result) String() string {
	return r.Pattern() + " " + r.Flags.String()
}

// NaNSign selects the sign bit attached to NaN results
type NaNSign uint8

const (
	// NaNSignPositive always emits the positive canonical NaN
	NaNSignPositive NaNSign = iota
	// NaNSignResolved signs the canonical NaN with the operation's sign rule
	NaNSignResolved
)

// ParseNaNSign parses "positive" or "resolved"
func ParseNaNSign(s string) (NaNSign, error) {
	switch s {
	case "", "positive":
		return NaNSignPositive, nil
	case "resolved":
		return NaNSignResolved, nil
	}
	return 0, xerrors.Errorf("unknown NaN sign policy %q, expected positive or resolved", s)
}

func (n NaNSign) String() string {
	if n == NaNSignResolved {
		return "resolved"
	}
	return "positive"
}

// Evaluator computes golden results. The zero value is ready to use and emits
// positive NaNs. An Evaluator holds no mutable state and may be shared.
type Evaluator struct {
	NaNSign NaNSign
}

// Evaluate decodes the operands and opcode and computes the golden result.
// The format is inferred from the operand width.
func Evaluate(a, b, opcode string) (Result, error) {
	return Evaluator{}.EvaluateVector(types.Vector{A: a, B: b, Opcode: opcode})
}

// EvaluateVector decodes one input record and computes its golden result.
// Malformed records fail with an error matching types.ErrFormat.
func (e Evaluator) EvaluateVector(v types.Vector) (Result, error) {
	a, b, op, err := DecodeVector(v)
	if err != nil {
		return Result{}, err
	}
	return e.Evaluate(a, b, op)
}

// Evaluate computes the golden result of a op b
func (e Evaluator) Evaluate(a, b bitcodec.Operand, op types.Operation) (Result, error) {
	if err := checkOperands(a, b); err != nil {
		return Result{}, err
	}
	res, _ := e.evaluate(a, b, op)
	return res, nil
}

func (e Evaluator) evaluate(a, b bitcodec.Operand, op types.Operation) (Result, *arithmetic) {
	f := a.Format
	class := Classify(a, b, op)
	neg := ResolveSign(a, b, op)
	nanNeg := e.NaNSign == NaNSignResolved && neg

	var ar *arithmetic
	flags := class.Flags()
	value := uint32(0)
	toZero := false
	switch class {
	case ClassNaNPropagate, ClassZeroOverZero, ClassInvalidInfCombo, ClassDivByZero:
	case ClassNormal:
		computed := compute(a, b, op)
		ar = &computed
		flags = flags.Or(computed.flags)
		value = computed.bits
		toZero = computed.outcome == outcomeUnderflowZero
		neg = computed.neg
	default:
		panic(fmt.Sprintf("unhandled class %d", class))
	}

	return Result{
		Format: f,
		Bits:   selectBits(f, flags, toZero, neg, nanNeg, value),
		Flags:  flags,
	}, ar
}

// DecodeVector decodes the operands and opcode of an input record. The width
// of operand a selects the format and operand b must share it.
func DecodeVector(v types.Vector) (bitcodec.Operand, bitcodec.Operand, types.Operation, error) {
	var zero bitcodec.Operand
	a, err := bitcodec.DecodeAny(v.A)
	if err != nil {
		return zero, zero, 0, xerrors.Errorf("decoding operand a: %w", err)
	}
	b, err := bitcodec.Decode(v.B, a.Format)
	if err != nil {
		return zero, zero, 0, xerrors.Errorf("decoding operand b: %w", err)
	}
	op, err := types.ParseOperation(v.Opcode)
	if err != nil {
		return zero, zero, 0, xerrors.Errorf("decoding opcode: %w", err)
	}
	return a, b, op, nil
}

func checkOperands(a, b bitcodec.Operand) error {
	if _, err := types.FormatForWidth(a.Format.Width); err != nil {
		return err
	}
	if a.Format != b.Format {
		return &types.FormatError{Reason: fmt.Sprintf("operand formats differ: %s and %s", a.Format, b.Format)}
	}
	return nil
}
