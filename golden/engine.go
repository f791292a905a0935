package golden

import (
	"math/big"

	"github.com/fpverif/go-fp-golden/bitcodec"
	"github.com/fpverif/go-fp-golden/types"
)

// outcome is the terminal state of the arithmetic stage
type outcome uint8

const (
	// outcomeValue keeps the natively rounded value
	outcomeValue outcome = iota
	// outcomeOverflow replaces the value with a signed infinity
	outcomeOverflow
	// outcomeUnderflowZero replaces the value with a signed zero
	outcomeUnderflowZero
	// outcomeFault means the exact engine failed; the result is NaN
	outcomeFault
)

type arithmetic struct {
	outcome outcome
	flags   types.Flags
	neg     bool
	bits    uint32
	exact   exactValue
	rounded *big.Rat
}

// compute runs the exact and native evaluations of a normal-class operation
// and derives overflow, underflow and inexact from them
func compute(a, b bitcodec.Operand, op types.Operation) (res arithmetic) {
	defer func() {
		if r := recover(); r != nil {
			res = arithmetic{outcome: outcomeFault, flags: types.Flags{Invalid: true}}
		}
	}()

	f := a.Format
	exact := exactResult(a, b, op)
	if exact.inf || exact.abs.Cmp(f.MaxNormal()) > 0 {
		return arithmetic{
			outcome: outcomeOverflow,
			flags:   types.Flags{Overflow: true, Inexact: true},
			neg:     exact.neg,
			exact:   exact,
		}
	}

	rounded := bitcodec.FromBits(nativeBits(a, b, op), f)
	if !rounded.IsFinite() {
		// |exact| <= maxNormal never rounds out of range
		return arithmetic{outcome: outcomeFault, flags: types.Flags{Invalid: true}, exact: exact}
	}
	res = arithmetic{
		outcome: outcomeValue,
		neg:     exact.neg,
		bits:    rounded.Bits,
		exact:   exact,
		rounded: rounded.Abs(),
	}

	if exact.abs.Cmp(res.rounded) != 0 {
		res.flags.Inexact = true
	}
	if (op == types.Mul || op == types.Div) && guardBitsSet(exact.abs, f) {
		res.flags.Inexact = true
	}
	if exact.abs.Sign() > 0 && exact.abs.Cmp(f.MinNormal()) < 0 {
		res.flags.Underflow = true
		if rounded.IsZero() {
			res.flags.Inexact = true
			res.outcome = outcomeUnderflowZero
		}
	}
	return res
}
