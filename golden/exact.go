package golden

import (
	"math/big"

	"github.com/fpverif/go-fp-golden/bitcodec"
	"github.com/fpverif/go-fp-golden/types"
	"github.com/fpverif/go-fp-golden/util"
)

// exactValue is the true result of an operation: an exact rational magnitude,
// or an infinity when an operand is infinite
type exactValue struct {
	inf bool
	neg bool
	abs *big.Rat
}

// exactResult computes a op b without rounding. It must only be called for
// operand pairs the classifier marked ClassNormal.
func exactResult(a, b bitcodec.Operand, op types.Operation) exactValue {
	neg := ResolveSign(a, b, op)
	if a.IsInf() || b.IsInf() {
		if op == types.Div && b.IsInf() {
			return exactValue{neg: neg, abs: new(big.Rat)}
		}
		return exactValue{inf: true, neg: neg}
	}

	x, y := a.Rat(), b.Rat()
	r := new(big.Rat)
	switch op {
	case types.Add:
		r.Add(x, y)
	case types.Sub:
		r.Sub(x, y)
	case types.Mul:
		r.Mul(x, y)
	case types.Div:
		r.Quo(x, y)
	}
	if r.Sign() != 0 {
		neg = r.Sign() < 0
	}
	return exactValue{neg: neg, abs: r.Abs(r)}
}

// guardBitsSet reports whether any of the types.GuardBits bits following the
// last stored mantissa bit of |x| is set. Below the normal range the window
// follows the subnormal quantum.
func guardBitsSet(abs *big.Rat, f types.Format) bool {
	if abs.Sign() == 0 {
		return false
	}
	num, den := abs.Num(), abs.Denom()
	exp := util.Max(util.Log2Floor(num, den), f.MinExponent())
	window, _, _ := util.ScaleFloor(num, den, f.MantissaBits+types.GuardBits-exp)
	mask := big.NewInt(1<<types.GuardBits - 1)
	return window.And(window, mask).Sign() != 0
}

// decimal renders x with the reference precision of f
func decimal(x *big.Rat, neg bool, f types.Format) string {
	digits := f.ReferenceDigits()
	s := new(big.Float).SetPrec(uint(digits) * 4).SetRat(x).Text('g', digits)
	if neg {
		return "-" + s
	}
	return s
}
