package golden

import (
	"github.com/fpverif/go-fp-golden/bitcodec"
	"github.com/fpverif/go-fp-golden/types"
)

// ResolveSign returns the sign of a op b, true meaning negative.
// Magnitudes are compared on the patterns with the sign bit cleared.
func ResolveSign(a, b bitcodec.Operand, op types.Operation) bool {
	switch op {
	case types.Add:
		return sumSign(a.Negative(), a.Magnitude(), b.Negative(), b.Magnitude())
	case types.Sub:
		// a - b is a + (-b)
		return sumSign(a.Negative(), a.Magnitude(), !b.Negative(), b.Magnitude())
	default:
		return a.Negative() != b.Negative()
	}
}

// sumSign is the sign of a sum: the common sign, or the sign of the larger
// magnitude with ties going to the left operand
func sumSign(negA bool, magA uint32, negB bool, magB uint32) bool {
	if negA == negB {
		return negA
	}
	if magB > magA {
		return negB
	}
	return negA
}
