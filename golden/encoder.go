package golden

import (
	"github.com/fpverif/go-fp-golden/bitcodec"
	"github.com/fpverif/go-fp-golden/types"
)

// selectBits picks the output pattern. The first matching rule wins:
// invalid, division by zero, overflow, underflow to zero, then the value.
func selectBits(f types.Format, flags types.Flags, toZero bool, neg, nanNeg bool, value uint32) uint32 {
	switch {
	case flags.Invalid:
		return bitcodec.NaNBits(nanNeg, f)
	case flags.DivByZero, flags.Overflow:
		return bitcodec.InfBits(neg, f)
	case flags.Underflow && toZero:
		return bitcodec.ZeroBits(neg, f)
	default:
		return value
	}
}
