package golden

import (
	"math"

	"github.com/fpverif/go-fp-golden/bitcodec"
	"github.com/fpverif/go-fp-golden/types"
	"github.com/x448/float16"
)

// nativeBits evaluates a op b with the machine's IEEE arithmetic, rounding
// to nearest even at the operands' width. It stands in for the rounding the
// hardware performs.
//
// Half operands are widened to float32, which represents them exactly, and
// the float32 result is narrowed with float16. float32 carries 24 >= 2*11+2
// significant bits, so rounding twice gives the correctly rounded half result
// for all four operations.
func nativeBits(a, b bitcodec.Operand, op types.Operation) uint32 {
	if a.Format == types.Half {
		x := float16.Frombits(uint16(a.Bits)).Float32()
		y := float16.Frombits(uint16(b.Bits)).Float32()
		return uint32(float16.Fromfloat32(apply32(x, y, op)).Bits())
	}
	x := math.Float32frombits(a.Bits)
	y := math.Float32frombits(b.Bits)
	return math.Float32bits(apply32(x, y, op))
}

func apply32(x, y float32, op types.Operation) float32 {
	switch op {
	case types.Add:
		return float32(x + y)
	case types.Sub:
		return float32(x - y)
	case types.Mul:
		return float32(x * y)
	default:
		return float32(x / y)
	}
}
