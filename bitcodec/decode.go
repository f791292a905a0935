package bitcodec

import (
	"fmt"

	"github.com/fpverif/go-fp-golden/types"
)

// Decode parses a bit pattern of the given format and classifies it.
// The pattern must have exactly f.Width characters, each '0' or '1'.
func Decode(pattern string, f types.Format) (Operand, error) {
	if _, err := types.FormatForWidth(f.Width); err != nil {
		return Operand{}, err
	}
	if len(pattern) != f.Width {
		return Operand{}, &types.FormatError{
			Input:  pattern,
			Reason: fmt.Sprintf("pattern has %d bits, %s format needs %d", len(pattern), f, f.Width),
		}
	}
	var bits uint32
	for i := 0; i < len(pattern); i++ {
		bits <<= 1
		switch pattern[i] {
		case '0':
		case '1':
			bits |= 1
		default:
			return Operand{}, &types.FormatError{
				Input:  pattern,
				Reason: fmt.Sprintf("invalid character %q at position %d", pattern[i], i),
			}
		}
	}
	return Operand{Format: f, Pattern: pattern, Bits: bits, Class: classify(bits, f)}, nil
}

// DecodeAny decodes a pattern whose format is inferred from its length
func DecodeAny(pattern string) (Operand, error) {
	f, err := types.FormatForWidth(len(pattern))
	if err != nil {
		return Operand{}, &types.FormatError{Input: pattern, Reason: fmt.Sprintf("unsupported width %d", len(pattern))}
	}
	return Decode(pattern, f)
}

// FromBits builds an operand from the low f.Width bits of bits
func FromBits(bits uint32, f types.Format) Operand {
	if f.Width < 32 {
		bits &= 1<<f.Width - 1
	}
	return Operand{Format: f, Pattern: Pattern(bits, f), Bits: bits, Class: classify(bits, f)}
}

func classify(bits uint32, f types.Format) Class {
	exp := (bits >> f.MantissaBits) & f.ExponentMask()
	mant := bits & f.MantissaMask()
	switch {
	case exp == f.ExponentMask() && mant != 0:
		return NaN
	case exp == f.ExponentMask():
		return Infinity
	case exp == 0 && mant == 0:
		return Zero
	case exp == 0:
		return Subnormal
	default:
		return Normal
	}
}
