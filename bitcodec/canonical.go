package bitcodec

import "github.com/fpverif/go-fp-golden/types"

// Canonical special patterns. These are emitted as fixed patterns rather than
// derived numerically so that they match existing test benches bit for bit.

func signBits(negative bool, f types.Format) uint32 {
	if negative {
		return f.SignBit()
	}
	return 0
}

// NaNBits is the quiet NaN: all-ones exponent, mantissa MSB set, rest clear
func NaNBits(negative bool, f types.Format) uint32 {
	return signBits(negative, f) | f.ExponentMask()<<f.MantissaBits | 1<<(f.MantissaBits-1)
}

// InfBits is the infinity of the given sign
func InfBits(negative bool, f types.Format) uint32 {
	return signBits(negative, f) | f.ExponentMask()<<f.MantissaBits
}

// ZeroBits is the zero of the given sign
func ZeroBits(negative bool, f types.Format) uint32 {
	return signBits(negative, f)
}

func InfPattern(negative bool, f types.Format) string {
	return Pattern(InfBits(negative, f), f)
}

func ZeroPattern(negative bool, f types.Format) string {
	return Pattern(ZeroBits(negative, f), f)
}
