package types

import (
	"fmt"
	"math/big"
)

// GuardBits is the width of the window examined beyond the stored mantissa
// when deciding whether a product or quotient was rounded.
const GuardBits = 8

// Format describes one of the two supported IEEE-754 binary interchange formats.
// Only Half and Single exist; the zero Format is not valid.
type Format struct {
	Width        int
	ExponentBits int
	MantissaBits int
	Bias         int
}

var (
	// Half is IEEE-754 binary16: 1 sign, 5 exponent, 10 mantissa bits
	Half = Format{Width: 16, ExponentBits: 5, MantissaBits: 10, Bias: 15}
	// Single is IEEE-754 binary32: 1 sign, 8 exponent, 23 mantissa bits
	Single = Format{Width: 32, ExponentBits: 8, MantissaBits: 23, Bias: 127}
)

// FormatForWidth returns the format of the given bit width
func FormatForWidth(width int) (Format, error) {
	switch width {
	case Half.Width:
		return Half, nil
	case Single.Width:
		return Single, nil
	default:
		return Format{}, &FormatError{Reason: fmt.Sprintf("unsupported width %d", width)}
	}
}

func (f Format) String() string {
	switch f {
	case Half:
		return "half"
	case Single:
		return "single"
	}
	return fmt.Sprintf("format(%d)", f.Width)
}

// SignBit returns the mask of the sign bit
func (f Format) SignBit() uint32 {
	return 1 << (f.Width - 1)
}

// ExponentMask returns the all-ones biased exponent value
func (f Format) ExponentMask() uint32 {
	return 1<<f.ExponentBits - 1
}

// MantissaMask returns the mask of the stored mantissa bits
func (f Format) MantissaMask() uint32 {
	return 1<<f.MantissaBits - 1
}

// MinExponent is the unbiased exponent of the smallest normal number
func (f Format) MinExponent() int {
	return 1 - f.Bias
}

// MaxExponent is the unbiased exponent of the largest normal number
func (f Format) MaxExponent() int {
	return int(f.ExponentMask()) - 1 - f.Bias
}

// MaxNormal returns the largest finite value, (2 - 2^-m) * 2^emax.
// A fresh value is returned on every call.
func (f Format) MaxNormal() *big.Rat {
	num := new(big.Int).Lsh(big.NewInt(1), uint(f.MantissaBits+1))
	num.Sub(num, big.NewInt(1))
	return ldexp(num, f.MaxExponent()-f.MantissaBits)
}

// MinNormal returns the smallest positive normal value, 2^emin.
// A fresh value is returned on every call.
func (f Format) MinNormal() *big.Rat {
	return ldexp(big.NewInt(1), f.MinExponent())
}

// ReferenceDigits is the number of decimal digits the exact reference value
// is rendered with; enough that the reference itself never rounds a result
// of this format.
func (f Format) ReferenceDigits() int {
	return f.MantissaBits + 3*GuardBits + 50
}

// ldexp returns n * 2^exp as an exact rational
func ldexp(n *big.Int, exp int) *big.Rat {
	if exp >= 0 {
		return new(big.Rat).SetInt(new(big.Int).Lsh(n, uint(exp)))
	}
	den := new(big.Int).Lsh(big.NewInt(1), uint(-exp))
	return new(big.Rat).SetFrac(n, den)
}
