package bitcodec

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/fpverif/go-fp-golden/types"
	"github.com/fpverif/go-fp-golden/util"
)

// Pattern renders the low f.Width bits as a fixed-width binary string
func Pattern(bits uint32, f types.Format) string {
	s := strconv.FormatUint(uint64(bits), 2)
	if len(s) >= f.Width {
		return s[len(s)-f.Width:]
	}
	return strings.Repeat("0", f.Width-len(s)) + s
}

// Encode rounds |mag| to the nearest value of format f, ties to even, and
// returns its bit pattern with the sign bit set when negative is true.
// The sign of mag itself is ignored so that signed zeros can be encoded.
func Encode(negative bool, mag *big.Rat, f types.Format) string {
	return Pattern(EncodeBits(negative, mag, f), f)
}

// EncodeBits is Encode returning the raw bits
func EncodeBits(negative bool, mag *big.Rat, f types.Format) uint32 {
	if mag.Sign() == 0 {
		return ZeroBits(negative, f)
	}
	num := new(big.Int).Abs(mag.Num())
	den := new(big.Int).Set(mag.Denom())

	exp := util.Log2Floor(num, den)
	if exp < f.MinExponent() {
		// gradual underflow: subnormals share the quantum of the smallest normal
		exp = f.MinExponent()
	}

	sig, rem, scaledDen := util.ScaleFloor(num, den, f.MantissaBits-exp)
	rem.Lsh(rem, 1)
	switch rem.Cmp(scaledDen) {
	case 1:
		sig.Add(sig, big.NewInt(1))
	case 0:
		if sig.Bit(0) == 1 {
			sig.Add(sig, big.NewInt(1))
		}
	}
	if sig.BitLen() > f.MantissaBits+1 {
		// rounding carried out of the significand, sig is exactly 2^(m+1)
		sig.Rsh(sig, 1)
		exp++
	}
	if exp > f.MaxExponent() {
		return InfBits(negative, f)
	}

	var sign uint32
	if negative {
		sign = f.SignBit()
	}
	m := uint32(sig.Uint64())
	if m>>f.MantissaBits == 0 {
		return sign | m
	}
	biased := uint32(exp + f.Bias)
	return sign | biased<<f.MantissaBits | m&f.MantissaMask()
}
