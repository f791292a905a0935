package bitcodec

import (
	"math/big"

	"github.com/fpverif/go-fp-golden/types"
)

// Class is the IEEE-754 category of a decoded operand
type Class uint8

const (
	Zero Class = iota
	Subnormal
	Normal
	Infinity
	NaN
)

func (c Class) String() string {
	switch c {
	case Zero:
		return "zero"
	case Subnormal:
		return "subnormal"
	case Normal:
		return "normal"
	case Infinity:
		return "infinity"
	case NaN:
		return "nan"
	}
	return "unknown"
}

// Operand is a decoded bit pattern
type Operand struct {
	Format  types.Format
	Pattern string
	Bits    uint32
	Class   Class
}

// Negative reports whether the sign bit is set
func (o Operand) Negative() bool {
	return o.Bits&o.Format.SignBit() != 0
}

// Exponent returns the biased exponent field
func (o Operand) Exponent() uint32 {
	return (o.Bits >> o.Format.MantissaBits) & o.Format.ExponentMask()
}

// Mantissa returns the stored mantissa field
func (o Operand) Mantissa() uint32 {
	return o.Bits & o.Format.MantissaMask()
}

// Magnitude returns the pattern with the sign bit cleared. For non-NaN operands
// comparing magnitudes as integers orders them by absolute value.
func (o Operand) Magnitude() uint32 {
	return o.Bits &^ o.Format.SignBit()
}

func (o Operand) IsZero() bool {
	return o.Class == Zero
}

func (o Operand) IsInf() bool {
	return o.Class == Infinity
}

func (o Operand) IsNaN() bool {
	return o.Class == NaN
}

func (o Operand) IsFinite() bool {
	return o.Class == Zero || o.Class == Subnormal || o.Class == Normal
}

// Abs returns the exact absolute value of a finite operand, nil otherwise
func (o Operand) Abs() *big.Rat {
	f := o.Format
	var sig *big.Int
	var exp int
	switch o.Class {
	case Zero:
		return new(big.Rat)
	case Subnormal:
		sig = new(big.Int).SetUint64(uint64(o.Mantissa()))
		exp = f.MinExponent() - f.MantissaBits
	case Normal:
		sig = new(big.Int).SetUint64(uint64(o.Mantissa() | 1<<f.MantissaBits))
		exp = int(o.Exponent()) - f.Bias - f.MantissaBits
	default:
		return nil
	}
	if exp >= 0 {
		return new(big.Rat).SetInt(sig.Lsh(sig, uint(exp)))
	}
	return new(big.Rat).SetFrac(sig, new(big.Int).Lsh(big.NewInt(1), uint(-exp)))
}

// Rat returns the exact signed value of a finite operand, nil otherwise.
// Both zeros map to 0.
func (o Operand) Rat() *big.Rat {
	r := o.Abs()
	if r != nil && o.Negative() {
		r.Neg(r)
	}
	return r
}

func (o Operand) String() string {
	return o.Pattern + " (" + o.Class.String() + ")"
}
