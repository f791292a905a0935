package golden

import (
	"github.com/fpverif/go-fp-golden/bitcodec"
	"github.com/fpverif/go-fp-golden/types"
)

// Class is the outcome of the special-case stage. Every class other than
// ClassNormal is terminal: no arithmetic is performed for it.
type Class uint8

const (
	ClassNormal Class = iota
	ClassNaNPropagate
	ClassZeroOverZero
	ClassDivByZero
	ClassInvalidInfCombo
)

// Classes lists every class, in precedence order after ClassNormal
var Classes = []Class{ClassNormal, ClassNaNPropagate, ClassZeroOverZero, ClassDivByZero, ClassInvalidInfCombo}

func (c Class) String() string {
	switch c {
	case ClassNormal:
		return "normal"
	case ClassNaNPropagate:
		return "nan-propagate"
	case ClassZeroOverZero:
		return "zero-over-zero"
	case ClassDivByZero:
		return "div-by-zero"
	case ClassInvalidInfCombo:
		return "invalid-inf-combo"
	}
	return "unknown"
}

// Terminal reports whether the class short-circuits the arithmetic stage
func (c Class) Terminal() bool {
	return c != ClassNormal
}

// Flags returns the flags a terminal class raises on its own
func (c Class) Flags() types.Flags {
	switch c {
	case ClassNaNPropagate, ClassZeroOverZero, ClassInvalidInfCombo:
		return types.Flags{Invalid: true}
	case ClassDivByZero:
		return types.Flags{DivByZero: true, Inexact: true}
	}
	return types.Flags{}
}

// Classify detects the IEEE special cases of a op b. Rules are applied in
// precedence order, the first match wins.
func Classify(a, b bitcodec.Operand, op types.Operation) Class {
	switch {
	case a.IsNaN() || b.IsNaN():
		return ClassNaNPropagate
	case op == types.Div && b.IsZero() && a.IsZero():
		return ClassZeroOverZero
	case op == types.Div && b.IsZero():
		return ClassDivByZero
	case op == types.Div && a.IsInf() && b.IsInf():
		return ClassInvalidInfCombo
	case op == types.Add && a.IsInf() && b.IsInf() && a.Negative() != b.Negative():
		return ClassInvalidInfCombo
	case op == types.Sub && a.IsInf() && b.IsInf() && a.Negative() == b.Negative():
		return ClassInvalidInfCombo
	case op == types.Mul && (a.IsZero() && b.IsInf() || a.IsInf() && b.IsZero()):
		return ClassInvalidInfCombo
	}
	return ClassNormal
}
