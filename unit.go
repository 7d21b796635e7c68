// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

// Unit is one of Identity, Single or Expr. Callers that need to tell them
// apart switch on the concrete type.
type Unit interface {
	Operand

	// Numerator returns a copy of the factors with positive powers.
	Numerator() []Single

	// Denominator returns a copy of the factors written below the line.
	Denominator() []Single

	String() string

	isUnit() // Sealed
}

// Identity is the dimensionless unit 1. A Quantity never carries it: the
// Quantity collapses to a plain Number instead.
type Identity struct{}

func (Identity) Numerator() []Single   { return nil }
func (Identity) Denominator() []Single { return nil }
func (Identity) String() string        { return "" }
func (Identity) isUnit()               {}
func (Identity) isOperand()            {}

// IsIdentity reports whether u is absent or the dimensionless unit.
func IsIdentity(u Unit) bool {
	if u == nil {
		return true
	}
	if _, ok := u.(Identity); ok {
		return true
	}
	return len(u.Numerator()) == 0 && len(u.Denominator()) == 0
}

// Mul returns the normalized product a*b.
func Mul(a, b Unit) Unit {
	return merge(a, b, OpMul)
}

// Div returns the normalized quotient a/b.
func Div(a, b Unit) Unit {
	return merge(a, b, OpDiv)
}

// PowUnit raises u to p.
func PowUnit(u Unit, p Power) Unit {
	switch v := u.(type) {
	case nil, Identity:
		return Identity{}
	case Single:
		return v.Pow(p)
	case Expr:
		return v.Pow(p)
	}
	return Identity{}
}

// SameUnit reports whether a and b hold the same numerator and denominator
// multisets. Identity and nil are the same unit.
func SameUnit(a, b Unit) bool {
	if IsIdentity(a) || IsIdentity(b) {
		return IsIdentity(a) && IsIdentity(b)
	}
	return sameMultiset(a.Numerator(), b.Numerator()) &&
		sameMultiset(a.Denominator(), b.Denominator())
}

func unitString(u Unit) string {
	if IsIdentity(u) {
		return "1"
	}
	return u.String()
}
