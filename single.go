// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"fmt"
)

// Op selects how two units of the same dimension are combined.
type Op int

const (
	OpMul Op = iota
	OpDiv
)

func (op Op) String() string {
	if op == OpDiv {
		return "/"
	}
	return "*"
}

// Single is one dimension raised to a non-zero power, e.g. m or (s^2).
// The dimension is identified by name only; any SI prefix has already been
// folded into a Quantity's exp10.
type Single struct {
	name  string
	power Power
}

// NewSingle builds the unit name^p. A zero power yields Identity and a
// negative power yields an Expr holding name^-p in its denominator.
func NewSingle(name string, p Power) (Unit, error) {
	if name == "" {
		return nil, invalidArgument("NewSingle", "empty unit name")
	}
	return single(name, p), nil
}

// single is NewSingle for names already known to be valid.
func single(name string, p Power) Unit {
	switch p.Sign() {
	case 0:
		return Identity{}
	case -1:
		return Expr{den: []Single{{name: name, power: p.Neg()}}}
	default:
		return Single{name: name, power: p}
	}
}

// isZero reports whether s is the zero Single, which stands for Identity.
func (s Single) isZero() bool {
	return s.name == "" || s.power.IsZero()
}

// Name returns the dimension name.
func (s Single) Name() string { return s.name }

// Power returns the exponent.
func (s Single) Power() Power { return s.power }

// Pow raises s to p, multiplying the exponents.
func (s Single) Pow(p Power) Unit {
	if s.isZero() {
		return Identity{}
	}
	if p.IsOne() {
		return s
	}
	return single(s.name, s.power.Mul(p))
}

// SameDimension reports whether s and other name the same dimension,
// regardless of power.
func (s Single) SameDimension(other Single) bool {
	return s.name == other.name
}

// Equal reports whether s and other have the same name and power.
func (s Single) Equal(other Single) bool {
	return s.name == other.name && s.power.Equal(other.power)
}

// Combine adds (OpMul) or subtracts (OpDiv) the powers of two units of the
// same dimension. The result may be Identity when the powers cancel, or an
// Expr when the resulting power is negative.
func (s Single) Combine(other Single, op Op) (Unit, error) {
	if !s.SameDimension(other) {
		return nil, newError(CodeIncompatibleUnits, "Combine", "'%s' %s '%s' across dimensions", s, op, other)
	}
	return combine(s, other, op), nil
}

func combine(s, other Single, op Op) Unit {
	if op == OpDiv {
		return single(s.name, s.power.Sub(other.power))
	}
	return single(s.name, s.power.Add(other.power))
}

// Numerator returns s itself, or nothing for the zero Single.
func (s Single) Numerator() []Single {
	if s.isZero() {
		return nil
	}
	return []Single{s}
}

// Denominator is always empty for a Single.
func (s Single) Denominator() []Single { return nil }

// key identifies s for multiset comparisons.
func (s Single) key() string {
	return s.name + "^" + s.power.String()
}

func (s Single) String() string {
	if s.isZero() {
		return ""
	}
	if s.power.IsOne() {
		return s.name
	}
	return fmt.Sprintf("(%s^%s)", s.name, s.power)
}

func (Single) isUnit()    {}
func (Single) isOperand() {}
