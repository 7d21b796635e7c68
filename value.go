// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"math"
	"strconv"
)

// Operand is anything the generic operators accept: a Value or a Unit.
type Operand interface {
	isOperand() // Sealed
}

// Value is either a plain Number or a Quantity.
type Value interface {
	Operand

	// Float64 returns the folded magnitude, discarding any unit.
	Float64() float64

	String() string

	isValue() // Sealed
}

// Number is a dimensionless value.
type Number float64

func (n Number) Float64() float64 { return float64(n) }

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func (Number) isValue()   {}
func (Number) isOperand() {}

// normalize turns a dimensionless Unit into the Number 1.
func normalize(o Operand) Operand {
	if u, ok := o.(Unit); ok && IsIdentity(u) {
		return Number(1)
	}
	return o
}

// BinaryOp applies op ("+", "-", "*", "/" or "%") to left and right,
// dispatching on the operand variants.
func BinaryOp(op string, left, right Operand) (Operand, error) {
	if left == nil || right == nil {
		return nil, unsupportedOperand(op, left, right)
	}
	left, right = normalize(left), normalize(right)

	switch op {
	case "+":
		return add(left, right)
	case "-":
		return sub(left, right)
	case "*":
		return mul(left, right)
	case "/":
		return div(left, right)
	case "%":
		return mod(left, right)
	}
	return nil, newError(CodeUnsupportedOperand, op, "unknown operator")
}

// quantityResult drops the zero Quantity returned alongside an error.
func quantityResult(q Quantity, err error) (Operand, error) {
	if err != nil {
		return nil, err
	}
	return q, nil
}

func add(left, right Operand) (Operand, error) {
	switch l := left.(type) {
	case Number:
		switch r := right.(type) {
		case Number:
			return l + r, nil
		case Quantity:
			return nil, incompatibleUnits("add", Identity{}, r.unit)
		}
	case Quantity:
		switch r := right.(type) {
		case Number:
			return nil, incompatibleUnits("add", l.unit, Identity{})
		case Quantity:
			return quantityResult(l.Add(r))
		}
	}
	return nil, unsupportedOperand("add", left, right)
}

func sub(left, right Operand) (Operand, error) {
	switch l := left.(type) {
	case Number:
		switch r := right.(type) {
		case Number:
			return l - r, nil
		case Quantity:
			return nil, incompatibleUnits("sub", Identity{}, r.unit)
		}
	case Quantity:
		switch r := right.(type) {
		case Number:
			return nil, incompatibleUnits("sub", l.unit, Identity{})
		case Quantity:
			return quantityResult(l.Sub(r))
		}
	}
	return nil, unsupportedOperand("sub", left, right)
}

func mul(left, right Operand) (Operand, error) {
	switch l := left.(type) {
	case Number:
		switch r := right.(type) {
		case Number:
			return l * r, nil
		case Quantity:
			return r.MulNumber(float64(l)), nil
		case Unit:
			return NewQuantity(float64(l), r, 0), nil
		}
	case Quantity:
		switch r := right.(type) {
		case Number:
			return l.MulNumber(float64(r)), nil
		case Quantity:
			return l.Mul(r), nil
		case Unit:
			return NewQuantity(l.value, Mul(l.unit, r), l.exp10), nil
		}
	case Unit:
		switch r := right.(type) {
		case Number:
			return NewQuantity(float64(r), l, 0), nil
		case Quantity:
			return NewQuantity(r.value, Mul(l, r.unit), r.exp10), nil
		case Unit:
			return normalize(Mul(l, r)), nil
		}
	}
	return nil, unsupportedOperand("mul", left, right)
}

func div(left, right Operand) (Operand, error) {
	if v, ok := right.(Value); ok && v.Float64() == 0 {
		return nil, divisionByZero("div")
	}

	switch l := left.(type) {
	case Number:
		switch r := right.(type) {
		case Number:
			return l / r, nil
		case Quantity:
			inv, err := r.Reciprocal()
			if err != nil {
				return nil, err
			}
			return inv.MulNumber(float64(l)), nil
		case Unit:
			return NewQuantity(float64(l), Div(Identity{}, r), 0), nil
		}
	case Quantity:
		switch r := right.(type) {
		case Number:
			return quantityResult(l.DivNumber(float64(r)))
		case Quantity:
			return l.Div(r)
		case Unit:
			return NewQuantity(l.value, Div(l.unit, r), l.exp10), nil
		}
	case Unit:
		switch r := right.(type) {
		case Number:
			return NewQuantity(1/float64(r), l, 0), nil
		case Quantity:
			return NewQuantity(1/r.value, Div(l, r.unit), -r.exp10), nil
		case Unit:
			return normalize(Div(l, r)), nil
		}
	}
	return nil, unsupportedOperand("div", left, right)
}

func mod(left, right Operand) (Operand, error) {
	r, ok := right.(Number)
	if !ok {
		return nil, unsupportedOperand("mod", left, right)
	}
	switch l := left.(type) {
	case Number:
		if r == 0 {
			return nil, divisionByZero("mod")
		}
		return Number(floorMod(float64(l), float64(r))), nil
	case Quantity:
		return quantityResult(l.Mod(float64(r)))
	}
	return nil, unsupportedOperand("mod", left, right)
}

// Raise returns base**p. Raising a Unit yields a Unit, or the Number 1 when
// p is zero.
func Raise(base Operand, p Power) (Operand, error) {
	switch b := normalize(base).(type) {
	case Number:
		return Number(math.Pow(float64(b), p.Float64())), nil
	case Quantity:
		return b.Pow(p), nil
	case Unit:
		return normalize(PowUnit(b, p)), nil
	}
	return nil, unsupportedOperand("pow", base, p)
}

// UnaryOp applies op to v: "chs" (negate), "abs", "round", "trunc",
// "floor", "ceil", or "n" which drops the unit.
func UnaryOp(op string, v Value) (Value, error) {
	switch x := v.(type) {
	case Number:
		f := float64(x)
		switch op {
		case "chs":
			return -x, nil
		case "abs":
			return Number(math.Abs(f)), nil
		case "round":
			return Number(math.RoundToEven(f)), nil
		case "trunc":
			return Number(math.Trunc(f)), nil
		case "floor":
			return Number(math.Floor(f)), nil
		case "ceil":
			return Number(math.Ceil(f)), nil
		case "n":
			return x, nil
		}
	case Quantity:
		switch op {
		case "chs":
			return x.Neg(), nil
		case "abs":
			return x.Abs(), nil
		case "round":
			return x.Round(), nil
		case "trunc":
			return x.Trunc(), nil
		case "floor":
			return x.Floor(), nil
		case "ceil":
			return x.Ceil(), nil
		case "n":
			return Number(x.Float64()), nil
		}
	default:
		return nil, unsupportedOperand(op, v, nil)
	}
	return nil, newError(CodeUnsupportedOperand, op, "unknown operator")
}

// Compare orders two Values of the same unit. Numbers compare with
// Numbers only.
func Compare(left, right Operand) (int, error) {
	switch l := normalize(left).(type) {
	case Number:
		switch r := normalize(right).(type) {
		case Number:
			return cmpFloat(float64(l), float64(r)), nil
		case Quantity:
			return 0, incompatibleUnits("compare", Identity{}, r.unit)
		}
	case Quantity:
		switch r := normalize(right).(type) {
		case Number:
			return 0, incompatibleUnits("compare", l.unit, Identity{})
		case Quantity:
			return l.Cmp(r)
		}
	}
	return 0, unsupportedOperand("compare", left, right)
}

// Equal reports whether two operands are equal. It never fails: operands of
// different units or kinds are simply unequal.
func Equal(left, right Operand) bool {
	switch l := normalize(left).(type) {
	case Number:
		r, ok := normalize(right).(Number)
		return ok && l == r
	case Quantity:
		r, ok := normalize(right).(Quantity)
		return ok && l.Equal(r)
	case Unit:
		r, ok := normalize(right).(Unit)
		return ok && SameUnit(l, r)
	}
	return false
}
