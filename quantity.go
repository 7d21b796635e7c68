// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"math"
	"strconv"
)

// Quantity is value × 10^exp10 expressed in the unprefixed representation of
// unit. The unit is never Identity; see NewQuantity.
type Quantity struct {
	value float64
	unit  Unit
	exp10 int
}

// NewQuantity returns the Quantity value × 10^exp10 unit, or the plain
// Number value × 10^exp10 when unit is nil or Identity.
func NewQuantity(value float64, unit Unit, exp10 int) Value {
	if IsIdentity(unit) {
		if value == 0 {
			return Number(0)
		}
		return Number(value * math.Pow10(exp10))
	}
	return Quantity{value: value, unit: unit, exp10: exp10}
}

// Value returns the stored (unfolded) value.
func (q Quantity) Value() float64 { return q.value }

// Unit returns the unit expression.
func (q Quantity) Unit() Unit { return q.unit }

// Exp10 returns the decimal scale exponent.
func (q Quantity) Exp10() int { return q.exp10 }

// Float64 returns value × 10^exp10, discarding the unit.
func (q Quantity) Float64() float64 {
	if q.value == 0 {
		return 0
	}
	return q.value * math.Pow10(q.exp10)
}

// Int64 returns the folded value truncated toward zero, discarding the unit.
func (q Quantity) Int64() int64 {
	return int64(q.Float64())
}

// Complex128 returns the folded value as a complex number, discarding the unit.
func (q Quantity) Complex128() complex128 {
	return complex(q.Float64(), 0)
}

// HasSameUnit reports whether q and other carry the same unit multisets.
func (q Quantity) HasSameUnit(other Quantity) bool {
	return SameUnit(q.unit, other.unit)
}

// Rescale returns q expressed with the given exp10. The magnitude is the
// same up to floating point rounding.
func (q Quantity) Rescale(exp10 int) Quantity {
	return Quantity{value: q.value * math.Pow10(q.exp10-exp10), unit: q.unit, exp10: exp10}
}

// rescaled returns other's value expressed at q's exp10. A zero value stays
// zero however far apart the scales are.
func (q Quantity) rescaled(other Quantity) float64 {
	if other.value == 0 {
		return 0
	}
	return other.value * math.Pow10(other.exp10-q.exp10)
}

// Add returns q + other, keeping q's unit and exp10.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	if !q.HasSameUnit(other) {
		return Quantity{}, incompatibleUnits("add", q.unit, other.unit)
	}
	return Quantity{value: q.value + q.rescaled(other), unit: q.unit, exp10: q.exp10}, nil
}

// Sub returns q - other, keeping q's unit and exp10.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	if !q.HasSameUnit(other) {
		return Quantity{}, incompatibleUnits("sub", q.unit, other.unit)
	}
	return Quantity{value: q.value - q.rescaled(other), unit: q.unit, exp10: q.exp10}, nil
}

// Mul returns q × other. The result is a Number when the units cancel.
func (q Quantity) Mul(other Quantity) Value {
	return NewQuantity(q.value*other.value, Mul(q.unit, other.unit), q.exp10+other.exp10)
}

// Div returns q / other. The result is a Number when the units cancel.
func (q Quantity) Div(other Quantity) (Value, error) {
	if other.Float64() == 0 {
		return nil, divisionByZero("div")
	}
	return NewQuantity(q.value/other.value, Div(q.unit, other.unit), q.exp10-other.exp10), nil
}

// MulNumber returns q × n.
func (q Quantity) MulNumber(n float64) Quantity {
	return Quantity{value: q.value * n, unit: q.unit, exp10: q.exp10}
}

// DivNumber returns q / n.
func (q Quantity) DivNumber(n float64) (Quantity, error) {
	if n == 0 {
		return Quantity{}, divisionByZero("div")
	}
	return Quantity{value: q.value / n, unit: q.unit, exp10: q.exp10}, nil
}

// Reciprocal returns 1 / q.
func (q Quantity) Reciprocal() (Quantity, error) {
	if q.Float64() == 0 {
		return Quantity{}, divisionByZero("div")
	}
	return Quantity{value: 1 / q.value, unit: Div(Identity{}, q.unit), exp10: -q.exp10}, nil
}

// Pow raises q to p. For integral p the scale is carried as exp10 × p; for
// other p the scale is folded into the value first and the result has
// exp10 0, since 10^(exp10 × p) is not generally a whole power of ten.
func (q Quantity) Pow(p Power) Value {
	unit := PowUnit(q.unit, p)
	if n, ok := p.Int64(); ok {
		return NewQuantity(math.Pow(q.value, float64(n)), unit, q.exp10*int(n))
	}
	return NewQuantity(math.Pow(q.Float64(), p.Float64()), unit, 0)
}

// Mod returns the folded value modulo n with the sign of n, keeping the
// unit. The result has exp10 0.
func (q Quantity) Mod(n float64) (Quantity, error) {
	if n == 0 {
		return Quantity{}, divisionByZero("mod")
	}
	return Quantity{value: floorMod(q.Float64(), n), unit: q.unit, exp10: 0}, nil
}

func floorMod(x, n float64) float64 {
	r := math.Mod(x, n)
	if r != 0 && (r < 0) != (n < 0) {
		r += n
	}
	return r
}

func (q Quantity) withValue(v float64) Quantity {
	return Quantity{value: v, unit: q.unit, exp10: q.exp10}
}

// Neg returns -q.
func (q Quantity) Neg() Quantity { return q.withValue(-q.value) }

// Abs returns |q|.
func (q Quantity) Abs() Quantity { return q.withValue(math.Abs(q.value)) }

// Round rounds the stored value half to even.
func (q Quantity) Round() Quantity { return q.withValue(math.RoundToEven(q.value)) }

// RoundTo rounds the stored value half to even at the given number of
// decimal digits; digits may be negative.
func (q Quantity) RoundTo(digits int) Quantity { return q.withValue(roundTo(q.value, digits)) }

func roundTo(v float64, digits int) float64 {
	scale := math.Pow10(digits)
	return math.RoundToEven(v*scale) / scale
}

// Trunc truncates the stored value toward zero.
func (q Quantity) Trunc() Quantity { return q.withValue(math.Trunc(q.value)) }

// Floor rounds the stored value down.
func (q Quantity) Floor() Quantity { return q.withValue(math.Floor(q.value)) }

// Ceil rounds the stored value up.
func (q Quantity) Ceil() Quantity { return q.withValue(math.Ceil(q.value)) }

// Cmp compares the folded values of q and other, returning -1, 0 or +1.
func (q Quantity) Cmp(other Quantity) (int, error) {
	if !q.HasSameUnit(other) {
		return 0, incompatibleUnits("compare", q.unit, other.unit)
	}
	return cmpFloat(q.Float64(), other.Float64()), nil
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Less reports whether q < other.
func (q Quantity) Less(other Quantity) (bool, error) {
	c, err := q.Cmp(other)
	return err == nil && c < 0, err
}

// LessEq reports whether q <= other.
func (q Quantity) LessEq(other Quantity) (bool, error) {
	c, err := q.Cmp(other)
	return err == nil && c <= 0, err
}

// Greater reports whether q > other.
func (q Quantity) Greater(other Quantity) (bool, error) {
	c, err := q.Cmp(other)
	return err == nil && c > 0, err
}

// GreaterEq reports whether q >= other.
func (q Quantity) GreaterEq(other Quantity) (bool, error) {
	c, err := q.Cmp(other)
	return err == nil && c >= 0, err
}

// Equal reports whether q and other have the same unit and folded value.
// Quantities with different units are simply unequal.
func (q Quantity) Equal(other Quantity) bool {
	return q.HasSameUnit(other) && q.Float64() == other.Float64()
}

// String renders q as "<value>[e<exp10>] <unit>", e.g. "8e2 g". Dimension
// names carry no prefix: mass is scaled to its kilogram reference, so
// "800 g" reads as 800 kg and 1 gram is "1e-3 g".
func (q Quantity) String() string {
	s := strconv.FormatFloat(q.value, 'g', -1, 64)
	if q.exp10 != 0 {
		s += "e" + strconv.Itoa(q.exp10)
	}
	return s + " " + unitString(q.unit)
}

func (Quantity) isValue()   {}
func (Quantity) isOperand() {}
