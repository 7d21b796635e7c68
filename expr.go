// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"slices"
	"strings"

	"units/enumerable"
)

// Expr is a normalized product of Singles over a product of Singles.
//
// Invariants, maintained by merge:
//   - no dimension appears in both the numerator and the denominator
//   - no factor has power 0
//   - numerator and denominator are not both empty (that is Identity)
//
// Order within each list carries no meaning beyond a stable String form.
type Expr struct {
	num []Single
	den []Single
}

// Numerator returns a copy of the numerator factors.
func (e Expr) Numerator() []Single { return slices.Clone(e.num) }

// Denominator returns a copy of the denominator factors.
func (e Expr) Denominator() []Single { return slices.Clone(e.den) }

func factors(u Unit) (num, den []Single) {
	switch v := u.(type) {
	case nil, Identity:
		return nil, nil
	case Single:
		if v.isZero() {
			return nil, nil
		}
		return []Single{v}, nil
	case Expr:
		return v.num, v.den
	}
	return u.Numerator(), u.Denominator()
}

func indexDimension(list []Single, u Single) int {
	return slices.IndexFunc(list, u.SameDimension)
}

// merge builds left op right. The running lists are fresh copies; neither
// operand is modified.
func merge(left, right Unit, op Op) Unit {
	leftNum, leftDen := factors(left)
	num := slices.Clone(leftNum)
	den := slices.Clone(leftDen)

	rightNum, rightDen := factors(right)
	if op == OpDiv {
		rightNum, rightDen = rightDen, rightNum
	}

	for _, u := range rightNum {
		if i := indexDimension(den, u); i >= 0 {
			d := den[i]
			den = slices.Delete(den, i, i+1)
			r := combine(u, d, OpDiv)
			num = append(num, r.Numerator()...)
			den = append(den, r.Denominator()...)
		} else if i := indexDimension(num, u); i >= 0 {
			n := num[i]
			num = slices.Delete(num, i, i+1)
			r := combine(n, u, OpMul)
			num = append(num, r.Numerator()...)
			den = append(den, r.Denominator()...)
		} else {
			num = append(num, u)
		}
	}

	for _, u := range rightDen {
		if i := indexDimension(num, u); i >= 0 {
			n := num[i]
			num = slices.Delete(num, i, i+1)
			r := combine(n, u, OpDiv)
			num = append(num, r.Numerator()...)
			den = append(den, r.Denominator()...)
		} else if i := indexDimension(den, u); i >= 0 {
			d := den[i]
			den = slices.Delete(den, i, i+1)
			r := combine(d, u, OpMul)
			num = append(num, r.Denominator()...)
			den = append(den, r.Numerator()...)
		} else {
			den = append(den, u)
		}
	}

	if len(num) == 0 && len(den) == 0 {
		return Identity{}
	}
	return Expr{num: num, den: den}
}

// Pow raises every factor to p and re-normalizes. A negative p swaps the
// numerator and denominator.
func (e Expr) Pow(p Power) Unit {
	if p.IsZero() {
		return Identity{}
	}
	if p.IsOne() {
		return e
	}

	num, den := e.num, e.den
	if p.Sign() < 0 {
		num, den = den, num
		p = p.Abs()
	}

	raise := func(s Single) Single { return Single{name: s.name, power: s.power.Mul(p)} }
	raised := Expr{
		num: enumerable.Map(num, raise),
		den: enumerable.Map(den, raise),
	}
	return merge(Identity{}, raised, OpMul)
}

// Equal reports whether e and other hold the same multisets.
func (e Expr) Equal(other Expr) bool {
	return sameMultiset(e.num, other.num) && sameMultiset(e.den, other.den)
}

func sameMultiset(a, b []Single) bool {
	if len(a) != len(b) {
		return false
	}
	ca := enumerable.Tally(a, Single.key)
	cb := enumerable.Tally(b, Single.key)
	if len(ca) != len(cb) {
		return false
	}
	for k, n := range ca {
		if cb[k] != n {
			return false
		}
	}
	return true
}

// Dimensions returns the distinct dimension names of e, numerator first.
func (e Expr) Dimensions() []string {
	all := append(slices.Clone(e.num), e.den...)
	seen := make(map[string]bool, len(all))
	return enumerable.Map(enumerable.Filter(all, func(s Single) bool {
		if seen[s.name] {
			return false
		}
		seen[s.name] = true
		return true
	}), Single.Name)
}

func joinSingles(list []Single) string {
	return strings.Join(enumerable.Map(list, Single.String), "*")
}

// String renders e as "n1*n2/(d1*d2)"; the numerator is "1" when empty and
// the denominator is parenthesized only when it has several factors.
func (e Expr) String() string {
	result := "1"
	if len(e.num) > 0 {
		result = joinSingles(e.num)
	}
	switch len(e.den) {
	case 0:
	case 1:
		result += "/" + e.den[0].String()
	default:
		result += "/(" + joinSingles(e.den) + ")"
	}
	return result
}

func (Expr) isUnit()    {}
func (Expr) isOperand() {}
