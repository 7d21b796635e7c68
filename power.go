// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"math"
	"math/big"
)

// Power is an exact rational exponent. The zero value is 0.
//
// A Power is immutable: the *big.Rat it wraps is never modified after
// construction, so Powers may be copied and shared freely.
type Power struct {
	r *big.Rat
}

func newRat() *big.Rat {
	return new(big.Rat)
}

// Int returns the integral power n.
func Int(n int64) Power {
	return Power{r: newRat().SetInt64(n)}
}

// Frac returns the power num/den.
func Frac(num, den int64) (Power, error) {
	if den == 0 {
		return Power{}, invalidArgument("Frac", "zero denominator in %d/%d", num, den)
	}
	return Power{r: big.NewRat(num, den)}, nil
}

// MustFrac is like Frac but panics on a zero denominator.
func MustFrac(num, den int64) Power {
	p, err := Frac(num, den)
	if err != nil {
		panic(err)
	}
	return p
}

// PowerOf converts f exactly into a Power. Note that 1.0/3 is a binary
// fraction, not one third; use Frac for exact rational powers.
func PowerOf(f float64) (Power, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Power{}, invalidArgument("PowerOf", "non-finite power %v", f)
	}
	return Power{r: newRat().SetFloat64(f)}, nil
}

func (p Power) rat() *big.Rat {
	if p.r == nil {
		return newRat()
	}
	return p.r
}

func (p Power) binaryOp(other Power, op string) Power {
	result := newRat()

	switch op {
	case "+":
		result.Add(p.rat(), other.rat())
	case "-":
		result.Sub(p.rat(), other.rat())
	case "*":
		result.Mul(p.rat(), other.rat())
	default:
		panic("unimplemented power op: " + op)
	}

	return Power{r: result}
}

// Add returns p+other.
func (p Power) Add(other Power) Power { return p.binaryOp(other, "+") }

// Sub returns p-other.
func (p Power) Sub(other Power) Power { return p.binaryOp(other, "-") }

// Mul returns p*other.
func (p Power) Mul(other Power) Power { return p.binaryOp(other, "*") }

// Neg returns -p.
func (p Power) Neg() Power {
	return Power{r: newRat().Neg(p.rat())}
}

// Abs returns |p|.
func (p Power) Abs() Power {
	return Power{r: newRat().Abs(p.rat())}
}

// Inv returns 1/p. It panics if p is zero.
func (p Power) Inv() Power {
	return Power{r: newRat().Inv(p.rat())}
}

// Sign returns -1, 0 or +1.
func (p Power) Sign() int {
	return p.rat().Sign()
}

// IsZero reports whether p == 0.
func (p Power) IsZero() bool {
	return p.Sign() == 0
}

// IsOne reports whether p == 1.
func (p Power) IsOne() bool {
	return p.rat().Cmp(big.NewRat(1, 1)) == 0
}

// IsInt reports whether p is integral.
func (p Power) IsInt() bool {
	return p.rat().IsInt()
}

// Equal reports whether p and other denote the same rational.
func (p Power) Equal(other Power) bool {
	return p.rat().Cmp(other.rat()) == 0
}

// Float64 returns the nearest float64 to p.
func (p Power) Float64() float64 {
	f, _ := p.rat().Float64()
	return f
}

// Int64 returns p truncated toward zero, and whether p was integral and
// fits in an int64.
func (p Power) Int64() (int64, bool) {
	r := p.rat()
	q := new(big.Int).Quo(r.Num(), r.Denom())
	return q.Int64(), r.IsInt() && q.IsInt64()
}

// String returns "2" for integral powers and "1/2" otherwise.
func (p Power) String() string {
	return p.rat().RatString()
}
