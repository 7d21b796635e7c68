// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package units is an algebra of physical units and the quantities that
// carry them.
//
// A Unit is one of three shapes: Identity (dimensionless), a Single
// dimension raised to a rational Power such as (s^2), or an Expr holding a
// normalized numerator and denominator of Singles. Multiplying and dividing
// units merges like dimensions, so m*m is (m^2) and m/m is Identity.
//
// A Quantity couples a float64 value with a non-identity Unit and a decimal
// exponent: value × 10^exp10. SI prefixes are folded into exp10 when a
// Quantity is built, relative to the dimension's reference prefix, leaving
// the Unit itself unprefixed: 12 cm is stored as 12e-2 m and compares equal
// to 0.12 m. Arithmetic on Quantities whose units cancel yields a plain
// Number.
//
// Values are immutable. Every operation returns a new Value or Unit.
//
// The generic entry points BinaryOp, Raise, UnaryOp, Compare and Equal
// accept any Operand and dispatch on its concrete type, for callers such as
// an RPN evaluator that do not know statically what they hold.
package units
