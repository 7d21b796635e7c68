// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package prefix holds the SI magnitude prefixes.
package prefix

import (
	"slices"

	"golang.org/x/text/unicode/norm"
)

// Table maps a prefix symbol to its power of ten.
type Table map[string]int

// SI is the table of SI decimal prefixes.
var SI = Table{
	"Y":  24,
	"Z":  21,
	"E":  18,
	"P":  15,
	"T":  12,
	"G":  9,
	"M":  6,
	"k":  3,
	"h":  2,
	"da": 1,
	"d":  -1,
	"c":  -2,
	"m":  -3,
	"μ":  -6,
	"n":  -9,
	"p":  -12,
	"f":  -15,
	"a":  -18,
	"z":  -21,
	"y":  -24,
}

// normalize folds compatibility forms, so the micro sign U+00B5 finds the
// table's Greek mu U+03BC.
func normalize(symbol string) string {
	return norm.NFKC.String(symbol)
}

// Exponent returns the power of ten of symbol, 0 for "" or an unknown symbol.
func (t Table) Exponent(symbol string) int {
	return t[normalize(symbol)]
}

// Valid reports whether symbol is "" or in t.
func (t Table) Valid(symbol string) bool {
	if symbol == "" {
		return true
	}
	_, ok := t[normalize(symbol)]
	return ok
}

// MagnitudeFactor returns Exponent(from) - Exponent(to).
func (t Table) MagnitudeFactor(from, to string) int {
	return t.Exponent(from) - t.Exponent(to)
}

// Symbols returns the symbols of t from the largest exponent down.
func (t Table) Symbols() []string {
	symbols := make([]string, 0, len(t))
	for symbol := range t {
		symbols = append(symbols, symbol)
	}
	slices.SortFunc(symbols, func(a, b string) int {
		return t[b] - t[a]
	})
	return symbols
}

// Exponent looks symbol up in SI.
func Exponent(symbol string) int { return SI.Exponent(symbol) }

// Valid looks symbol up in SI.
func Valid(symbol string) bool { return SI.Valid(symbol) }

// MagnitudeFactor is SI.MagnitudeFactor.
func MagnitudeFactor(from, to string) int { return SI.MagnitudeFactor(from, to) }
