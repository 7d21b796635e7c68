// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

// Prefixes is the read-only view of a magnitude prefix table. The empty
// symbol means "no prefix" and has exponent 0.
type Prefixes interface {
	// Exponent returns the power of ten of symbol, 0 if unrecognized.
	Exponent(symbol string) int

	// Valid reports whether symbol is "" or a recognized prefix.
	Valid(symbol string) bool
}

// PrefixExp10 returns the decimal exponent gained by writing a unit of
// power p with prefix from instead of prefix to: (Exponent(from) -
// Exponent(to)) * p, e.g. 6 for ("k", "", 2). The result must be integral.
func PrefixExp10(table Prefixes, from, to string, p Power) (int, error) {
	for _, symbol := range []string{from, to} {
		if !table.Valid(symbol) {
			return 0, invalidArgument("PrefixExp10", "unknown prefix %q", symbol)
		}
	}

	exp := Int(int64(table.Exponent(from) - table.Exponent(to))).Mul(p)
	n, ok := exp.Int64()
	if !ok {
		return 0, invalidArgument("PrefixExp10", "prefix %q to %q at power %s is not a whole power of ten", from, to, p)
	}
	return int(n), nil
}
