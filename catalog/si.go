// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package catalog

import "units"

// Constructors over the default catalog. Each panics if opts do not apply
// to the unit, e.g. a fractional power with a prefix that leaves a
// fractional exponent.

func Meter(v float64, opts ...Option) units.Quantity {
	return Default().Must("meter", v, opts...)
}

func Centimeter(v float64, opts ...Option) units.Quantity {
	return Default().Must("centimeter", v, opts...)
}

func Millimeter(v float64, opts ...Option) units.Quantity {
	return Default().Must("millimeter", v, opts...)
}

func Kilometer(v float64, opts ...Option) units.Quantity {
	return Default().Must("kilometer", v, opts...)
}

func Gram(v float64, opts ...Option) units.Quantity {
	return Default().Must("gram", v, opts...)
}

func Kilogram(v float64, opts ...Option) units.Quantity {
	return Default().Must("kilogram", v, opts...)
}

func Tonne(v float64, opts ...Option) units.Quantity {
	return Default().Must("tonne", v, opts...)
}

func Second(v float64, opts ...Option) units.Quantity {
	return Default().Must("second", v, opts...)
}

func Minute(v float64, opts ...Option) units.Quantity {
	return Default().Must("minute", v, opts...)
}

func Hour(v float64, opts ...Option) units.Quantity {
	return Default().Must("hour", v, opts...)
}

func Day(v float64, opts ...Option) units.Quantity {
	return Default().Must("day", v, opts...)
}

func Kelvin(v float64, opts ...Option) units.Quantity {
	return Default().Must("kelvin", v, opts...)
}

// Celsius converts v degrees to kelvin.
func Celsius(v float64) units.Quantity {
	return Default().Must("celsius", v)
}

// Fahrenheit converts v degrees to kelvin.
func Fahrenheit(v float64) units.Quantity {
	return Default().Must("fahrenheit", v)
}

func Mole(v float64, opts ...Option) units.Quantity {
	return Default().Must("mole", v, opts...)
}

func Ampere(v float64, opts ...Option) units.Quantity {
	return Default().Must("ampere", v, opts...)
}

func Candela(v float64, opts ...Option) units.Quantity {
	return Default().Must("candela", v, opts...)
}

func Hertz(v float64, opts ...Option) units.Quantity {
	return Default().Must("hertz", v, opts...)
}

func Newton(v float64, opts ...Option) units.Quantity {
	return Default().Must("newton", v, opts...)
}

func Pascal(v float64, opts ...Option) units.Quantity {
	return Default().Must("pascal", v, opts...)
}

func Joule(v float64, opts ...Option) units.Quantity {
	return Default().Must("joule", v, opts...)
}

func Watt(v float64, opts ...Option) units.Quantity {
	return Default().Must("watt", v, opts...)
}

func Coulomb(v float64, opts ...Option) units.Quantity {
	return Default().Must("coulomb", v, opts...)
}

func Volt(v float64, opts ...Option) units.Quantity {
	return Default().Must("volt", v, opts...)
}

func Farad(v float64, opts ...Option) units.Quantity {
	return Default().Must("farad", v, opts...)
}

func Ohm(v float64, opts ...Option) units.Quantity {
	return Default().Must("ohm", v, opts...)
}

func Siemens(v float64, opts ...Option) units.Quantity {
	return Default().Must("siemens", v, opts...)
}

func Weber(v float64, opts ...Option) units.Quantity {
	return Default().Must("weber", v, opts...)
}

func Tesla(v float64, opts ...Option) units.Quantity {
	return Default().Must("tesla", v, opts...)
}

func Henry(v float64, opts ...Option) units.Quantity {
	return Default().Must("henry", v, opts...)
}

func Inch(v float64, opts ...Option) units.Quantity {
	return Default().Must("inch", v, opts...)
}

func Foot(v float64, opts ...Option) units.Quantity {
	return Default().Must("foot", v, opts...)
}

func Yard(v float64, opts ...Option) units.Quantity {
	return Default().Must("yard", v, opts...)
}

func Mile(v float64, opts ...Option) units.Quantity {
	return Default().Must("mile", v, opts...)
}

func Pound(v float64, opts ...Option) units.Quantity {
	return Default().Must("pound", v, opts...)
}

func Acre(v float64, opts ...Option) units.Quantity {
	return Default().Must("acre", v, opts...)
}

func Hectare(v float64, opts ...Option) units.Quantity {
	return Default().Must("hectare", v, opts...)
}

func Litre(v float64, opts ...Option) units.Quantity {
	return Default().Must("litre", v, opts...)
}
