// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package catalog builds Quantities from named units such as meter, newton
// or fahrenheit. The units are described by an embedded YAML document that
// is checked against a CUE schema when loaded.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"units"
	"units/enumerable"
	"units/prefix"
)

//go:embed units.yaml
var defaultData []byte

//go:embed schema.cue
var schema string

// Dimension is one base dimension, e.g. length measured in m.
type Dimension struct {
	Symbol string `yaml:"symbol"`
	Name   string `yaml:"name"`

	// Prefix is the reference prefix quantities of this dimension are scaled
	// to, "k" for mass.
	Prefix string `yaml:"prefix,omitempty"`
}

// Factor is one dimension of a unit raised to an integral power.
type Factor struct {
	Dim   string `yaml:"dim"`
	Power int64  `yaml:"power"`
}

// Entry describes one named unit.
type Entry struct {
	Name    string   `yaml:"name"`
	Symbols []string `yaml:"symbols"`
	Dims    []Factor `yaml:"dims"`
	Prefix  string   `yaml:"prefix,omitempty"`
	Factor  *float64 `yaml:"factor,omitempty"`
	Offset  float64  `yaml:"offset,omitempty"`
	Exp10   int      `yaml:"exp10,omitempty"`
	SI      bool     `yaml:"si,omitempty"`
}

func (e Entry) factor() float64 {
	if e.Factor == nil {
		return 1
	}
	return *e.Factor
}

type document struct {
	Dimensions []Dimension `yaml:"dimensions"`
	Units      []Entry     `yaml:"units"`
}

// Catalog is a loaded set of named units. It is read-only after Load.
type Catalog struct {
	prefixes   units.Prefixes
	dimensions map[string]Dimension
	entries    []Entry
	index      map[string]int
}

// Load validates data against the catalog schema, decodes it and checks
// that every unit refers to known dimensions and prefixes.
func Load(data []byte, prefixes units.Prefixes) (*Catalog, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{
		prefixes:   prefixes,
		dimensions: make(map[string]Dimension, len(doc.Dimensions)),
		index:      make(map[string]int),
	}

	for _, dim := range doc.Dimensions {
		if _, ok := c.dimensions[dim.Symbol]; ok {
			return nil, fmt.Errorf("duplicate dimension %q", dim.Symbol)
		}
		if !prefixes.Valid(dim.Prefix) {
			return nil, fmt.Errorf("dimension %q: unknown prefix %q", dim.Symbol, dim.Prefix)
		}
		c.dimensions[dim.Symbol] = dim
	}

	for _, entry := range doc.Units {
		if err := c.add(entry); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func validate(data []byte) error {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schema, cue.Filename("schema.cue"))
	if err := schemaValue.Err(); err != nil {
		return fmt.Errorf("compiling catalog schema: %w", err)
	}

	file, err := cueyaml.Extract("units.yaml", data)
	if err != nil {
		return fmt.Errorf("failed to parse catalog: %w", err)
	}
	dataValue := ctx.BuildFile(file)
	if err := dataValue.Err(); err != nil {
		return fmt.Errorf("building catalog value: %w", err)
	}

	if err := schemaValue.Unify(dataValue).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	return nil
}

func (c *Catalog) add(entry Entry) error {
	if !c.prefixes.Valid(entry.Prefix) {
		return fmt.Errorf("unit %q: unknown prefix %q", entry.Name, entry.Prefix)
	}

	seen := map[string]bool{}
	for _, f := range entry.Dims {
		if _, ok := c.dimensions[f.Dim]; !ok {
			return fmt.Errorf("unit %q: unknown dimension %q", entry.Name, f.Dim)
		}
		if seen[f.Dim] {
			return fmt.Errorf("unit %q: dimension %q listed twice", entry.Name, f.Dim)
		}
		seen[f.Dim] = true
	}

	keys := append([]string{entry.Name}, entry.Symbols...)
	for _, key := range keys {
		key = normalize(key)
		if _, ok := c.index[key]; ok {
			return fmt.Errorf("unit %q: name or symbol %q already defined", entry.Name, key)
		}
		c.index[key] = len(c.entries)
	}

	c.entries = append(c.entries, entry)
	return nil
}

// normalize folds compatibility forms, e.g. the ohm sign U+2126 to the
// Greek capital omega.
func normalize(s string) string {
	return norm.NFKC.String(s)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the embedded units.yaml and the SI
// prefix table. It panics if the embedded data is invalid.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(defaultData, prefix.SI)
		if err != nil {
			panic(fmt.Sprintf("embedded unit catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Names returns the unit names in catalog order.
func (c *Catalog) Names() []string {
	return enumerable.Map(c.entries, func(e Entry) string { return e.Name })
}

// Entries returns a copy of the catalog entries in catalog order.
func (c *Catalog) Entries() []Entry {
	return slices.Clone(c.entries)
}

// Lookup finds an entry by its name or one of its symbols.
func (c *Catalog) Lookup(nameOrSymbol string) (Entry, bool) {
	i, ok := c.index[normalize(nameOrSymbol)]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Resolve finds the entry for token and the prefix attached to it. An exact
// name or symbol wins; otherwise token may be an SI prefix followed by a
// symbol of a unit marked si, e.g. "kN" or "ms".
func (c *Catalog) Resolve(token string) (Entry, string, bool) {
	if entry, ok := c.Lookup(token); ok {
		return entry, "", true
	}

	token = normalize(token)
	for _, symbol := range prefixSymbols(c.prefixes) {
		rest, found := strings.CutPrefix(token, symbol)
		if !found || rest == "" {
			continue
		}
		if entry, ok := c.Lookup(rest); ok && entry.SI && slices.Contains(entry.Symbols, rest) {
			return entry, symbol, true
		}
	}
	return Entry{}, "", false
}

// prefixSymbols lists the symbols of table, longest first so that "da" is
// tried before "d".
func prefixSymbols(table units.Prefixes) []string {
	var symbols []string
	if lister, ok := table.(interface{ Symbols() []string }); ok {
		symbols = lister.Symbols()
	}
	slices.SortStableFunc(symbols, func(a, b string) int {
		return len(b) - len(a)
	})
	return symbols
}

type options struct {
	prefix string
	exp10  int
	power  units.Power
}

// Option adjusts how New builds a Quantity.
type Option func(*options)

// WithPrefix writes the value with an SI prefix, e.g. WithPrefix("k") for
// kilonewtons.
func WithPrefix(symbol string) Option {
	return func(o *options) { o.prefix = symbol }
}

// WithExp10 scales the value by 10^exp10.
func WithExp10(exp10 int) Option {
	return func(o *options) { o.exp10 = exp10 }
}

// WithPower raises the unit, e.g. WithPower(units.Int(2)) for square meters.
func WithPower(p units.Power) Option {
	return func(o *options) { o.power = p }
}

func invalid(format string, args ...any) error {
	return &units.Error{Code: units.CodeInvalidArgument, Op: "catalog.New", Message: fmt.Sprintf(format, args...)}
}

// New builds value of the named unit. The result is a Number only when the
// requested power is 0.
func (c *Catalog) New(name string, value float64, opts ...Option) (units.Value, error) {
	entry, ok := c.Lookup(name)
	if !ok {
		return nil, invalid("unknown unit %q", name)
	}

	o := options{power: units.Int(1)}
	for _, opt := range opts {
		opt(&o)
	}
	if !c.prefixes.Valid(o.prefix) {
		return nil, invalid("unknown prefix %q", o.prefix)
	}
	if entry.Offset != 0 && !o.power.IsOne() {
		return nil, invalid("%s has an offset and cannot be raised to %s", entry.Name, o.power)
	}

	unit := units.Unit(units.Identity{})
	for _, f := range entry.Dims {
		single, err := units.NewSingle(f.Dim, units.Int(f.Power).Mul(o.power))
		if err != nil {
			return nil, err
		}
		unit = units.Mul(unit, single)
	}

	exp10, err := c.exponent(entry, o)
	if err != nil {
		return nil, err
	}

	v := value * math.Pow(entry.factor(), o.power.Float64())
	if entry.Offset != 0 {
		// Offsets apply to the absolute value, so the scale is folded first.
		return units.NewQuantity(v*math.Pow10(exp10)+entry.Offset, unit, 0), nil
	}
	return units.NewQuantity(v, unit, exp10), nil
}

// exponent is the decimal exponent of entry under o:
//
//	entry.exp10 × power + o.exp10 + (prefix(entry) + prefix(o) - reference) × power
//
// where reference is the dimension's reference prefix for a base unit of a
// single dimension to the first power, and none otherwise.
func (c *Catalog) exponent(entry Entry, o options) (int, error) {
	reference := ""
	if len(entry.Dims) == 1 && entry.Dims[0].Power == 1 {
		reference = c.dimensions[entry.Dims[0].Dim].Prefix
	}

	fromEntry, err := units.PrefixExp10(c.prefixes, entry.Prefix, reference, o.power)
	if err != nil {
		return 0, err
	}
	fromOption, err := units.PrefixExp10(c.prefixes, o.prefix, "", o.power)
	if err != nil {
		return 0, err
	}

	scaled, ok := units.Int(int64(entry.Exp10)).Mul(o.power).Int64()
	if !ok {
		return 0, invalid("%s: 10^%d to the power %s is not a whole power of ten", entry.Name, entry.Exp10, o.power)
	}

	return int(scaled) + o.exp10 + fromEntry + fromOption, nil
}

// Must is New for arguments known to be valid. It panics if New fails or if
// the result is not a Quantity.
func (c *Catalog) Must(name string, value float64, opts ...Option) units.Quantity {
	v, err := c.New(name, value, opts...)
	if err != nil {
		panic(err)
	}
	q, ok := v.(units.Quantity)
	if !ok {
		panic(fmt.Sprintf("%s: %v is not a quantity", name, v))
	}
	return q
}
