// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package rpn evaluates reverse Polish expressions over unit values, e.g.
// "15 m 8 kg * 2 s 2 s * /".
package rpn

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"units"
	"units/catalog"
)

// Error reports the token an evaluation failed on.
type Error struct {
	Token string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("'%s': %v", e.Token, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var BINARYALIAS = Aliases{
	"•":   "*",
	".":   "*",
	"pow": "**",
	"mod": "%",
}

var BINARYOP = map[string]bool{
	"+":  true,
	"-":  true,
	"*":  true,
	"/":  true,
	"%":  true,
	"**": true,
}

var UNARYALIAS = Aliases{
	"neg": "chs",
}

var UNARYOP = map[string]bool{
	"chs":   true,
	"abs":   true,
	"round": true,
	"trunc": true,
	"floor": true,
	"ceil":  true,
	"n":     true,
}

// Evaluator applies tokens to a Stack, resolving unit names against a
// catalog.
type Evaluator struct {
	stack   *Stack
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// New returns an Evaluator with an empty stack. A nil catalog means
// catalog.Default and a nil logger discards.
func New(c *catalog.Catalog, logger *slog.Logger) *Evaluator {
	if c == nil {
		c = catalog.Default()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Evaluator{stack: NewStack(), catalog: c, logger: logger}
}

func (e *Evaluator) Stack() *Stack {
	return e.stack
}

// Eval applies tokens in order, stopping at the first failure.
func (e *Evaluator) Eval(tokens []string) error {
	for _, token := range tokens {
		if err := e.Apply(token); err != nil {
			return err
		}
	}
	return nil
}

// Apply applies one token: a number, an operator, a stack operation or a
// unit. Stack operations and operators win over unit symbols, so "d" is
// always dup.
func (e *Evaluator) Apply(token string) error {
	if err := e.apply(token); err != nil {
		e.logger.Debug("failed", "token", token, "error", err)
		return &Error{Token: token, Err: err}
	}
	e.logger.Debug("apply", "token", token, "depth", e.stack.Size(), "stack", e.stack.Oneline())
	return nil
}

func (e *Evaluator) apply(token string) error {
	if f, ok := parseNumber(token); ok {
		e.stack.Push(units.Number(f))
		return nil
	}

	if op, ok := STACKOP[STACKALIAS.resolve(token)]; ok {
		return op(e.stack)
	}

	if op := BINARYALIAS.resolve(token); BINARYOP[op] {
		if op == "**" {
			return e.stack.pow()
		}
		return e.stack.binaryOp(op)
	}

	if rest, found := strings.CutPrefix(token, "@"); found {
		if op := BINARYALIAS.resolve(rest); BINARYOP[op] && op != "**" {
			return e.stack.reduce(op)
		}
	}

	if op := UNARYALIAS.resolve(token); UNARYOP[op] {
		return e.stack.unaryOp(op)
	}

	if entry, symbol, ok := e.catalog.Resolve(token); ok {
		return e.applyUnit(entry, symbol)
	}

	return fmt.Errorf("unrecognized argument")
}

// applyUnit gives a Number on top of the stack the unit, or multiplies a
// Quantity on top of the stack by it.
func (e *Evaluator) applyUnit(entry catalog.Entry, symbol string) error {
	top, err := e.stack.Pop()
	if err != nil {
		return fmt.Errorf("unit '%s': %w", entry.Name, err)
	}

	switch v := top.(type) {
	case units.Number:
		result, err := e.catalog.New(entry.Name, float64(v), catalog.WithPrefix(symbol))
		if err != nil {
			e.stack.Push(top)
			return err
		}
		e.stack.Push(result)
		return nil
	case units.Quantity:
		if entry.Offset != 0 {
			e.stack.Push(top)
			return fmt.Errorf("%s has an offset and cannot multiply %s", entry.Name, v)
		}
		unit, err := e.catalog.New(entry.Name, 1, catalog.WithPrefix(symbol))
		if err != nil {
			e.stack.Push(top)
			return err
		}
		e.stack.Push(v.Mul(unit.(units.Quantity)))
		return nil
	}
	return fmt.Errorf("unexpected value %T", top)
}

// parseNumber accepts decimal numbers with optional '_' or ',' digit
// grouping and exponent.
func parseNumber(input string) (float64, bool) {
	cleaned := strings.NewReplacer("_", "", ",", "").Replace(input)
	if cleaned == "" || strings.ContainsAny(cleaned, "xXpPnN") {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
