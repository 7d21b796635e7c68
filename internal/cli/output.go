// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"units"
	"units/catalog"
)

// Process exit codes of calc.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // a token could not be evaluated
	ExitCommandError = 2 // bad flags or no tokens
)

// ExitError carries the exit code calc should terminate with.
type ExitError struct {
	Code    int
	Message string
	Err     error // evaluation error, if any
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError prefixes err with message, e.g. "evaluation failed: ...".
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode maps err to the process exit code. Anything other than an
// *ExitError comes from cobra rejecting the flags.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// Formatter prints the stack, top first, one value per line.
type Formatter struct {
	Writer    io.Writer
	Precision int
	Group     bool // use ',' to group thousands
	Scale     bool // show value and exp10 instead of the folded value
}

// ColumnWidths tracks integer and fractional part widths for alignment
type ColumnWidths struct {
	integerWidth    int // width of integer part (before decimal point)
	fractionalWidth int // width of fractional part (including decimal point)
}

func (f *Formatter) number(x float64) string {
	format := "%.0f"
	if x != math.Trunc(x) {
		format = "%." + strconv.Itoa(f.Precision) + "f"
	}
	if f.Group {
		return message.NewPrinter(language.English).Sprintf(format, x)
	}
	return fmt.Sprintf(format, x)
}

// toString renders the numeric part of v.
func (f *Formatter) toString(v units.Value) string {
	if q, ok := v.(units.Quantity); ok && f.Scale {
		s := f.number(q.Value())
		if q.Exp10() != 0 {
			s += "e" + strconv.Itoa(q.Exp10())
		}
		return s
	}
	return f.number(v.Float64())
}

func unitOf(v units.Value) string {
	if q, ok := v.(units.Quantity); ok {
		return q.Unit().String()
	}
	return ""
}

// splitNumber splits a number string into integer and fractional parts
// Returns (integerPart, fractionalPart) where fractionalPart includes the decimal point
// and any exponent
func splitNumber(str string) (string, string) {
	if i := strings.IndexAny(str, ".e"); i >= 0 {
		return str[:i], str[i:]
	}
	// Integer - no fractional part
	return str, ""
}

func (f *Formatter) maxWidths(strs []string) ColumnWidths {
	var widths ColumnWidths
	for _, str := range strs {
		intPart, fracPart := splitNumber(str)
		widths.integerWidth = max(widths.integerWidth, len(intPart))
		widths.fractionalWidth = max(widths.fractionalWidth, len(fracPart))
	}
	return widths
}

// Print writes values, given bottom first, with the top of the stack on the
// first line. Integer parts are right aligned on the units digit.
func (f *Formatter) Print(values []units.Value) error {
	strs := make([]string, len(values))
	for i, value := range values {
		strs[i] = f.toString(value)
	}
	widths := f.maxWidths(strs)

	for i := len(values) - 1; i >= 0; i-- {
		intPart, fracPart := splitNumber(strs[i])
		line := fmt.Sprintf("%*s%s", widths.integerWidth, intPart, fracPart)

		// Pad fractional part to keep the units aligned
		if unit := unitOf(values[i]); unit != "" {
			line += strings.Repeat(" ", widths.fractionalWidth-len(fracPart)) + " " + unit
		}

		if _, err := fmt.Fprintln(f.Writer, line); err != nil {
			return err
		}
	}
	return nil
}

// listUnits writes one line per catalog unit: name, symbols and the unit
// expression its values carry.
func listUnits(w io.Writer, c *catalog.Catalog) error {
	for _, entry := range c.Entries() {
		v, err := c.New(entry.Name, 1)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%-12s %-10s %s\n", entry.Name, strings.Join(entry.Symbols, " "), unitOf(v)); err != nil {
			return err
		}
	}
	return nil
}
