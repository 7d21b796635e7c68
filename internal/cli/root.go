// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package cli implements the calc command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"units/catalog"
	"units/internal/rpn"
)

// RootOptions holds the flags of the calc command.
type RootOptions struct {
	Precision int
	Group     bool
	Trace     bool
	List      bool
	Scale     bool
}

// heredoc strips the common indentation of a raw string literal along with
// its surrounding blank lines.
func heredoc(text string) string {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")

	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if n := len(line) - len(strings.TrimLeft(line, " ")); indent < 0 || n < indent {
			indent = n
		}
	}

	for i, line := range lines {
		lines[i] = line[min(max(indent, 0), len(line)):]
	}
	return strings.TrimRight(strings.Join(lines, "\n"), " \t\n")
}

var longHelp = heredoc(`
        Evaluate a reverse Polish expression over values with units.

        Numbers:
          Decimal integers and floating point numbers, with optional exponent
          Digits may be grouped with ',' or '_', e.g. 1,000 or 1_000
          Options are only read before the first token, so -5 is a number

        Stack Operations:
          x: exchange top 2 elements of the stack
          d: duplicate top element of the stack (aliased as dup)
          p: pop top element off of the stack (aliased as pop)

        Binary numerical operations (prepend with '@' to reduce the stack):
          + - * /
          *   (aliased as . and •)
          %   (modulo, divisor must be dimensionless; aliased as mod)
          **  (aliased as pow, exponent must be dimensionless)

        Unary numerical operations:
          n     (number: remove any units)
          chs   (change sign, aliased as neg)
          abs   (absolute value)
          round (round half to even)
          trunc floor ceil

        Units:
          A unit applied to a number gives it that unit, e.g. 3 m
          A unit applied to a value with units multiplies it, e.g. 3 m s
          Any SI prefix may precede the symbol of an SI unit, e.g. kN, ms, µm
          Use --list to show all units
    `)

// NewRootCommand creates the calc command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "calc [flags] TOKENS...",
		Short:         "RPN calculator with units",
		Long:          longHelp,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.Precision, "precision", "p", 4, "display precision for floating point numbers")
	cmd.Flags().BoolVarP(&opts.Group, "group", "g", false, "use ',' to group decimal numbers")
	cmd.Flags().BoolVarP(&opts.Trace, "trace", "t", false, "trace operations on stderr")
	cmd.Flags().BoolVarP(&opts.List, "list", "l", false, "list known units")
	cmd.Flags().BoolVarP(&opts.Scale, "scale", "s", false, "show the decimal exponent of each value separately")

	return cmd
}

func newLogger(w io.Writer, trace bool) *slog.Logger {
	level := slog.LevelWarn
	if trace {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(cmd *cobra.Command, opts *RootOptions, args []string) error {
	if opts.Precision < 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid precision %d", opts.Precision))
	}

	out := cmd.OutOrStdout()
	if opts.List {
		return listUnits(out, catalog.Default())
	}
	if len(args) == 0 {
		return NewExitError(ExitCommandError, "no arguments, see --help")
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.Trace)
	evaluator := rpn.New(catalog.Default(), logger)
	if err := evaluator.Eval(args); err != nil {
		return WrapExitError(ExitFailure, "evaluation failed", err)
	}

	formatter := &Formatter{
		Writer:    out,
		Precision: opts.Precision,
		Group:     opts.Group,
		Scale:     opts.Scale,
	}
	return formatter.Print(evaluator.Stack().Values())
}

// Execute runs calc with args, as given on the command line, and returns
// the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	// cobra falls back to os.Args on nil
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(splitOptions(cmd, args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v, exiting\n", err)
		return GetExitCode(err)
	}
	return ExitSuccess
}
