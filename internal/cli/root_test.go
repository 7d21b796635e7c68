package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"units"
	"units/catalog"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "calc", cmd.Name())
	assert.Contains(t, cmd.Long, "reverse Polish")
}

func TestHeredoc(t *testing.T) {
	text := "\n    first\n      indented\n\n    last\n  "
	assert.Equal(t, "first\n  indented\n\nlast", heredoc(text))
	assert.Equal(t, "", heredoc("\n   \n"))
}

func TestFlags(t *testing.T) {
	cmd := NewRootCommand()

	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{"precision", "p", "4"},
		{"group", "g", "false"},
		{"trace", "t", "false"},
		{"list", "l", "false"},
		{"scale", "s", "false"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			flag := cmd.Flags().Lookup(test.name)
			require.NotNil(t, flag)
			assert.Equal(t, test.shorthand, flag.Shorthand)
			assert.Equal(t, test.defValue, flag.DefValue)
		})
	}
}

func TestSplitOptions(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{"no flags", []string{"1", "2", "+"}, []string{"--", "1", "2", "+"}},
		{"negative number", []string{"-5", "m"}, []string{"--", "-5", "m"}},
		{"minus", []string{"-"}, []string{"--", "-"}},
		{"bool flag", []string{"-t", "1"}, []string{"-t", "--", "1"}},
		{"combined bool flags", []string{"-tg", "1"}, []string{"-tg", "--", "1"}},
		{"value flag", []string{"-p", "2", "1"}, []string{"-p", "2", "--", "1"}},
		{"attached value", []string{"-p2", "-1"}, []string{"-p2", "--", "-1"}},
		{"long flag", []string{"--precision", "2", "-1"}, []string{"--precision", "2", "--", "-1"}},
		{"long flag with value", []string{"--precision=2", "1"}, []string{"--precision=2", "--", "1"}},
		{"long bool flag", []string{"--list"}, []string{"--list"}},
		{"help", []string{"-h"}, []string{"-h"}},
		{"explicit dash", []string{"-t", "--", "-s"}, []string{"-t", "--", "-s"}},
		{"unknown flag", []string{"-z", "1"}, []string{"--", "-z", "1"}},
		{"non-ascii", []string{"-µ"}, []string{"--", "-µ"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, splitOptions(NewRootCommand(), test.args))
		})
	}
}

func TestFormatter(t *testing.T) {
	tests := []struct {
		name      string
		formatter Formatter
		values    []units.Value
		expected  string
	}{
		{
			name:      "integral",
			formatter: Formatter{Precision: 4},
			values:    []units.Value{units.Number(6)},
			expected:  "6\n",
		},
		{
			name:      "precision",
			formatter: Formatter{Precision: 6},
			values:    []units.Value{units.Number(2.0 / 3)},
			expected:  "0.666667\n",
		},
		{
			name:      "top first",
			formatter: Formatter{Precision: 2},
			values:    []units.Value{units.Number(1), units.Number(22), units.Number(333)},
			expected:  "333\n 22\n  1\n",
		},
		{
			name:      "folded quantity",
			formatter: Formatter{Precision: 2},
			values:    []units.Value{catalog.Kilometer(1.5)},
			expected:  "1500 m\n",
		},
		{
			name:      "scaled quantity",
			formatter: Formatter{Precision: 2, Scale: true},
			values:    []units.Value{catalog.Kilometer(1.5)},
			expected:  "1.50e3 m\n",
		},
		{
			name:      "grouped",
			formatter: Formatter{Precision: 2, Group: true},
			values:    []units.Value{units.Number(1234567)},
			expected:  "1,234,567\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			test.formatter.Writer = &buf
			require.NoError(t, test.formatter.Print(test.values))
			assert.Equal(t, test.expected, buf.String())
		})
	}
}

func TestSplitNumber(t *testing.T) {
	tests := []struct {
		input string
		whole string
		frac  string
	}{
		{"12", "12", ""},
		{"12.50", "12", ".50"},
		{"1e-2", "1", "e-2"},
		{"1,234.5", "1,234", ".5"},
		{"-0.25", "-0", ".25"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			whole, frac := splitNumber(test.input)
			assert.Equal(t, test.whole, whole)
			assert.Equal(t, test.frac, frac)
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(WrapExitError(ExitFailure, "x", assert.AnError)))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "x")))
	assert.Equal(t, ExitCommandError, GetExitCode(assert.AnError))

	err := WrapExitError(ExitFailure, "evaluation failed", assert.AnError)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, "evaluation failed: "+assert.AnError.Error(), err.Error())
}
