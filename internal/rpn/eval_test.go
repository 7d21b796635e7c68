package rpn

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"units"
)

func eval(t *testing.T, input string) (*Evaluator, error) {
	t.Helper()
	e := New(nil, nil)
	return e, e.Eval(strings.Fields(input))
}

func top(t *testing.T, input string) units.Value {
	t.Helper()
	e, err := eval(t, input)
	require.NoError(t, err)
	v, err := e.Stack().Peek()
	require.NoError(t, err)
	return v
}

func quantity(t *testing.T, v units.Value) units.Quantity {
	t.Helper()
	q, ok := v.(units.Quantity)
	require.True(t, ok, "%v is %T", v, v)
	return q
}

func TestQuantities(t *testing.T) {
	tests := []struct {
		input string
		value float64
		unit  string
	}{
		{"15 m 8 kg * 2 s 2 s * /", 30, "m*g/(s^2)"},
		{"2 m 1 cm -", 1.99, "m"},
		{"8e2 kg 6 %", 2, "g"},
		{"2 m 3 **", 8, "(m^3)"},
		{"4 m 0.5 pow", 2, "(m^1/2)"},
		{"2 m s", 2, "m*s"},
		{"5 kN", 5000, "g*m/(s^2)"},
		{"1,000 m", 1000, "m"},
		{"1 m 2 .", 2, "m"},
		{"1 m 2 •", 2, "m"},
		{"-2.5 m abs", 2.5, "m"},
		{"2.5 m round", 2, "m"},
		{"3.5 m round", 4, "m"},
		{"-2.5 m trunc", -2, "m"},
		{"-2.5 m floor", -3, "m"},
		{"2.1 m ceil", 3, "m"},
		{"3 m neg", -3, "m"},
		{"7 m -4 mod", -1, "m"},
		{"1 ms", 0.001, "s"},
		{"10 µm", 1e-5, "m"},
		{"1 in 1 ft +", 0.3302, "m"},
		{"100 °C", 373.15, "K"},
		{"1 kg 1 m * 1 s d * /", 1, "g*m/(s^2)"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			q := quantity(t, top(t, test.input))
			assert.InDelta(t, test.value, q.Float64(), 1e-9)
			assert.Equal(t, test.unit, q.Unit().String())
		})
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected units.Number
	}{
		{"1 2 +", 3},
		{"1 3 /", units.Number(1.0 / 3)},
		{"7 -3 %", -2},
		{"2 10 **", 1024},
		{"3 m n", 3},
		{"3 m 3 m /", 1},
		{"6 m 2 s * 3 s 4 m * /", 1},
		{"-3 chs", 3},
		{"1 2 3 4 @+", 10},
		{"2 3 4 @*", 24},
		{"1_000 2 -", 998},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.expected, top(t, test.input))
		})
	}
}

func TestStackOperations(t *testing.T) {
	tests := []struct {
		input    string
		expected []units.Value
	}{
		{"1 2 x", []units.Value{units.Number(2), units.Number(1)}},
		{"3 d", []units.Value{units.Number(3), units.Number(3)}},
		{"3 dup", []units.Value{units.Number(3), units.Number(3)}},
		{"3 4 p", []units.Value{units.Number(3)}},
		{"3 4 pop", []units.Value{units.Number(3)}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			e, err := eval(t, test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, e.Stack().Values())
		})
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		input string
		token string
		check func(error) bool
		depth int
	}{
		{"1 m 0 m /", "/", units.IsDivisionByZero, 2},
		{"3 m 4 +", "+", units.IsIncompatibleUnits, 2},
		{"3 m 1 s -", "-", units.IsIncompatibleUnits, 2},
		{"2 m 2 m **", "**", units.IsUnsupportedOperand, 2},
		{"3 m 2 m %", "%", units.IsUnsupportedOperand, 2},
		{"3 0 %", "%", units.IsDivisionByZero, 2},
		{"1 x", "x", func(err error) bool { return errors.Is(err, ErrStackUnderflow) }, 1},
		{"+", "+", func(err error) bool { return errors.Is(err, ErrStackUnderflow) }, 0},
		{"m", "m", func(err error) bool { return errors.Is(err, ErrStackUnderflow) }, 0},
		{"chs", "chs", func(err error) bool { return errors.Is(err, ErrStackUnderflow) }, 0},
		{"1 @+", "@+", func(err error) bool { return errors.Is(err, ErrStackUnderflow) }, 1},
		{"1 m 2 s 3 m @+", "@+", units.IsIncompatibleUnits, 3},
		{"1 foo", "foo", func(err error) bool { return err != nil }, 1},
		{"2 m °C", "°C", func(err error) bool { return err != nil }, 1},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			e, err := eval(t, test.input)
			require.Error(t, err)

			var evalErr *Error
			require.ErrorAs(t, err, &evalErr)
			assert.Equal(t, test.token, evalErr.Token)
			assert.True(t, test.check(err), "unexpected error %v", err)
			assert.Equal(t, test.depth, e.Stack().Size())
		})
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := eval(t, "1 foo")
	require.Error(t, err)
	assert.Equal(t, "'foo': unrecognized argument", err.Error())
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		valid    bool
	}{
		{"42", 42, true},
		{"-1.5", -1.5, true},
		{"1e3", 1000, true},
		{"1,234.5", 1234.5, true},
		{"1_000", 1000, true},
		{"-", 0, false},
		{".", 0, false},
		{"inf", 0, false},
		{"NaN", 0, false},
		{"0x10", 0, false},
		{"m", 0, false},
		{",", 0, false},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			f, ok := parseNumber(test.input)
			assert.Equal(t, test.valid, ok)
			assert.Equal(t, test.expected, f)
		})
	}
}
