// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package rpn

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"units"
	"units/enumerable"
)

// ErrStackUnderflow is returned when an operation needs more values than
// the stack holds.
var ErrStackUnderflow = errors.New("not enough arguments")

// Aliases maps alternate spellings of an operator to its canonical form.
type Aliases map[string]string

func (a Aliases) resolve(token string) string {
	if canonical, ok := a[token]; ok {
		return canonical
	}
	return token
}

var STACKALIAS = Aliases{
	"dup": "d",
	"pop": "p",
}

var STACKOP = map[string]func(*Stack) error{
	"x": func(s *Stack) error { return s.exchange() },
	"d": func(s *Stack) error { return s.dup() },
	"p": func(s *Stack) error {
		_, err := s.Pop()
		return err
	},
}

// Stack holds the operands of an RPN evaluation, bottom first.
type Stack struct {
	values []units.Value
}

func NewStack() *Stack {
	return &Stack{values: []units.Value{}}
}

// binaryOp pops right then left and pushes left op right. On failure both
// operands are restored.
func (s *Stack) binaryOp(op string) error {
	if len(s.values) < 2 {
		return fmt.Errorf("binary operation '%s': %w", op, ErrStackUnderflow)
	}
	right, _ := s.Pop()
	left, _ := s.Pop()

	result, err := units.BinaryOp(op, left, right)
	if err != nil {
		s.Push(left)
		s.Push(right)
		return err
	}
	return s.pushOperand(result)
}

// pow pops an exponent, which must be dimensionless, and raises the value
// below it.
func (s *Stack) pow() error {
	if len(s.values) < 2 {
		return fmt.Errorf("binary operation '%s': %w", "**", ErrStackUnderflow)
	}
	exponent, _ := s.Pop()
	base, _ := s.Pop()

	restore := func(err error) error {
		s.Push(base)
		s.Push(exponent)
		return err
	}

	n, ok := exponent.(units.Number)
	if !ok {
		return restore(&units.Error{Code: units.CodeUnsupportedOperand, Op: "pow", Message: fmt.Sprintf("exponent %s has units", exponent)})
	}
	p, err := units.PowerOf(float64(n))
	if err != nil {
		return restore(err)
	}
	result, err := units.Raise(base, p)
	if err != nil {
		return restore(err)
	}
	return s.pushOperand(result)
}

func (s *Stack) unaryOp(op string) error {
	value, err := s.Pop()
	if err != nil {
		return fmt.Errorf("unary operation '%s': %w", op, ErrStackUnderflow)
	}

	result, err := units.UnaryOp(op, value)
	if err != nil {
		s.Push(value)
		return err
	}
	s.Push(result)
	return nil
}

// reduce folds the whole stack with op, bottom value first.
func (s *Stack) reduce(op string) error {
	if len(s.values) < 2 {
		return fmt.Errorf("reduction operation '@%s': %w", op, ErrStackUnderflow)
	}

	type partial struct {
		operand units.Operand
		err     error
	}
	folded := enumerable.Reduce(s.values[1:], partial{operand: s.values[0]}, func(acc partial, v units.Value) partial {
		if acc.err != nil {
			return acc
		}
		operand, err := units.BinaryOp(op, acc.operand, v)
		return partial{operand: operand, err: err}
	})
	if folded.err != nil {
		return folded.err
	}

	value, ok := folded.operand.(units.Value)
	if !ok {
		return fmt.Errorf("reduction operation '@%s' produced %T", op, folded.operand)
	}
	s.values = []units.Value{value}
	return nil
}

func (s *Stack) pushOperand(o units.Operand) error {
	v, ok := o.(units.Value)
	if !ok {
		return fmt.Errorf("result %v is not a value", o)
	}
	s.Push(v)
	return nil
}

func (s *Stack) Push(v units.Value) {
	s.values = append(s.values, v)
}

func (s *Stack) Pop() (units.Value, error) {
	if len(s.values) == 0 {
		return nil, fmt.Errorf("stack is empty: %w", ErrStackUnderflow)
	}
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]

	return v, nil
}

func (s *Stack) Peek() (units.Value, error) {
	if len(s.values) == 0 {
		return nil, fmt.Errorf("stack is empty: %w", ErrStackUnderflow)
	}

	return s.values[len(s.values)-1], nil
}

// Values are immutable, so dup can share the top value.
func (s *Stack) dup() error {
	if len(s.values) < 1 {
		return fmt.Errorf("duplicate: %w", ErrStackUnderflow)
	}

	s.values = append(s.values, s.values[len(s.values)-1])
	return nil
}

func (s *Stack) exchange() error {
	if len(s.values) < 2 {
		return fmt.Errorf("exchange: %w", ErrStackUnderflow)
	}

	s.values[len(s.values)-1], s.values[len(s.values)-2] = s.values[len(s.values)-2], s.values[len(s.values)-1]
	return nil
}

func (s *Stack) Size() int {
	return len(s.values)
}

// Values returns a copy of the stack, bottom first.
func (s *Stack) Values() []units.Value {
	return slices.Clone(s.values)
}

func (s *Stack) Oneline() string {
	var sb strings.Builder
	separator := ""
	for i, v := range s.values {
		sb.WriteString(fmt.Sprintf("%s%s", separator, v))
		if i == 0 {
			separator = " "
		}
	}
	return sb.String()
}
