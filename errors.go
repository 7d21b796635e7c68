// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors raised by the algebra.
type ErrorCode string

const (
	// CodeInvalidArgument indicates malformed constructor input: an empty unit
	// name, an unknown prefix symbol or a non-finite power.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// CodeIncompatibleUnits indicates add, sub or an ordering comparison
	// between quantities whose units are not the same multiset.
	CodeIncompatibleUnits ErrorCode = "INCOMPATIBLE_UNITS"

	// CodeDivisionByZero indicates a divisor whose folded value is exactly zero.
	CodeDivisionByZero ErrorCode = "DIVISION_BY_ZERO"

	// CodeUnsupportedOperand indicates an operator applied to an operand
	// pairing outside its contract.
	CodeUnsupportedOperand ErrorCode = "UNSUPPORTED_OPERAND"
)

// Error is the single error type returned by this package.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op names the operation that failed, e.g. "add" or "NewSingle".
	Op string

	// Message is a human-readable description.
	Message string
}

// Sentinels for errors.Is; only the Code is compared.
var (
	ErrInvalidArgument    = &Error{Code: CodeInvalidArgument}
	ErrIncompatibleUnits  = &Error{Code: CodeIncompatibleUnits}
	ErrDivisionByZero     = &Error{Code: CodeDivisionByZero}
	ErrUnsupportedOperand = &Error{Code: CodeUnsupportedOperand}
)

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

func newError(code ErrorCode, op, format string, args ...any) *Error {
	return &Error{Code: code, Op: op, Message: fmt.Sprintf(format, args...)}
}

func invalidArgument(op, format string, args ...any) *Error {
	return newError(CodeInvalidArgument, op, format, args...)
}

func incompatibleUnits(op string, left, right Unit) *Error {
	return newError(CodeIncompatibleUnits, op, "'%s' and '%s'", unitString(left), unitString(right))
}

func divisionByZero(op string) *Error {
	return newError(CodeDivisionByZero, op, "divisor is zero")
}

func unsupportedOperand(op string, left, right any) *Error {
	return newError(CodeUnsupportedOperand, op, "no applicable operation for %T and %T", left, right)
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsInvalidArgument returns true if err is an invalid argument error.
func IsInvalidArgument(err error) bool { return hasCode(err, CodeInvalidArgument) }

// IsIncompatibleUnits returns true if err is an incompatible units error.
func IsIncompatibleUnits(err error) bool { return hasCode(err, CodeIncompatibleUnits) }

// IsDivisionByZero returns true if err is a division by zero error.
func IsDivisionByZero(err error) bool { return hasCode(err, CodeDivisionByZero) }

// IsUnsupportedOperand returns true if err is an unsupported operand error.
func IsUnsupportedOperand(err error) bool { return hasCode(err, CodeUnsupportedOperand) }
