// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package charterr defines the error codes returned by the chart layer model.
package charterr

import (
	"errors"
	"fmt"
)

type Code string

const (
	// A caller supplied an argument which cannot be used, e.g. an unknown layer type.
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"
	// An abstract drawing step was reached.
	ErrCodeNotImplemented Code = "NOT_IMPLEMENTED"
	// Series data cannot be combined, e.g. averaging series of different length.
	ErrCodeInvalidData Code = "INVALID_DATA"
)

type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether any error in the chain of err carries the given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode returns the code of the first *Error in the chain, or an empty code.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
