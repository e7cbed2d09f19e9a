// Package apperr classifies failures that cross layer boundaries so delivery
// can tell "not found" apart from "data source unavailable".
package apperr

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type Type string

const (
	TypeNotFound     Type = "NOT_FOUND"
	TypeInvalidInput Type = "INVALID_INPUT"
	TypeUnauthorized Type = "UNAUTHORIZED"
	TypeInternal     Type = "INTERNAL"
	TypeUnavailable  Type = "UNAVAILABLE"
)

type Error struct {
	Type    Type
	Message string
	Err     error
	Stack   []byte
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) StackTrace() []byte {
	return e.Stack
}

func New(t Type, message string, err error) *Error {
	var stack []byte
	if err != nil {
		var ge *goerrors.Error
		if errors.As(err, &ge) {
			stack = ge.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}
	return &Error{Type: t, Message: message, Err: err, Stack: stack}
}

func NotFound(message string, err error) *Error {
	return New(TypeNotFound, message, err)
}

func InvalidInput(message string, err error) *Error {
	return New(TypeInvalidInput, message, err)
}

func Unauthorized(message string, err error) *Error {
	return New(TypeUnauthorized, message, err)
}

func Internal(message string, err error) *Error {
	return New(TypeInternal, message, err)
}

func Unavailable(message string, err error) *Error {
	return New(TypeUnavailable, message, err)
}

// TypeOf returns the type of the first *Error in err's chain, or
// TypeInternal when there is none.
func TypeOf(err error) Type {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return TypeInternal
}

// Is reports whether err carries type t.
func Is(err error, t Type) bool {
	if err == nil {
		return false
	}
	return TypeOf(err) == t
}

// MessageOf returns the message of the first *Error in err's chain.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}
