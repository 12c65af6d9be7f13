// Package apperr classifies failures so handlers can map them to HTTP
// codes without inspecting storage internals.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindStorage
)

// Error carries the failure kind plus the offending field for
// validation failures.
type Error struct {
	Kind  Kind
	Field string
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(field, msg string) *Error {
	return &Error{Kind: KindValidation, Field: field, Msg: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Storage wraps an underlying store error unchanged.
func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Msg: err.Error(), Err: err}
}

// KindOf reports the kind of err, defaulting to KindStorage for
// errors that did not come through this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}
