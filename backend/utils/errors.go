package utils

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindNotFound     ErrorKind = "not_found"
	KindInvalidState ErrorKind = "invalid_state"
	KindValidation   ErrorKind = "validation"
	KindConflict     ErrorKind = "conflict"
	KindInternal     ErrorKind = "internal"
)

// AppError is the error type services return to controllers.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError of the same kind, so errors.Is(err, ErrInvalidState) works.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == ""
}

var (
	ErrNotFound     = &AppError{Kind: KindNotFound}
	ErrInvalidState = &AppError{Kind: KindInvalidState}
	ErrValidation   = &AppError{Kind: KindValidation}
	ErrConflict     = &AppError{Kind: KindConflict}
)

func NotFoundErr(format string, args ...interface{}) error {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidStateErr(format string, args ...interface{}) error {
	return &AppError{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func ValidationErr(format string, args ...interface{}) error {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func ConflictErr(format string, args ...interface{}) error {
	return &AppError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of an AppError anywhere in the chain, KindInternal otherwise.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// FieldErrors carries per-field validation messages inside an AppError.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	return fmt.Sprintf("%d invalid field(s)", len(f))
}
