// Package errors defines the closed set of domain failure kinds and the
// AppError value that carries them from services to the HTTP layer.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain failure. Callers only ever see the kind and the
// public message.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindInvalidReference
	KindNotFound
	KindUnauthorized
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindInvalidReference:
		return "invalid_reference"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// HTTPStatus maps a kind to its response status.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindInvalidReference:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// AppError is a domain failure. Diag is an internal diagnostic code for logs;
// it is never serialised.
type AppError struct {
	Kind    Kind
	Code    int
	Message string
	Diag    string
}

func (e *AppError) Error() string {
	if e.Diag != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Diag)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches another *AppError with the same kind and code, so sentinel
// values keep working after WithDiag.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// WithDiag returns a copy tagged with an internal diagnostic code.
func (e *AppError) WithDiag(diag string) *AppError {
	cp := *e
	cp.Diag = diag
	return &cp
}

// New creates an AppError.
func New(kind Kind, code int, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

// KindOf reports the kind of err, or 0 when err is not an AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}

// As is errors.As specialised for *AppError.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}
