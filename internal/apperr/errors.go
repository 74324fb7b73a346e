// Package apperr defines the error kinds surfaced to API clients.
package apperr

import (
	"net/http"

	"github.com/pkg/errors"
)

type Kind int

const (
	Internal Kind = iota
	BadRequest
	Unauthorized
	Forbidden
	NotFound
	Conflict
)

func (k Kind) String() string {
	switch k {
	case BadRequest:
		return "bad request"
	case Unauthorized:
		return "unauthorized"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not found"
	case Conflict:
		return "conflict"
	default:
		return "internal"
	}
}

// StatusCode maps a kind to the HTTP status reported in the error envelope.
func (k Kind) StatusCode() int {
	switch k {
	case BadRequest:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a kind and client-facing message to cause.
func Wrap(kind Kind, cause error, message string) error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func NewBadRequest(message string) error   { return New(BadRequest, message) }
func NewUnauthorized(message string) error { return New(Unauthorized, message) }
func NewForbidden(message string) error    { return New(Forbidden, message) }
func NewNotFound(message string) error     { return New(NotFound, message) }
func NewConflict(message string) error     { return New(Conflict, message) }

// KindOf reports the kind of the first *Error in err's chain. Errors that
// carry no kind are Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// Message returns the client-facing message for err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	if err == nil {
		return ""
	}
	return "Internal Server Error"
}
