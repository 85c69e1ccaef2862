// Package apperrors defines the sentinel errors services return so the HTTP
// layer can map them to status codes without string matching.
package apperrors

import "errors"

var (
	// ErrNotFound maps to 404.
	ErrNotFound = errors.New("resource not found")
	// ErrForbidden maps to 403, ownership violations.
	ErrForbidden = errors.New("access denied")
	// ErrUnauthorized maps to 401.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConflict maps to 409, duplicate registrations and the like.
	ErrConflict = errors.New("conflict")
	// ErrInvalidInput maps to 400.
	ErrInvalidInput = errors.New("invalid input")
)

// NotFound wraps ErrNotFound with a concrete message.
func NotFound(msg string) error {
	return wrap(ErrNotFound, msg)
}

func Forbidden(msg string) error {
	return wrap(ErrForbidden, msg)
}

func Unauthorized(msg string) error {
	return wrap(ErrUnauthorized, msg)
}

func Conflict(msg string) error {
	return wrap(ErrConflict, msg)
}

func InvalidInput(msg string) error {
	return wrap(ErrInvalidInput, msg)
}

type wrapped struct {
	sentinel error
	msg      string
}

func wrap(sentinel error, msg string) error {
	return &wrapped{sentinel: sentinel, msg: msg}
}

func (w *wrapped) Error() string {
	return w.msg
}

func (w *wrapped) Unwrap() error {
	return w.sentinel
}
