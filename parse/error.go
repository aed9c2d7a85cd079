package parse

import (
	"errors"

	"github.com/napalu/kommando/i18n"
)

// Error is a failure located at a position of the input. Err is usually one of the
// translatable sentinels of the errs package.
type Error struct {
	Position int
	Err      error
}

// NewError returns an *Error at pos
func NewError(pos int, err error) *Error {
	return &Error{Position: pos, Err: err}
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// Format renders the wrapped error with provider when it is translatable
func (e *Error) Format(provider i18n.MessageProvider) string {
	if f, ok := e.Err.(i18n.Formatter); ok {
		return f.Format(provider)
	}

	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PositionOf returns the position carried by err, or fallback when err carries none
func PositionOf(err error, fallback int) int {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Position
	}

	return fallback
}
