// Package apperr defines the error taxonomy surfaced by the service layer.
// Handlers translate these into the JSON envelope; anything that is not an
// *Error maps to a 500.
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	// KindValidation: missing or malformed input.
	KindValidation Kind = iota
	// KindConflict: duplicate unique key, or delete blocked by a dependency.
	KindConflict
	// KindNotFound: referenced id does not resolve.
	KindNotFound
	// KindInsufficientStock: outbound quantity exceeds current stock.
	KindInsufficientStock
	// KindAuth: bad credentials or missing/invalid/expired token.
	KindAuth
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status maps an error to its HTTP status code.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return fiber.StatusInternalServerError
	}
	switch e.Kind {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindAuth:
		return fiber.StatusUnauthorized
	default:
		// Validation, conflict and insufficient-stock all surface as 400.
		return fiber.StatusBadRequest
	}
}

// Message returns the human-readable message for the response envelope,
// hiding internals behind a generic message for unclassified errors.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}

func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// InsufficientStock reports a rejected outbound movement. The message carries
// the current stock level so the caller can adjust.
func InsufficientStock(currentStock int) *Error {
	return &Error{
		Kind:    KindInsufficientStock,
		Message: fmt.Sprintf("Insufficient stock: current stock is %d", currentStock),
	}
}

func Unauthorized(format string, args ...interface{}) *Error {
	return &Error{Kind: KindAuth, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches an underlying cause while keeping the kind and message.
func Wrap(e *Error, cause error) *Error {
	return &Error{Kind: e.Kind, Message: e.Message, Err: cause}
}
