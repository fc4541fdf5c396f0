// Package apperr defines the error taxonomy shared by all API operations
// and maps it onto the wire shape {"detail": "..."} the frontend expects.
package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies an operation failure.
type Kind int

const (
	// KindUnexpected covers storage and other infrastructure failures (500).
	KindUnexpected Kind = iota
	// KindValidation covers missing or malformed input (400).
	KindValidation
	// KindNotFound covers absent referenced records (404).
	KindNotFound
	// KindInvalidState covers business-rule violations such as claiming a
	// lost-type post or claiming your own post (400).
	KindInvalidState
	// KindAuthorization covers callers acting on records they do not own (403).
	KindAuthorization
	// KindAuthentication covers missing or failed credentials (401).
	KindAuthentication
)

// Error is a classified operation error carrying the user-visible detail text.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Detail + ": " + e.Err.Error()
	}
	return e.Detail
}

func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status code for the error's kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindInvalidState:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindAuthorization:
		return fiber.StatusForbidden
	case KindAuthentication:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

func Validation(detail string) *Error    { return &Error{Kind: KindValidation, Detail: detail} }
func NotFound(detail string) *Error      { return &Error{Kind: KindNotFound, Detail: detail} }
func InvalidState(detail string) *Error  { return &Error{Kind: KindInvalidState, Detail: detail} }
func Authorization(detail string) *Error { return &Error{Kind: KindAuthorization, Detail: detail} }

func Authentication(detail string) *Error {
	return &Error{Kind: KindAuthentication, Detail: detail}
}

// Unexpected wraps an infrastructure failure with a user-visible detail.
func Unexpected(detail string, err error) *Error {
	return &Error{Kind: KindUnexpected, Detail: detail, Err: err}
}

// Respond converts any error to the JSON error body. Unclassified errors
// become 500s with a generic detail so internals never leak.
func Respond(c *fiber.Ctx, err error) error {
	var ae *Error
	if errors.As(err, &ae) {
		return c.Status(ae.Status()).JSON(fiber.Map{"detail": ae.Detail})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
}
