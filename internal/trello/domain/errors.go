package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a board aggregation failure.
type Kind int

const (
	// KindConfiguration means Trello credentials are missing.
	KindConfiguration Kind = iota + 1
	// KindService means Trello answered with a non-success status, could
	// not be reached, or sent a body that could not be decoded.
	KindService
	// KindValidation means the caller passed an unusable argument.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindService:
		return "service"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is the only error type produced by the trello packages.
type Error struct {
	Kind    Kind
	Message string
	// Status and Body are set for service errors that carried a response.
	Status int
	Body   string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindService && e.Status != 0:
		return fmt.Sprintf("Trello API error: %d - %s", e.Status, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewConfigurationError(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

// NewServiceError reports a non-success response from Trello.
func NewServiceError(status int, body string) *Error {
	return &Error{Kind: KindService, Message: "Trello API error", Status: status, Body: body}
}

// WrapServiceError reports a transport or decoding failure talking to Trello.
func WrapServiceError(message string, err error) *Error {
	return &Error{Kind: KindService, Message: message, Err: err}
}

func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// IsKind reports whether err is, or wraps, an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
