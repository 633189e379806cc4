package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSession is returned by order operations attempted without a bearer token.
	ErrNoSession = errors.New("no active session")

	// ErrSubmissionInFlight is returned when a form is submitted while its previous
	// request has not resolved yet.
	ErrSubmissionInFlight = errors.New("submission already in flight")
)

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// RequestError covers both a transport failure (StatusCode 0) and a non-2xx
// response from the backend.
type RequestError struct {
	Op         string
	StatusCode int
	Cause      error
}

func (e *RequestError) Error() string {
	switch {
	case e.Cause != nil && e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Cause)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Cause)
	default:
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	}
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}

// IsNetwork reports whether the request never produced an HTTP response.
func (e *RequestError) IsNetwork() bool {
	return e.StatusCode == 0
}

func NewRequestError(op string, statusCode int, cause error) *RequestError {
	return &RequestError{
		Op:         op,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

func IsRequestError(err error) (*RequestError, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

func IsUnauthorizedError(err error) (*UnauthorizedError, bool) {
	var ue *UnauthorizedError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func IsConflictError(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}
