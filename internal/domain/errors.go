package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrBusy is returned when the same action is already in flight for a
	// session. The first request is never cancelled.
	ErrBusy = errors.New("request already in progress")
	// ErrNotFound is returned when no résumé is stored for a user.
	ErrNotFound = errors.New("resume not found")
)

// ValidationError reports a required field missing before any request is sent.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("%s is required", e.Field)
}

func Required(field string) error {
	return &ValidationError{Field: field}
}

// FormatError reports a malformed input such as a repository URL.
type FormatError struct {
	Value string
	Msg   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %q", e.Msg, e.Value)
}

// RequestError is a failure status from the storage/generation service.
// Message holds the service's own error text, if any.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed (status %d)", e.Status)
}

// ParseError reports a response body that is not the expected payload.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "unexpected response"
}

func (e *ParseError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var v *ValidationError
	var f *FormatError
	return errors.As(err, &v) || errors.As(err, &f)
}

func IsUpstream(err error) bool {
	var r *RequestError
	var p *ParseError
	return errors.As(err, &r) || errors.As(err, &p)
}
