// Package apperr defines the error kinds shared by all services.
// Handlers map them to HTTP statuses; services never return raw
// storage errors for expected failures.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrPermissionDenied means the actor lacks the role a gated
	// operation requires, or is not a member of the board at all.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrAuthRequired means no authenticated actor was resolved.
	ErrAuthRequired = errors.New("authentication required")
)

// NotFoundError reports that an entity reference did not resolve.
type NotFoundError struct {
	Resource string
	Field    string
	Value    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: %v", e.Resource, e.Field, e.Value)
}

// NotFound builds a NotFoundError for the given reference.
func NotFound(resource, field string, value any) error {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// BadRequestError reports invalid input rejected before any write.
type BadRequestError struct {
	Reason string
}

func (e *BadRequestError) Error() string { return e.Reason }

// BadRequest builds a BadRequestError with the given reason.
func BadRequest(reason string) error {
	return &BadRequestError{Reason: reason}
}

// IsBadRequest reports whether err is a BadRequestError.
func IsBadRequest(err error) bool {
	var br *BadRequestError
	return errors.As(err, &br)
}
