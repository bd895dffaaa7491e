package domain

import (
	"errors"
	"strconv"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrUnavailable       = errors.New("remote service unavailable")
	ErrMalformedResponse = errors.New("malformed response")
	ErrValidation        = errors.New("validation failed")
	ErrSubmitInProgress  = errors.New("submission already in progress")
)

// ValidationError is a local form check that failed before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// RemoteError is a non-success answer of the commerce API.
type RemoteError struct {
	Status int
	Detail string
}

func (e *RemoteError) Error() string {
	if e.Detail == "" {
		return "remote status " + strconv.Itoa(e.Status)
	}
	return "remote status " + strconv.Itoa(e.Status) + ": " + e.Detail
}

func (e *RemoteError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == 404
	case ErrUnavailable:
		return e.Status >= 500
	}
	return false
}

// SubmitError carries the message shown to the user for a failed submission.
type SubmitError struct {
	Message string
	Err     error
}

func (e *SubmitError) Error() string {
	return e.Message
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}
