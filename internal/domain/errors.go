package domain

import "errors"

var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("validation error")
)

// Remote API failures. Every call through the API client fails with exactly
// one of these.
var (
	ErrUnavailable       = errors.New("booking service unavailable")
	ErrRejected          = errors.New("request rejected by booking service")
	ErrEmptyResponse     = errors.New("booking service returned an empty response")
	ErrMalformedResponse = errors.New("booking service returned a malformed response")
)

var (
	ErrViewClosed = errors.New("view is no longer active")
	ErrFormClosed = errors.New("form is not open")
)
