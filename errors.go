// Package scholarseeker - errors.go
// Defines the failure channels surfaced by the completion client and session.

package scholarseeker

import "errors"

var (
	// ErrRetriesExhausted is returned when every attempt of a retryable
	// request has failed.
	ErrRetriesExhausted = errors.New("retries exhausted")

	// ErrNonRetryable wraps an HTTP failure that must not be retried.
	ErrNonRetryable = errors.New("non-retryable request error")

	// ErrMalformedResponse means a completion arrived without the expected
	// message content.
	ErrMalformedResponse = errors.New("malformed completion response")

	ErrSessionBusy   = errors.New("a response is already being generated")
	ErrSessionClosed = errors.New("session has been closed")
)
