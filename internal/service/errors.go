package service

import "errors"

// Every operation fails with exactly one of these kinds. Callers classify
// failures with errors.Is; wrapping preserves the kind.
var (
	// ErrInvalidReference indicates a malformed reference, detected before
	// any remote call is made.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrValidationFailed indicates a malformed create or update payload,
	// detected before any remote call is made.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNotFound indicates an unknown task id.
	ErrNotFound = errors.New("task not found")

	// ErrUnauthorized indicates a missing, expired or revoked session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRemoteRejected indicates the service refused a well-formed request,
	// such as marking a never-completed task incomplete.
	ErrRemoteRejected = errors.New("rejected by service")

	// ErrRemoteUnavailable indicates a transport failure, timeout or
	// server-side outage. Requests are never retried automatically.
	ErrRemoteUnavailable = errors.New("service unavailable")
)
