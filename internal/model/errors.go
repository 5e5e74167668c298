package model

import "errors"

var (
	// ErrInvalidInput marks caller-validation failures: a required
	// field is missing or the request type is unrecognized. The
	// caller must correct and resubmit; never retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAnalysisFailed marks an unexpected failure inside an
	// analyzer. Fatal for the request; surfaced as a generic failure.
	ErrAnalysisFailed = errors.New("analysis failed")

	// ErrSessionNotFound is returned when a quick-triage answer
	// references a session that does not exist or has expired.
	ErrSessionNotFound = errors.New("session not found")
)
