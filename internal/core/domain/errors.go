package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Day-type oracle errors.

	// ErrOracleUnavailable indicates the oracle could not be reached at all.
	ErrOracleUnavailable = errors.New("day-type oracle unavailable")

	// ErrOracleRejected indicates the oracle answered with a non-success status.
	ErrOracleRejected = errors.New("day-type oracle rejected request")

	// ErrRateLimited indicates the oracle rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
