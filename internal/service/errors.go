package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// These errors represent conditions that callers may want to check for with
// errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in service-specific error types
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrAlreadyCancelled indicates a cancellation was requested for a
	// subscription that is already inactive. Cancellation is not idempotent;
	// a repeated cancel is a conflict.
	// API layer should map this to HTTP 409 Conflict.
	ErrAlreadyCancelled = errors.New("subscription is already cancelled")
)
