package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrUserNotFound, ErrPlaylistNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a second active subscription for a user).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored or references a row that does not exist. Check the
	// wrapped error for specific details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUnavailable is returned when the store cannot be reached or the
	// connection is lost mid-operation. Callers decide on retry policy;
	// the store never retries internally.
	ErrUnavailable = errors.New("store unavailable")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrSongNotFound indicates that the requested song does not exist in the store.
	ErrSongNotFound = fmt.Errorf("%w: song", ErrNotFound)

	// ErrSubscriptionNotFound indicates that the requested subscription does not
	// exist in the store, or that a user has no active subscription.
	ErrSubscriptionNotFound = fmt.Errorf("%w: subscription", ErrNotFound)

	// ErrPlaylistNotFound indicates that the requested playlist does not exist in the store.
	ErrPlaylistNotFound = fmt.Errorf("%w: playlist", ErrNotFound)

	// ErrMembershipNotFound indicates that the song is not a member of the playlist.
	ErrMembershipNotFound = fmt.Errorf("%w: playlist membership", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrActiveSubscriptionExists indicates that the user already has an active
	// subscription. Surfaced when a concurrent writer wins the create-or-renew
	// race and the partial unique constraint rejects the second insert.
	ErrActiveSubscriptionExists = fmt.Errorf("%w: active subscription", ErrDuplicate)

	// ErrDuplicateMembership indicates that the song is already a member of the
	// playlist.
	ErrDuplicateMembership = fmt.Errorf("%w: playlist membership", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// This includes the generic ErrNotFound and all entity-specific not found errors.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
// This includes the generic ErrDuplicate and all entity-specific duplicate errors.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// IsUnavailableError checks if the error indicates the store could not be reached.
func IsUnavailableError(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "user", "playlist")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
