package store

import (
	"context"
	"database/sql"

	"github.com/davmoren/tunebase/internal/domain"
	"github.com/google/uuid"
)

// ActiveSubscription is a subscription joined with its owner's identity,
// as returned by GetActiveWithOwner. The owner fields are denormalized from
// the users table at read time; nothing holds a live User reference.
type ActiveSubscription struct {
	domain.Subscription
	OwnerName  string
	OwnerEmail string
}

// SubscriptionStore defines the interface for subscription data persistence.
//
// The schema carries a partial unique constraint on (user_id) over active
// rows, so at most one active subscription can exist per user no matter how
// many writers race. Create surfaces that constraint as
// ErrActiveSubscriptionExists.
type SubscriptionStore interface {
	// Create saves a new subscription to the store.
	// Returns ErrActiveSubscriptionExists if the user already has an active
	// subscription. Returns ErrInvalidEntity if the user does not exist.
	Create(ctx context.Context, sub *domain.Subscription) error

	// GetByID retrieves a subscription by its unique ID.
	// Returns ErrSubscriptionNotFound if the subscription does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Subscription, error)

	// GetActiveByUserForUpdate retrieves the user's single active
	// subscription under a row lock, serializing concurrent create-or-renew
	// calls for the same user. Must be called inside a transaction (via
	// WithTx). Returns ErrSubscriptionNotFound if the user has none.
	GetActiveByUserForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Subscription, error)

	// GetActiveWithOwner retrieves the user's active subscription together
	// with the owner's name and email.
	// Returns ErrSubscriptionNotFound if the user has none.
	GetActiveWithOwner(ctx context.Context, userID uuid.UUID) (*ActiveSubscription, error)

	// Update persists changes to an existing subscription (plan type,
	// created-at refresh, deactivation).
	// Returns ErrSubscriptionNotFound if the subscription does not exist.
	Update(ctx context.Context, sub *domain.Subscription) error

	// WithTx returns a new SubscriptionStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) SubscriptionStore
}
