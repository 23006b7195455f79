package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/davmoren/tunebase/internal/domain"
	"github.com/davmoren/tunebase/internal/platform/logger"
	"github.com/davmoren/tunebase/internal/store"
	"github.com/google/uuid"
)

// SubscriptionStore implements the store.SubscriptionStore interface
// using a PostgreSQL database as the storage backend.
//
// The subscriptions table carries a partial unique index on (user_id) over
// active rows; Create maps its violation to store.ErrActiveSubscriptionExists.
type SubscriptionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewSubscriptionStore creates a new PostgreSQL implementation of the
// SubscriptionStore interface. If logger is nil, a default logger will be used.
func NewSubscriptionStore(db store.DBTX, logger *slog.Logger) *SubscriptionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &SubscriptionStore{
		db:     db,
		logger: logger.With(slog.String("component", "subscription_store")),
	}
}

// Ensure SubscriptionStore implements store.SubscriptionStore interface
var _ store.SubscriptionStore = (*SubscriptionStore)(nil)

// Create implements store.SubscriptionStore.Create
// Returns store.ErrActiveSubscriptionExists if the user already has an
// active subscription, store.ErrInvalidEntity if the user does not exist.
func (s *SubscriptionStore) Create(ctx context.Context, sub *domain.Subscription) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := sub.Validate(); err != nil {
		log.Warn("subscription validation failed during create",
			slog.String("error", err.Error()),
			slog.String("subscription_id", sub.ID.String()))
		return err
	}

	query := `
		INSERT INTO subscriptions (id, user_id, plan_type, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		sub.ID,
		sub.UserID,
		sub.PlanType,
		sub.IsActive,
		sub.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create subscription",
			slog.String("error", err.Error()),
			slog.String("subscription_id", sub.ID.String()),
			slog.String("user_id", sub.UserID.String()))
		return MapError(err)
	}

	log.Info("subscription created successfully",
		slog.String("subscription_id", sub.ID.String()),
		slog.String("user_id", sub.UserID.String()),
		slog.String("plan_type", string(sub.PlanType)))
	return nil
}

// GetByID implements store.SubscriptionStore.GetByID
// Returns store.ErrSubscriptionNotFound if the subscription does not exist.
func (s *SubscriptionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subscription, error) {
	query := `
		SELECT id, user_id, plan_type, is_active, created_at
		FROM subscriptions
		WHERE id = $1
	`
	return s.querySubscription(ctx, query, id)
}

// GetActiveByUserForUpdate implements store.SubscriptionStore.GetActiveByUserForUpdate
// Returns store.ErrSubscriptionNotFound if the user has no active subscription.
// The FOR UPDATE clause serializes concurrent create-or-renew calls for the
// same user; only meaningful inside a transaction.
func (s *SubscriptionStore) GetActiveByUserForUpdate(ctx context.Context, userID uuid.UUID) (*domain.Subscription, error) {
	query := `
		SELECT id, user_id, plan_type, is_active, created_at
		FROM subscriptions
		WHERE user_id = $1 AND is_active
		FOR UPDATE
	`
	return s.querySubscription(ctx, query, userID)
}

// GetActiveWithOwner implements store.SubscriptionStore.GetActiveWithOwner
// Returns store.ErrSubscriptionNotFound if the user has no active subscription.
func (s *SubscriptionStore) GetActiveWithOwner(ctx context.Context, userID uuid.UUID) (*store.ActiveSubscription, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT s.id, s.user_id, s.plan_type, s.is_active, s.created_at, u.name, u.email
		FROM subscriptions s
		JOIN users u ON u.id = s.user_id
		WHERE s.user_id = $1 AND s.is_active
	`

	var result store.ActiveSubscription
	var plan string
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&result.ID,
		&result.UserID,
		&plan,
		&result.IsActive,
		&result.CreatedAt,
		&result.OwnerName,
		&result.OwnerEmail,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debug("no active subscription for user",
				slog.String("user_id", userID.String()))
			return nil, store.ErrSubscriptionNotFound
		}
		log.Error("failed to get active subscription with owner",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}

	result.PlanType = domain.PlanType(plan)
	return &result, nil
}

// Update implements store.SubscriptionStore.Update
// Returns store.ErrSubscriptionNotFound if the subscription does not exist.
func (s *SubscriptionStore) Update(ctx context.Context, sub *domain.Subscription) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := sub.Validate(); err != nil {
		log.Warn("subscription validation failed during update",
			slog.String("error", err.Error()),
			slog.String("subscription_id", sub.ID.String()))
		return err
	}

	query := `
		UPDATE subscriptions
		SET plan_type = $1, is_active = $2, created_at = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		sub.PlanType,
		sub.IsActive,
		sub.CreatedAt,
		sub.ID,
	)
	if err != nil {
		log.Error("failed to update subscription",
			slog.String("error", err.Error()),
			slog.String("subscription_id", sub.ID.String()))
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("subscription_id", sub.ID.String()))
		return MapError(err)
	}

	if rowsAffected == 0 {
		log.Debug("subscription not found for update",
			slog.String("subscription_id", sub.ID.String()))
		return store.ErrSubscriptionNotFound
	}

	log.Info("subscription updated successfully",
		slog.String("subscription_id", sub.ID.String()),
		slog.String("plan_type", string(sub.PlanType)),
		slog.Bool("is_active", sub.IsActive))
	return nil
}

// WithTx implements store.SubscriptionStore.WithTx
func (s *SubscriptionStore) WithTx(tx *sql.Tx) store.SubscriptionStore {
	return &SubscriptionStore{
		db:     tx,
		logger: s.logger,
	}
}

// querySubscription runs a single-subscription query and scans the row.
func (s *SubscriptionStore) querySubscription(ctx context.Context, query string, arg any) (*domain.Subscription, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var sub domain.Subscription
	var plan string
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&sub.ID,
		&sub.UserID,
		&plan,
		&sub.IsActive,
		&sub.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrSubscriptionNotFound
		}
		log.Error("failed to query subscription", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	sub.PlanType = domain.PlanType(plan)
	return &sub, nil
}
