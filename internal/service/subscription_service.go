package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/davmoren/tunebase/internal/domain"
	"github.com/davmoren/tunebase/internal/platform/logger"
	"github.com/davmoren/tunebase/internal/store"
	"github.com/google/uuid"
)

// SubscriptionServiceError is a custom error type for subscription service errors.
type SubscriptionServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for SubscriptionServiceError.
func (e *SubscriptionServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("subscription service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("subscription service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *SubscriptionServiceError) Unwrap() error {
	return e.Err
}

// NewSubscriptionServiceError creates a new SubscriptionServiceError.
func NewSubscriptionServiceError(operation, message string, err error) *SubscriptionServiceError {
	return &SubscriptionServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// SubscriptionService provides subscription-related operations
type SubscriptionService interface {
	// CreateOrRenew subscribes the user to the given plan. If the user already
	// has an active subscription it is renewed in place (plan switched,
	// creation timestamp refreshed); otherwise a fresh active subscription is
	// created. Exactly one row is written either way.
	// Returns store.ErrUserNotFound if the user does not exist and
	// store.ErrActiveSubscriptionExists if a concurrent writer wins the race.
	CreateOrRenew(ctx context.Context, userID uuid.UUID, plan domain.PlanType) (*domain.Subscription, error)

	// Cancel deactivates the subscription with the given ID.
	// Returns store.ErrSubscriptionNotFound if it does not exist and
	// ErrAlreadyCancelled if it is already inactive.
	Cancel(ctx context.Context, id uuid.UUID) (*domain.Subscription, error)

	// GetActiveSubscription retrieves the user's active subscription together
	// with the owner's name and email.
	// Returns store.ErrSubscriptionNotFound if the user has none.
	GetActiveSubscription(ctx context.Context, userID uuid.UUID) (*store.ActiveSubscription, error)

	// ListPlans returns the static plan catalog.
	ListPlans(ctx context.Context) []Plan
}

// subscriptionServiceImpl implements the SubscriptionService interface
type subscriptionServiceImpl struct {
	db        *sql.DB
	userStore store.UserStore
	subStore  store.SubscriptionStore
	logger    *slog.Logger
}

// NewSubscriptionService creates a new SubscriptionService.
// It returns an error if any of the required dependencies are nil.
func NewSubscriptionService(
	db *sql.DB,
	userStore store.UserStore,
	subStore store.SubscriptionStore,
	logger *slog.Logger,
) (SubscriptionService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if userStore == nil {
		return nil, domain.NewValidationError("userStore", "cannot be nil", domain.ErrValidation)
	}
	if subStore == nil {
		return nil, domain.NewValidationError("subStore", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &subscriptionServiceImpl{
		db:        db,
		userStore: userStore,
		subStore:  subStore,
		logger:    logger.With(slog.String("component", "subscription_service")),
	}, nil
}

// CreateOrRenew implements SubscriptionService.CreateOrRenew
// The active row is locked inside the transaction before the renew-or-create
// decision so two concurrent calls for the same user serialize; the partial
// unique index on active subscriptions backstops any remaining race.
func (s *subscriptionServiceImpl) CreateOrRenew(
	ctx context.Context,
	userID uuid.UUID,
	plan domain.PlanType,
) (*domain.Subscription, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		log.Error("failed to look up user for subscription",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewSubscriptionServiceError("create_or_renew", "failed to look up user", err)
	}

	var result *domain.Subscription
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txSubStore := s.subStore.WithTx(tx)

		existing, err := txSubStore.GetActiveByUserForUpdate(ctx, userID)
		switch {
		case err == nil:
			if err := existing.Renew(plan); err != nil {
				return err
			}
			if err := txSubStore.Update(ctx, existing); err != nil {
				log.Error("failed to renew subscription",
					slog.String("error", err.Error()),
					slog.String("subscription_id", existing.ID.String()))
				return NewSubscriptionServiceError("create_or_renew", "failed to renew subscription", err)
			}
			log.Info("subscription renewed",
				slog.String("subscription_id", existing.ID.String()),
				slog.String("user_id", userID.String()),
				slog.String("plan_type", string(plan)))
			result = existing
			return nil

		case errors.Is(err, store.ErrSubscriptionNotFound):
			sub, err := domain.NewSubscription(userID, plan)
			if err != nil {
				return err
			}
			if err := txSubStore.Create(ctx, sub); err != nil {
				if store.IsDuplicateError(err) {
					return err
				}
				log.Error("failed to create subscription",
					slog.String("error", err.Error()),
					slog.String("user_id", userID.String()))
				return NewSubscriptionServiceError("create_or_renew", "failed to create subscription", err)
			}
			log.Info("subscription created",
				slog.String("subscription_id", sub.ID.String()),
				slog.String("user_id", userID.String()),
				slog.String("plan_type", string(plan)))
			result = sub
			return nil

		default:
			log.Error("failed to lock active subscription",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()))
			return NewSubscriptionServiceError("create_or_renew", "failed to lock active subscription", err)
		}
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Cancel implements SubscriptionService.Cancel
func (s *subscriptionServiceImpl) Cancel(ctx context.Context, id uuid.UUID) (*domain.Subscription, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sub, err := s.subStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		log.Error("failed to look up subscription for cancel",
			slog.String("error", err.Error()),
			slog.String("subscription_id", id.String()))
		return nil, NewSubscriptionServiceError("cancel", "failed to look up subscription", err)
	}

	if !sub.IsActive {
		log.Debug("subscription already cancelled",
			slog.String("subscription_id", id.String()))
		return nil, ErrAlreadyCancelled
	}

	sub.Cancel()
	if err := s.subStore.Update(ctx, sub); err != nil {
		log.Error("failed to cancel subscription",
			slog.String("error", err.Error()),
			slog.String("subscription_id", id.String()))
		return nil, NewSubscriptionServiceError("cancel", "failed to update subscription", err)
	}

	log.Info("subscription cancelled",
		slog.String("subscription_id", id.String()),
		slog.String("user_id", sub.UserID.String()))
	return sub, nil
}

// GetActiveSubscription implements SubscriptionService.GetActiveSubscription
func (s *subscriptionServiceImpl) GetActiveSubscription(
	ctx context.Context,
	userID uuid.UUID,
) (*store.ActiveSubscription, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sub, err := s.subStore.GetActiveWithOwner(ctx, userID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		log.Error("failed to get active subscription",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewSubscriptionServiceError("get_active", "failed to get active subscription", err)
	}

	return sub, nil
}

// ListPlans implements SubscriptionService.ListPlans
func (s *subscriptionServiceImpl) ListPlans(_ context.Context) []Plan {
	return AvailablePlans()
}
