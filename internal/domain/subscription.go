package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PlanType identifies a subscription plan.
type PlanType string

// Known plan types.
const (
	PlanFree    PlanType = "Free"
	PlanPremium PlanType = "Premium"
)

// Common validation errors for Subscription.
var (
	ErrEmptySubscriptionID     = errors.New("subscription ID cannot be empty")
	ErrEmptySubscriptionUserID = errors.New("subscription user ID cannot be empty")
)

// ParsePlanType converts a raw string into a PlanType, accepting any casing.
// Returns ErrInvalidPlanType for unknown values.
func ParsePlanType(raw string) (PlanType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "free":
		return PlanFree, nil
	case "premium":
		return PlanPremium, nil
	default:
		return "", ErrInvalidPlanType
	}
}

// isValidPlanType checks if the given plan type is a known PlanType.
func isValidPlanType(plan PlanType) bool {
	switch plan {
	case PlanFree, PlanPremium:
		return true
	default:
		return false
	}
}

// Subscription represents a user's paid (or free) plan enrollment.
// At most one subscription per user may be active at any time; the store
// enforces this with a partial unique constraint and the service layer
// performs its create-or-renew check under a transaction.
type Subscription struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	PlanType  PlanType  `json:"plan_type"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSubscription creates a new active Subscription for the given user and
// plan. It generates a new UUID for the subscription ID and sets the creation
// timestamp; activation is explicit here rather than a storage-layer default.
// Returns an error if validation fails.
func NewSubscription(userID uuid.UUID, plan PlanType) (*Subscription, error) {
	sub := &Subscription{
		ID:        uuid.New(),
		UserID:    userID,
		PlanType:  plan,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}

	if err := sub.Validate(); err != nil {
		return nil, err
	}

	return sub, nil
}

// Validate checks if the Subscription has valid data.
// Returns an error if any field fails validation.
func (s *Subscription) Validate() error {
	if s.ID == uuid.Nil {
		return ErrEmptySubscriptionID
	}

	if s.UserID == uuid.Nil {
		return ErrEmptySubscriptionUserID
	}

	if !isValidPlanType(s.PlanType) {
		return ErrInvalidPlanType
	}

	return nil
}

// Renew switches the subscription to the given plan and refreshes the
// creation timestamp in place. The record keeps its identity and stays
// active; no new row is created for a renewal.
// Returns an error if the plan type is invalid.
func (s *Subscription) Renew(plan PlanType) error {
	if !isValidPlanType(plan) {
		return ErrInvalidPlanType
	}

	s.PlanType = plan
	s.CreatedAt = time.Now().UTC()
	return nil
}

// Cancel deactivates the subscription. Cancellation is terminal for the
// record; a later subscribe creates a fresh record.
func (s *Subscription) Cancel() {
	s.IsActive = false
}
