package api

import (
	"log/slog"
	"net/http"

	"github.com/davmoren/tunebase/internal/api/shared"
	"github.com/davmoren/tunebase/internal/domain"
	"github.com/davmoren/tunebase/internal/platform/logger"
	"github.com/davmoren/tunebase/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// SubscribeRequest represents the request body for creating or renewing a
// subscription.
type SubscribeRequest struct {
	UserID   string `json:"user_id"   validate:"required,uuid"`
	PlanType string `json:"plan_type" validate:"required"`
}

// SubscriptionHandler handles subscription-related HTTP requests
type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
	logger              *slog.Logger
}

// NewSubscriptionHandler creates a new SubscriptionHandler
func NewSubscriptionHandler(
	subscriptionService service.SubscriptionService,
	logger *slog.Logger,
) *SubscriptionHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SubscriptionHandler")
	}

	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
		logger:              logger.With(slog.String("component", "subscription_handler")),
	}
}

// Subscribe handles POST /subscriptions requests.
// An existing active subscription is renewed in place; otherwise a fresh one
// is created. Both outcomes return the resulting subscription.
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SubscribeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("failed to decode subscribe request", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user ID")
		return
	}

	plan, err := domain.ParsePlanType(req.PlanType)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	sub, err := h.subscriptionService.CreateOrRenew(r.Context(), userID, plan)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to subscribe"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, subscriptionToResponse(sub))
}

// GetActiveSubscription handles GET /users/{id}/subscription requests.
func (h *SubscriptionHandler) GetActiveSubscription(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user ID")
		return
	}

	sub, err := h.subscriptionService.GetActiveSubscription(r.Context(), userID)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to get subscription"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, activeSubscriptionToResponse(sub))
}

// Cancel handles POST /subscriptions/{id}/cancel requests.
func (h *SubscriptionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid subscription ID")
		return
	}

	sub, err := h.subscriptionService.Cancel(r.Context(), id)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to cancel subscription"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, subscriptionToResponse(sub))
}

// ListPlans handles GET /plans requests.
func (h *SubscriptionHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.subscriptionService.ListPlans(r.Context()))
}
