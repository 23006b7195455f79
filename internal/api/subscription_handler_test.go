package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/davmoren/tunebase/internal/domain"
	"github.com/davmoren/tunebase/internal/service"
	"github.com/davmoren/tunebase/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func subscriptionTestRouter(svc service.SubscriptionService) http.Handler {
	h := NewSubscriptionHandler(svc, slog.Default())

	r := chi.NewRouter()
	r.Post("/subscriptions", h.Subscribe)
	r.Post("/subscriptions/{id}/cancel", h.Cancel)
	r.Get("/users/{id}/subscription", h.GetActiveSubscription)
	r.Get("/plans", h.ListPlans)
	return r
}

func TestSubscribeCreated(t *testing.T) {
	t.Parallel()

	svc := &mockSubscriptionService{}
	userID := uuid.New()
	sub := &domain.Subscription{
		ID:        uuid.New(),
		UserID:    userID,
		PlanType:  domain.PlanPremium,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	svc.On("CreateOrRenew", mock.Anything, userID, domain.PlanPremium).Return(sub, nil)

	body, _ := json.Marshal(SubscribeRequest{UserID: userID.String(), PlanType: "premium"})
	req := httptest.NewRequest(http.MethodPost, "/subscriptions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	subscriptionTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp SubscriptionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, sub.ID.String(), resp.ID)
	assert.Equal(t, "Premium", resp.PlanType)
	assert.True(t, resp.IsActive)
}

func TestSubscribeUnknownPlan(t *testing.T) {
	t.Parallel()

	svc := &mockSubscriptionService{}

	body, _ := json.Marshal(SubscribeRequest{UserID: uuid.New().String(), PlanType: "gold"})
	req := httptest.NewRequest(http.MethodPost, "/subscriptions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	subscriptionTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CreateOrRenew", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscribeMissingBody(t *testing.T) {
	t.Parallel()

	svc := &mockSubscriptionService{}

	req := httptest.NewRequest(http.MethodPost, "/subscriptions", bytes.NewReader([]byte("{}")))
	rec := httptest.NewRecorder()

	subscriptionTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubscribeUserNotFound(t *testing.T) {
	t.Parallel()

	svc := &mockSubscriptionService{}
	userID := uuid.New()
	svc.On("CreateOrRenew", mock.Anything, userID, domain.PlanFree).
		Return(nil, store.ErrUserNotFound)

	body, _ := json.Marshal(SubscribeRequest{UserID: userID.String(), PlanType: "Free"})
	req := httptest.NewRequest(http.MethodPost, "/subscriptions", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	subscriptionTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelConflictWhenAlreadyCancelled(t *testing.T) {
	t.Parallel()

	svc := &mockSubscriptionService{}
	id := uuid.New()
	svc.On("Cancel", mock.Anything, id).Return(nil, service.ErrAlreadyCancelled)

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/subscriptions/%s/cancel", id), nil)
	rec := httptest.NewRecorder()

	subscriptionTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Subscription is already cancelled", resp["error"])
}

func TestCancelOK(t *testing.T) {
	t.Parallel()

	svc := &mockSubscriptionService{}
	sub := &domain.Subscription{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		PlanType:  domain.PlanFree,
		IsActive:  false,
		CreatedAt: time.Now().UTC(),
	}
	svc.On("Cancel", mock.Anything, sub.ID).Return(sub, nil)

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/subscriptions/%s/cancel", sub.ID), nil)
	rec := httptest.NewRecorder()

	subscriptionTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SubscriptionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.IsActive)
}

func TestCancelInvalidID(t *testing.T) {
	t.Parallel()

	svc := &mockSubscriptionService{}

	req := httptest.NewRequest(http.MethodPost, "/subscriptions/not-a-uuid/cancel", nil)
	rec := httptest.NewRecorder()

	subscriptionTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetActiveSubscription(t *testing.T) {
	t.Parallel()

	svc := &mockSubscriptionService{}
	userID := uuid.New()
	active := &store.ActiveSubscription{
		Subscription: domain.Subscription{
			ID:        uuid.New(),
			UserID:    userID,
			PlanType:  domain.PlanPremium,
			IsActive:  true,
			CreatedAt: time.Now().UTC(),
		},
		OwnerName:  "Ada",
		OwnerEmail: "ada@example.com",
	}
	svc.On("GetActiveSubscription", mock.Anything, userID).Return(active, nil)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/users/%s/subscription", userID), nil)
	rec := httptest.NewRecorder()

	subscriptionTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ActiveSubscriptionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Ada", resp.OwnerName)
	assert.Equal(t, "Premium", resp.PlanType)
}

func TestGetActiveSubscriptionNotFound(t *testing.T) {
	t.Parallel()

	svc := &mockSubscriptionService{}
	userID := uuid.New()
	svc.On("GetActiveSubscription", mock.Anything, userID).
		Return(nil, store.ErrSubscriptionNotFound)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/users/%s/subscription", userID), nil)
	rec := httptest.NewRecorder()

	subscriptionTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListPlansEndpoint(t *testing.T) {
	t.Parallel()

	svc := &mockSubscriptionService{}
	svc.On("ListPlans", mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	rec := httptest.NewRecorder()

	subscriptionTestRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var plans []service.Plan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plans))
	require.Len(t, plans, 2)
	assert.Equal(t, domain.PlanFree, plans[0].Type)
	assert.Equal(t, 9.99, plans[1].MonthlyPrice)
}
