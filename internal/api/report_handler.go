package api

import (
	"log/slog"
	"net/http"

	"github.com/davmoren/tunebase/internal/api/shared"
	"github.com/davmoren/tunebase/internal/report"
)

// ReportHandler handles aggregate report HTTP requests
type ReportHandler struct {
	engine *report.Engine
	logger *slog.Logger
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(engine *report.Engine, logger *slog.Logger) *ReportHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ReportHandler")
	}

	return &ReportHandler{
		engine: engine,
		logger: logger.With(slog.String("component", "report_handler")),
	}
}

// SubscriptionReport handles GET /reports/subscriptions requests.
func (h *ReportHandler) SubscriptionReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.engine.SubscriptionReport(r.Context())
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to generate subscription report"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, rep)
}

// UsageReport handles GET /reports/usage requests.
func (h *ReportHandler) UsageReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.engine.UsageReport(r.Context())
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to generate usage report"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, rep)
}

// UserActivityReport handles GET /reports/user-activity requests.
func (h *ReportHandler) UserActivityReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.engine.UserActivityReport(r.Context())
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to generate user activity report"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, rep)
}
