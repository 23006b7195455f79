package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/davmoren/tunebase/internal/domain"
	"github.com/davmoren/tunebase/internal/service"
	"github.com/davmoren/tunebase/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err),
		errors.Is(err, service.ErrAlreadyCancelled):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidPlanType),
		errors.Is(err, domain.ErrInvalidID),
		isDomainValidationError(err):
		return http.StatusBadRequest

	// Store connectivity errors
	case store.IsUnavailableError(err):
		return http.StatusServiceUnavailable

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// domainValidationErrors are the entity validation sentinels that can reach
// the API through user-supplied input.
var domainValidationErrors = []error{
	domain.ErrEmptyPlaylistName,
	domain.ErrPlaylistNameTooLong,
}

// isDomainValidationError checks if err is one of the entity validation
// sentinels that map to a bad request.
func isDomainValidationError(err error) bool {
	for _, target := range domainValidationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrSongNotFound):
		return "Song not found"

	case errors.Is(err, store.ErrPlaylistNotFound):
		return "Playlist not found"

	case errors.Is(err, store.ErrMembershipNotFound):
		return "Song is not in the playlist"

	case errors.Is(err, store.ErrSubscriptionNotFound):
		return "No subscription found"

	// Conflict errors
	case errors.Is(err, store.ErrActiveSubscriptionExists):
		return "User already has an active subscription"

	case errors.Is(err, store.ErrDuplicateMembership):
		return "Song is already in the playlist"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, service.ErrAlreadyCancelled):
		return "Subscription is already cancelled"

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidPlanType):
		return "Unknown plan type"

	case errors.Is(err, domain.ErrEmptyPlaylistName),
		errors.Is(err, domain.ErrPlaylistNameTooLong):
		return "Invalid playlist name"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	// Store connectivity errors
	case store.IsUnavailableError(err):
		return "Service temporarily unavailable"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'CreatePlaylistRequest.Name' Error:Field validation for 'Name' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
