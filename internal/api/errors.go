package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/persona-api/internal/domain"
)

// Client-facing messages.
const (
	MsgNoUsers          = "No users found in the response"
	MsgPersonFailed     = "Failed to fetch random person"
	MsgLoginFailed      = "Failed to fetch random login"
	MsgAddressFailed    = "Failed to fetch random address"
	MsgUnexpected       = "Unexpected error"
	MsgNotFound         = "Not found"
	MsgMethodNotAllowed = "Method not allowed"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Upstream unavailability and upstream contract violations both map to 500:
// the client is not told which of the two happened.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrEmptyResult):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidBody):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err. failure is
// the endpoint's generic server-error message.
func GetSafeErrorMessage(err error, failure string) string {
	if err == nil {
		return MsgUnexpected
	}

	switch {
	case errors.Is(err, domain.ErrEmptyResult):
		return MsgNoUsers
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidBody):
		return "Invalid request"
	default:
		if failure == "" {
			return MsgUnexpected
		}
		return failure
	}
}
