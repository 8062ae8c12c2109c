package v1

import (
	"errors"
	"net/http"

	"github.com/finance-assistant/backend/internal/assistant"
	"github.com/finance-assistant/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, assistant.ErrRequestInFlight) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// Transaction errors
var (
	errTransactionSignInvalid = errors.New("the sign filter must be \"income\" or \"expense\"")
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Chat errors
var (
	errChatNotConfigured = errors.New("the assistant session is not configured")
)
