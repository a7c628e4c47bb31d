package shared

import (
	"errors"
	"log/slog"
	"net/http"

	"onboardhub/internal/domain/onboarding"
	"onboardhub/internal/transport/http/api"
)

// FailDomain maps onboarding errors onto the response envelope.
func FailDomain(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, onboarding.ErrDuplicateName):
		api.Fail(w, http.StatusConflict, "duplicate_name", err.Error(), requestID)
	case errors.Is(err, onboarding.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", err.Error(), requestID)
	case errors.Is(err, onboarding.ErrInvalidState):
		api.Fail(w, http.StatusConflict, "invalid_state", err.Error(), requestID)
	case errors.Is(err, onboarding.ErrInvalidInput):
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), requestID)
	default:
		slog.Error("request failed", "requestId", requestID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "internal error", requestID)
	}
}
