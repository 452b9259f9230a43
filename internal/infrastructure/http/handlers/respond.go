// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	apperrors "github.com/platewise/v1/pkg/errors"
	"go.uber.org/zap"
)

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps an error to the standard error envelope
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	appErr := apperrors.Wrap(err, "An unexpected error occurred")

	requestID := chimiddleware.GetReqID(r.Context())

	if appErr.StatusCode() >= 500 {
		logger.Error("Request failed",
			zap.String("request_id", requestID),
			zap.String("code", string(appErr.Code)),
			zap.Error(err),
		)
	}

	writeJSON(w, logger, appErr.StatusCode(), apperrors.ToErrorResponse(appErr, requestID))
}

// decodeJSON decodes a request body, returning a validation error on bad input
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.NewValidationError("request body must be valid JSON")
	}
	return nil
}
