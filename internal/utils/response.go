package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"smartcity/internal/models"
)

// RespondWithError sends a JSON error response using the APIError model.
// It sets the HTTP status code from the APIError and encodes the entire struct.
func RespondWithError(writer http.ResponseWriter, logger *zap.Logger, apiErr models.APIError) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(apiErr.StatusCode)
	if err := json.NewEncoder(writer).Encode(apiErr); err != nil {
		logger.Error("failed to encode error response", zap.Error(err))
	}
}

// RespondWithJSON sends a JSON success response.
func RespondWithJSON(writer http.ResponseWriter, logger *zap.Logger, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(statusCode)
	if err := json.NewEncoder(writer).Encode(payload); err != nil {
		logger.Error("failed to encode JSON response", zap.Error(err))
	}
}
