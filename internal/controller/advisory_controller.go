package controller

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"smartcity/internal/models"
	"smartcity/internal/service"
	"smartcity/internal/utils"
)

// historyPreviewLen bounds the review text returned by the history listing.
// Only the presentation copy is truncated; stored results keep the full text.
const historyPreviewLen = 200

// AdvisoryController serves the prompt and review endpoints.
type AdvisoryController struct {
	service *service.AdvisoryService
	logger  *zap.Logger
}

// NewAdvisoryController creates the controller.
func NewAdvisoryController(service *service.AdvisoryService, logger *zap.Logger) *AdvisoryController {
	return &AdvisoryController{service: service, logger: logger}
}

type promptRequest struct {
	Prompt string `json:"prompt"`
}

type promptResponse struct {
	AIResponse string `json:"aiResponse"`
}

// HandlePrompt forwards a free-form operator prompt to the generation service.
func (c *AdvisoryController) HandlePrompt(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, c.logger,
			models.NewAPIError(models.ErrorCodeInvalidFormat, "Invalid JSON format", nil, http.StatusBadRequest))
		return
	}
	if req.Prompt == "" {
		utils.RespondWithError(w, c.logger,
			models.NewAPIError(models.ErrorCodeMissingParameter, "prompt required", nil, http.StatusBadRequest))
		return
	}

	aiResponse, err := c.service.Prompt(r.Context(), req.Prompt)
	if err != nil {
		utils.RespondWithError(w, c.logger, toAPIError(err))
		return
	}
	utils.RespondWithJSON(w, c.logger, http.StatusOK, promptResponse{AIResponse: aiResponse})
}

type reviewRequest struct {
	Neighborhood string  `json:"neighborhood"`
	RadiusKm     float64 `json:"radiusKm"`
}

type reviewResponse struct {
	Review       string          `json:"review"`
	Neighborhood string          `json:"neighborhood"`
	Sensors      []models.Sensor `json:"sensors"`
}

// HandleReview runs the advisory pipeline for a neighborhood key.
func (c *AdvisoryController) HandleReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, c.logger,
			models.NewAPIError(models.ErrorCodeInvalidFormat, "Invalid JSON format", nil, http.StatusBadRequest))
		return
	}
	if req.Neighborhood == "" {
		utils.RespondWithError(w, c.logger,
			models.NewAPIError(models.ErrorCodeMissingParameter, "neighborhood required", nil, http.StatusBadRequest))
		return
	}

	result, matched, err := c.service.ReviewNeighborhood(r.Context(), req.Neighborhood, req.RadiusKm)
	if err != nil {
		utils.RespondWithError(w, c.logger, toAPIError(err))
		return
	}
	utils.RespondWithJSON(w, c.logger, http.StatusOK, reviewResponse{
		Review:       result.Review,
		Neighborhood: result.Neighborhood,
		Sensors:      matched,
	})
}

type historyEntry struct {
	ID           int64  `json:"id"`
	Neighborhood string `json:"neighborhood"`
	Review       string `json:"review"`
	Failed       bool   `json:"failed"`
	Timestamp    string `json:"timestamp"`
}

// HandleReviews lists the most recent advisory results with preview-length
// review text.
func (c *AdvisoryController) HandleReviews(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.RespondWithError(w, c.logger,
				models.NewAPIError(models.ErrorCodeInvalidFormat, "limit must be a non-negative integer", nil, http.StatusBadRequest))
			return
		}
		limit = parsed
	}

	results := c.service.History(limit)
	entries := make([]historyEntry, 0, len(results))
	for _, result := range results {
		entries = append(entries, historyEntry{
			ID:           result.ID,
			Neighborhood: result.Neighborhood,
			Review:       preview(result.Review, historyPreviewLen),
			Failed:       result.Failed,
			Timestamp:    result.Timestamp.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, c.logger, http.StatusOK, map[string]any{"reviews": entries})
}

func preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// toAPIError normalizes any pipeline error into an APIError for the wire.
func toAPIError(err error) models.APIError {
	if apiErr, ok := err.(models.APIError); ok {
		return apiErr
	}
	return models.NewAPIError(models.ErrorCodeInternalServerError, err.Error(), nil, http.StatusInternalServerError)
}
