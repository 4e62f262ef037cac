package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"smartcity/internal/geo"
	"smartcity/internal/models"
	"smartcity/internal/repository"
	"smartcity/internal/viz"
)

// Generator is the external text-generation capability consumed by the
// advisory pipeline. Implementations return either a completion or a typed
// failure, never a panic.
type Generator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}

// Budgets are the per-use-case generation bounds, in tokens.
type Budgets struct {
	Prompt int // generic operator prompts
	Review int // structured neighborhood analyses
}

// AdvisoryService runs the advisory pipeline: proximity selection, prompt
// composition, generation, and history recording.
type AdvisoryService struct {
	registry *repository.SensorRepository
	catalog  *repository.NeighborhoodCatalog
	history  *repository.ReviewHistory
	gateway  Generator
	sink     viz.Sink
	logger   *zap.Logger

	radiusKm float64
	budgets  Budgets
}

// NewAdvisoryService wires the pipeline. radiusKm is the default proximity
// radius for neighborhood reviews.
func NewAdvisoryService(
	registry *repository.SensorRepository,
	catalog *repository.NeighborhoodCatalog,
	history *repository.ReviewHistory,
	gateway Generator,
	sink viz.Sink,
	logger *zap.Logger,
	radiusKm float64,
	budgets Budgets,
) *AdvisoryService {
	return &AdvisoryService{
		registry: registry,
		catalog:  catalog,
		history:  history,
		gateway:  gateway,
		sink:     sink,
		logger:   logger,
		radiusKm: radiusKm,
		budgets:  budgets,
	}
}

// Prompt forwards a free-form operator prompt to the generation service
// under the short budget. Nothing is recorded in the review history.
func (s *AdvisoryService) Prompt(ctx context.Context, prompt string) (string, error) {
	return s.gateway.Complete(ctx, simulationSystemPrompt, prompt, s.budgets.Prompt)
}

// ReviewNeighborhood runs the full pipeline for a neighborhood key. The
// matched sensor set is pushed to the visualization sink along with a camera
// target before generation starts. Both successful and failed generations
// are recorded in the history; the returned error is non-nil for an unknown
// neighborhood or a generation failure.
func (s *AdvisoryService) ReviewNeighborhood(ctx context.Context, key string, radiusKm float64) (models.AdvisoryResult, []models.Sensor, error) {
	neighborhood, ok := s.catalog.Lookup(key)
	if !ok {
		return models.AdvisoryResult{}, nil, models.NewNotFoundError(
			fmt.Sprintf("Neighborhood %q not found in database. Please try a different area.", key))
	}

	if radiusKm <= 0 {
		radiusKm = s.radiusKm
	}
	matched := geo.Nearby(s.registry.ListAll(),
		neighborhood.Coordinates.Lat, neighborhood.Coordinates.Lng, radiusKm)

	s.logger.Info("reviewing neighborhood",
		zap.String("neighborhood", neighborhood.Name),
		zap.Float64("radius_km", radiusKm),
		zap.Int("matched", len(matched)))

	s.sink.FlyTo(neighborhood.Coordinates.Lat, neighborhood.Coordinates.Lng)
	s.sink.PlaceSensors(matched)

	prompt := ComposeReviewPrompt(neighborhood, matched, models.Categories)
	review, genErr := s.gateway.Complete(ctx, reviewSystemPrompt, prompt, s.budgets.Review)

	result := models.AdvisoryResult{
		ID:           time.Now().UnixMilli(),
		Neighborhood: neighborhood.Name,
		Review:       review,
		Timestamp:    time.Now().UTC(),
	}
	if genErr != nil {
		result.Failed = true
		result.Review = userMessage(genErr)
		s.logger.Warn("review generation failed",
			zap.String("neighborhood", neighborhood.Name), zap.Error(genErr))
	}
	s.history.Record(result)

	return result, matched, genErr
}

// History exposes the recorded advisory results, newest first.
func (s *AdvisoryService) History(n int) []models.AdvisoryResult {
	return s.history.Recent(n)
}

// userMessage extracts the user-facing message from a gateway failure.
func userMessage(err error) string {
	if apiErr, ok := err.(models.APIError); ok {
		return apiErr.Message
	}
	return err.Error()
}
