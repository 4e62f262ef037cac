package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"smartcity/internal/models"
	"smartcity/internal/repository"
)

type mockGenerator struct {
	response   string
	err        error
	lastSystem string
	lastUser   string
	lastTokens int
	calls      int
}

func (m *mockGenerator) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	m.calls++
	m.lastSystem = systemPrompt
	m.lastUser = userPrompt
	m.lastTokens = maxTokens
	return m.response, m.err
}

type mockSink struct {
	flewTo []models.Coordinates
	placed [][]models.Sensor
}

func (m *mockSink) FlyTo(lat, lng float64) {
	m.flewTo = append(m.flewTo, models.Coordinates{Lat: lat, Lng: lng})
}

func (m *mockSink) PlaceSensors(sensors []models.Sensor) {
	m.placed = append(m.placed, sensors)
}

func newTestService(gen *mockGenerator, sink *mockSink) (*AdvisoryService, *repository.ReviewHistory) {
	history := repository.NewReviewHistory()
	svc := NewAdvisoryService(
		repository.NewSensorRepository(repository.SeedSensors()),
		repository.NewNeighborhoodCatalog(),
		history,
		gen,
		sink,
		zap.NewNop(),
		2,
		Budgets{Prompt: 100, Review: 300},
	)
	return svc, history
}

func TestAdvisoryService_Prompt(t *testing.T) {
	gen := &mockGenerator{response: "traffic set to heavy"}
	svc, history := newTestService(gen, &mockSink{})

	out, err := svc.Prompt(context.Background(), "make traffic heavy")
	require.NoError(t, err)
	assert.Equal(t, "traffic set to heavy", out)
	assert.Equal(t, 100, gen.lastTokens)
	assert.Contains(t, gen.lastSystem, "smart city simulation assistant")

	// Free-form prompts are not part of the review history.
	assert.Zero(t, history.Len())
}

func TestAdvisoryService_ReviewNeighborhood(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		gen := &mockGenerator{response: "## Coverage gaps\nPlace more air quality sensors."}
		sink := &mockSink{}
		svc, history := newTestService(gen, sink)

		result, matched, err := svc.ReviewNeighborhood(context.Background(), "Times Square", 0)
		require.NoError(t, err)
		assert.Equal(t, "Times Square", result.Neighborhood)
		assert.Equal(t, gen.response, result.Review)
		assert.False(t, result.Failed)
		assert.NotZero(t, result.ID)

		// The seed set has several sensors within 2 km of Times Square.
		assert.NotEmpty(t, matched)

		// Long budget and structured prompt reached the gateway.
		assert.Equal(t, 300, gen.lastTokens)
		assert.Contains(t, gen.lastUser, "NEIGHBORHOOD: Times Square")
		assert.Contains(t, gen.lastSystem, "smart city planning expert")

		// Recorded newest-first.
		recent := history.Recent(1)
		require.Len(t, recent, 1)
		assert.Equal(t, result, recent[0])

		// Sink received the camera target and the matched set.
		require.Len(t, sink.flewTo, 1)
		assert.InDelta(t, 40.7580, sink.flewTo[0].Lat, 1e-9)
		require.Len(t, sink.placed, 1)
		assert.Equal(t, matched, sink.placed[0])
	})

	t.Run("unknown neighborhood", func(t *testing.T) {
		gen := &mockGenerator{response: "unused"}
		svc, history := newTestService(gen, &mockSink{})

		_, _, err := svc.ReviewNeighborhood(context.Background(), "atlantis", 0)
		require.Error(t, err)
		apiErr, ok := err.(models.APIError)
		require.True(t, ok)
		assert.Equal(t, models.ErrorCodeResourceNotFound, apiErr.Code)

		// No generation attempted, nothing recorded.
		assert.Zero(t, gen.calls)
		assert.Zero(t, history.Len())
	})

	t.Run("generation failure is recorded", func(t *testing.T) {
		gen := &mockGenerator{err: models.NewGenerationError(errors.New("connection refused"))}
		svc, history := newTestService(gen, &mockSink{})

		result, _, err := svc.ReviewNeighborhood(context.Background(), "soho", 0)
		require.Error(t, err)
		assert.True(t, result.Failed)
		assert.NotEmpty(t, result.Review)

		recent := history.Recent(1)
		require.Len(t, recent, 1)
		assert.True(t, recent[0].Failed)
		assert.Contains(t, recent[0].Review, "AI service")
	})

	t.Run("case-insensitive key and custom radius", func(t *testing.T) {
		gen := &mockGenerator{response: "ok"}
		svc, _ := newTestService(gen, &mockSink{})

		_, matchedWide, err := svc.ReviewNeighborhood(context.Background(), "SOHO", 50)
		require.NoError(t, err)
		_, matchedNarrow, err := svc.ReviewNeighborhood(context.Background(), "soho", 0.1)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, len(matchedWide), len(matchedNarrow))
		if !strings.Contains(gen.lastUser, "EXISTING SENSORS IN AREA") {
			t.Fatalf("prompt missing sensor section: %q", gen.lastUser)
		}
	})
}
