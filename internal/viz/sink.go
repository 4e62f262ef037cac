// Package viz defines the contract to the map visualization layer. The
// rendering itself lives outside this process; the pipeline only issues
// camera and marker commands.
package viz

import (
	"go.uber.org/zap"

	"smartcity/internal/models"
)

// Sink receives placement and camera commands from the advisory pipeline.
// FlyTo is advisory and may be ignored when no view is active. PlaceSensors
// replaces all currently displayed markers with the given list.
type Sink interface {
	FlyTo(lat, lng float64)
	PlaceSensors(sensors []models.Sensor)
}

// LogSink logs visualization commands. It stands in for a connected map
// client in headless runs and tests.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a sink that writes commands to the given logger.
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) FlyTo(lat, lng float64) {
	s.logger.Info("fly to location", zap.Float64("lat", lat), zap.Float64("lng", lng))
}

func (s *LogSink) PlaceSensors(sensors []models.Sensor) {
	s.logger.Info("place sensors", zap.Int("count", len(sensors)))
}
