package repository

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"smartcity/internal/models"
)

// SensorRepository is the in-memory sensor registry. Sensors are appended
// monotonically and never removed; reads return snapshot copies so callers
// are isolated from later appends.
type SensorRepository struct {
	mu      sync.RWMutex
	sensors []models.Sensor
}

// NewSensorRepository creates a registry pre-populated with the seed dataset.
func NewSensorRepository(seed []models.Sensor) *SensorRepository {
	sensors := make([]models.Sensor, len(seed))
	copy(sensors, seed)
	return &SensorRepository{sensors: sensors}
}

// ListAll returns all sensors in insertion order.
func (r *SensorRepository) ListAll() []models.Sensor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Sensor, len(r.sensors))
	copy(out, r.sensors)
	return out
}

// ByCategory returns sensors whose category matches exactly.
// An unknown category yields an empty result, not an error.
func (r *SensorRepository) ByCategory(category string) []models.Sensor {
	return r.filter(func(s models.Sensor) bool { return s.Category == category })
}

// ByType returns sensors whose type matches exactly.
func (r *SensorRepository) ByType(sensorType string) []models.Sensor {
	return r.filter(func(s models.Sensor) bool { return s.Type == sensorType })
}

// ByStatus returns sensors whose status matches exactly.
func (r *SensorRepository) ByStatus(status string) []models.Sensor {
	return r.filter(func(s models.Sensor) bool { return s.Status == status })
}

// ByID returns the sensor with the given id.
func (r *SensorRepository) ByID(id string) (models.Sensor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sensors {
		if s.ID == id {
			return s, true
		}
	}
	return models.Sensor{}, false
}

// Search filters sensors by a case-insensitive substring match against name
// and type. An empty term returns the full registry unchanged.
func (r *SensorRepository) Search(term string) []models.Sensor {
	if term == "" {
		return r.ListAll()
	}
	needle := strings.ToLower(term)
	return r.filter(func(s models.Sensor) bool {
		return strings.Contains(strings.ToLower(s.Name), needle) ||
			strings.Contains(strings.ToLower(s.Type), needle)
	})
}

// Add validates, normalizes, and appends a sensor. It returns the stored
// record: a missing id is replaced with a generated one, the display color is
// derived from the category, and an unrecognized status becomes "unknown".
func (r *SensorRepository) Add(sensor models.Sensor) (models.Sensor, error) {
	if sensor.Location.Lat < -90 || sensor.Location.Lat > 90 {
		return models.Sensor{}, models.NewValidationError(
			fmt.Sprintf("latitude %v is out of range [-90, 90]", sensor.Location.Lat))
	}
	if sensor.Location.Lng < -180 || sensor.Location.Lng > 180 {
		return models.Sensor{}, models.NewValidationError(
			fmt.Sprintf("longitude %v is out of range [-180, 180]", sensor.Location.Lng))
	}
	if !models.ValidCategory(sensor.Category) {
		return models.Sensor{}, models.NewValidationError(
			fmt.Sprintf("category %q is not part of the sensor taxonomy", sensor.Category))
	}

	if sensor.ID == "" {
		sensor.ID = "sensor_" + uuid.NewString()
	}
	sensor.Status = models.NormalizeStatus(sensor.Status)
	sensor.Color = models.CategoryColor(sensor.Category)
	if sensor.Data == nil {
		sensor.Data = map[string]any{}
	}
	sensor.Data["lastUpdate"] = time.Now().UTC().Format(time.RFC3339)

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.sensors {
		if existing.ID == sensor.ID {
			return models.Sensor{}, models.NewAPIError(models.ErrorCodeDuplicateResource,
				fmt.Sprintf("sensor %q already exists", sensor.ID), nil, http.StatusBadRequest)
		}
	}
	r.sensors = append(r.sensors, sensor)
	return sensor, nil
}

func (r *SensorRepository) filter(keep func(models.Sensor) bool) []models.Sensor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := []models.Sensor{}
	for _, s := range r.sensors {
		if keep(s) {
			matched = append(matched, s)
		}
	}
	return matched
}
