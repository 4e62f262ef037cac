package controller

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"smartcity/internal/models"
	"smartcity/internal/repository"
	"smartcity/internal/utils"
)

// SensorController serves the sensor registry and neighborhood catalog.
type SensorController struct {
	registry *repository.SensorRepository
	catalog  *repository.NeighborhoodCatalog
	logger   *zap.Logger
}

// NewSensorController creates the controller.
func NewSensorController(registry *repository.SensorRepository, catalog *repository.NeighborhoodCatalog, logger *zap.Logger) *SensorController {
	return &SensorController{registry: registry, catalog: catalog, logger: logger}
}

// HandleListSensors returns the registry, optionally narrowed by the
// category, type, status, and q (free-text) query parameters.
func (c *SensorController) HandleListSensors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sensors := c.registry.Search(query.Get("q"))
	if category := query.Get("category"); category != "" {
		sensors = keep(sensors, func(s models.Sensor) bool { return s.Category == category })
	}
	if sensorType := query.Get("type"); sensorType != "" {
		sensors = keep(sensors, func(s models.Sensor) bool { return s.Type == sensorType })
	}
	if status := query.Get("status"); status != "" {
		sensors = keep(sensors, func(s models.Sensor) bool { return s.Status == status })
	}
	utils.RespondWithJSON(w, c.logger, http.StatusOK, map[string]any{"sensors": sensors})
}

type addSensorsRequest struct {
	Sensors []models.Sensor `json:"sensors"`
}

// HandleAddSensors appends user-placed sensors to the registry.
// Validation failures reject the whole batch at the first bad record.
func (c *SensorController) HandleAddSensors(w http.ResponseWriter, r *http.Request) {
	var req addSensorsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, c.logger,
			models.NewAPIError(models.ErrorCodeInvalidFormat, "Invalid JSON format", nil, http.StatusBadRequest))
		return
	}
	if len(req.Sensors) == 0 {
		utils.RespondWithError(w, c.logger,
			models.NewAPIError(models.ErrorCodeMissingParameter, "sensors required", nil, http.StatusBadRequest))
		return
	}

	added := make([]models.Sensor, 0, len(req.Sensors))
	for _, sensor := range req.Sensors {
		stored, err := c.registry.Add(sensor)
		if err != nil {
			utils.RespondWithError(w, c.logger, toAPIError(err))
			return
		}
		added = append(added, stored)
	}
	c.logger.Info("sensors added", zap.Int("count", len(added)))
	utils.RespondWithJSON(w, c.logger, http.StatusOK, map[string]any{"sensors": added})
}

// HandleListNeighborhoods returns the neighborhood catalog in key order.
func (c *SensorController) HandleListNeighborhoods(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, c.logger, http.StatusOK, map[string]any{"neighborhoods": c.catalog.All()})
}

func keep(sensors []models.Sensor, match func(models.Sensor) bool) []models.Sensor {
	out := []models.Sensor{}
	for _, s := range sensors {
		if match(s) {
			out = append(out, s)
		}
	}
	return out
}
