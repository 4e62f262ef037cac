package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartcity/internal/models"
)

func sensorAt(id string, lat, lng float64) models.Sensor {
	return models.Sensor{ID: id, Location: models.Location{Lat: lat, Lng: lng}}
}

func TestDistance(t *testing.T) {
	t.Run("zero for identical points", func(t *testing.T) {
		assert.Zero(t, Distance(40.7580, -73.9855, 40.7580, -73.9855))
	})

	t.Run("one degree of latitude is 111 km", func(t *testing.T) {
		assert.InDelta(t, 111, Distance(41, -74, 40, -74), 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := Distance(40.7, -74.0, 40.8, -73.9)
		b := Distance(40.8, -73.9, 40.7, -74.0)
		assert.Equal(t, a, b)
	})
}

func TestNearby(t *testing.T) {
	timesSquare := sensorAt("ts_camera", 40.7580, -73.9855)

	t.Run("zero radius matches nothing", func(t *testing.T) {
		assert.Empty(t, Nearby([]models.Sensor{timesSquare}, 40.7580, -73.9855, 0))
	})

	t.Run("negative radius matches nothing", func(t *testing.T) {
		assert.Empty(t, Nearby([]models.Sensor{timesSquare}, 40.7580, -73.9855, -1))
	})

	t.Run("empty sensor set", func(t *testing.T) {
		assert.Empty(t, Nearby(nil, 40.7580, -73.9855, 2))
	})

	t.Run("sensor at the target point matches", func(t *testing.T) {
		matched := Nearby([]models.Sensor{timesSquare}, 40.7580, -73.9855, 2)
		require.Len(t, matched, 1)
		assert.Equal(t, "ts_camera", matched[0].ID)
	})

	t.Run("distant target misses", func(t *testing.T) {
		// Roughly 60 km away under the flat-earth approximation.
		assert.Empty(t, Nearby([]models.Sensor{timesSquare}, 41.0, -74.5, 2))
	})

	t.Run("monotonic in radius", func(t *testing.T) {
		sensors := []models.Sensor{
			sensorAt("near", 40.7590, -73.9860),
			sensorAt("mid", 40.7700, -73.9700),
			sensorAt("far", 40.8300, -73.9000),
		}
		target := models.Coordinates{Lat: 40.7580, Lng: -73.9855}
		for _, radii := range [][2]float64{{0.5, 2}, {2, 5}, {5, 20}} {
			smaller := Nearby(sensors, target.Lat, target.Lng, radii[0])
			larger := Nearby(sensors, target.Lat, target.Lng, radii[1])
			for _, s := range smaller {
				assert.Contains(t, larger, s,
					"sensor matched at radius %v must match at radius %v", radii[0], radii[1])
			}
		}
	})

	t.Run("preserves input order", func(t *testing.T) {
		sensors := []models.Sensor{
			sensorAt("b", 40.7581, -73.9856),
			sensorAt("a", 40.7579, -73.9854),
		}
		matched := Nearby(sensors, 40.7580, -73.9855, 2)
		require.Len(t, matched, 2)
		assert.Equal(t, "b", matched[0].ID)
		assert.Equal(t, "a", matched[1].ID)
	})
}
