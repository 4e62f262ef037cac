// Package geo selects sensors near a point using a flat-earth distance
// approximation. The approximation is only valid at single-city scale; its
// error characteristics are relied on by prompt text that echoes the radius,
// so it must not be swapped for great-circle distance.
package geo

import (
	"math"

	"smartcity/internal/models"
)

// kmPerDegree is the rough length of one degree of latitude or longitude.
const kmPerDegree = 111

// Distance estimates the distance in kilometers between two points as
// sqrt(dlat^2 + dlng^2) * 111.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	latDiff := lat1 - lat2
	lngDiff := lng1 - lng2
	return math.Sqrt(latDiff*latDiff+lngDiff*lngDiff) * kmPerDegree
}

// Nearby filters sensors to those within radiusKm of the target point,
// preserving input order. A radius of zero or less matches nothing.
func Nearby(sensors []models.Sensor, targetLat, targetLng, radiusKm float64) []models.Sensor {
	matched := []models.Sensor{}
	if radiusKm <= 0 {
		return matched
	}
	for _, sensor := range sensors {
		if Distance(sensor.Location.Lat, sensor.Location.Lng, targetLat, targetLng) <= radiusKm {
			matched = append(matched, sensor)
		}
	}
	return matched
}
