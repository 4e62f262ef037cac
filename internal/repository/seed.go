package repository

import (
	"time"

	"smartcity/internal/models"
)

// SeedSensors returns the static city sensor dataset the registry is loaded
// with at startup. Telemetry values are simulated; lastUpdate is stamped at
// load time.
func SeedSensors() []models.Sensor {
	now := time.Now().UTC().Format(time.RFC3339)
	return []models.Sensor{
		// Traffic
		{
			ID:       "traffic_001",
			Name:     "Traffic Light Controller - 5th & Main",
			Type:     "traffic",
			Category: "transportation",
			Location: models.Location{Lat: 40.7128, Lng: -74.006, Height: 5},
			Status:   models.StatusActive,
			Data: map[string]any{
				"currentFlow":     45, // vehicles per minute
				"averageSpeed":    28, // mph
				"congestionLevel": "moderate",
				"lastUpdate":      now,
			},
			Color: "#FFD700",
		},
		{
			ID:       "traffic_002",
			Name:     "Traffic Camera - Broadway & 42nd",
			Type:     "camera",
			Category: "transportation",
			Location: models.Location{Lat: 40.7589, Lng: -73.9851, Height: 8},
			Status:   models.StatusActive,
			Data: map[string]any{
				"vehicleCount":     120,
				"pedestrianCount":  85,
				"incidentDetected": false,
				"lastUpdate":       now,
			},
			Color: "#FFD700",
		},
		{
			ID:       "traffic_003",
			Name:     "Smart Parking Sensor - Central Park West",
			Type:     "parking",
			Category: "transportation",
			Location: models.Location{Lat: 40.7829, Lng: -73.9654, Height: 1},
			Status:   models.StatusActive,
			Data: map[string]any{
				"availableSpots": 12,
				"totalSpots":     50,
				"occupancyRate":  76,
				"lastUpdate":     now,
			},
			Color: "#FFD700",
		},

		// Environmental
		{
			ID:       "env_001",
			Name:     "Air Quality Monitor - Times Square",
			Type:     "air_quality",
			Category: "environmental",
			Location: models.Location{Lat: 40.7580, Lng: -73.9855, Height: 15},
			Status:   models.StatusActive,
			Data: map[string]any{
				"pm25":            12,  // ug/m3
				"pm10":            25,  // ug/m3
				"co2":             420, // ppm
				"airQualityIndex": "good",
				"lastUpdate":      now,
			},
			Color: "#00FF00",
		},
		{
			ID:       "env_002",
			Name:     "Weather Station - Battery Park",
			Type:     "weather",
			Category: "environmental",
			Location: models.Location{Lat: 40.7033, Lng: -74.0170, Height: 10},
			Status:   models.StatusActive,
			Data: map[string]any{
				"temperature":   72, // F
				"humidity":      65, // %
				"windSpeed":     8,  // mph
				"precipitation": 0,  // mm
				"lastUpdate":    now,
			},
			Color: "#00FF00",
		},
		{
			ID:       "env_003",
			Name:     "Noise Level Monitor - Wall Street",
			Type:     "noise",
			Category: "environmental",
			Location: models.Location{Lat: 40.7064, Lng: -74.0090, Height: 6},
			Status:   models.StatusActive,
			Data: map[string]any{
				"decibelLevel":  78, // dB
				"noiseCategory": "moderate",
				"peakLevel":     85, // dB
				"lastUpdate":    now,
			},
			Color: "#00FF00",
		},

		// Energy
		{
			ID:       "energy_001",
			Name:     "Smart Grid Substation - Midtown",
			Type:     "power",
			Category: "energy",
			Location: models.Location{Lat: 40.7505, Lng: -73.9934, Height: 20},
			Status:   models.StatusActive,
			Data: map[string]any{
				"powerOutput":    15000,  // kW
				"voltage":        138000, // V
				"loadPercentage": 78,
				"efficiency":     94.2, // %
				"lastUpdate":     now,
			},
			Color: "#FF4500",
		},
		{
			ID:       "energy_002",
			Name:     "Solar Panel Array - Brooklyn Bridge",
			Type:     "solar",
			Category: "energy",
			Location: models.Location{Lat: 40.7061, Lng: -73.9969, Height: 25},
			Status:   models.StatusActive,
			Data: map[string]any{
				"powerGenerated": 2500, // kW
				"efficiency":     18.5, // %
				"panelCount":     5000,
				"lastUpdate":     now,
			},
			Color: "#FF4500",
		},
		{
			ID:       "energy_003",
			Name:     "Wind Turbine - Governors Island",
			Type:     "wind",
			Category: "energy",
			Location: models.Location{Lat: 40.6894, Lng: -74.0168, Height: 100},
			Status:   models.StatusActive,
			Data: map[string]any{
				"powerGenerated": 8000, // kW
				"windSpeed":      15,   // mph
				"rotorSpeed":     12,   // rpm
				"lastUpdate":     now,
			},
			Color: "#FF4500",
		},

		// Water
		{
			ID:       "water_001",
			Name:     "Water Quality Monitor - Hudson River",
			Type:     "water_quality",
			Category: "water",
			Location: models.Location{Lat: 40.7142, Lng: -74.0064, Height: 2},
			Status:   models.StatusActive,
			Data: map[string]any{
				"ph":              7.2,
				"turbidity":       5,   // NTU
				"dissolvedOxygen": 8.5, // mg/L
				"temperature":     68,  // F
				"lastUpdate":      now,
			},
			Color: "#4169E1",
		},
		{
			ID:       "water_002",
			Name:     "Flood Sensor - Lower Manhattan",
			Type:     "flood",
			Category: "water",
			Location: models.Location{Lat: 40.7033, Lng: -74.0170, Height: 1},
			Status:   models.StatusActive,
			Data: map[string]any{
				"waterLevel": 2.5, // feet
				"floodRisk":  "low",
				"tideLevel":  3.2, // feet
				"lastUpdate": now,
			},
			Color: "#4169E1",
		},

		// Waste management
		{
			ID:       "waste_001",
			Name:     "Smart Trash Bin - Central Park",
			Type:     "waste",
			Category: "waste_management",
			Location: models.Location{Lat: 40.7829, Lng: -73.9654, Height: 1},
			Status:   models.StatusActive,
			Data: map[string]any{
				"fillLevel":   65, // %
				"temperature": 75, // F
				"lastEmptied": "2024-01-15T10:30:00Z",
				"lastUpdate":  now,
			},
			Color: "#8B4513",
		},
		{
			ID:       "waste_002",
			Name:     "Recycling Center Monitor - Queens",
			Type:     "recycling",
			Category: "waste_management",
			Location: models.Location{Lat: 40.7282, Lng: -73.7949, Height: 5},
			Status:   models.StatusActive,
			Data: map[string]any{
				"dailyVolume":     15000, // lbs
				"recyclingRate":   78,    // %
				"energyRecovered": 2500,  // kWh
				"lastUpdate":      now,
			},
			Color: "#8B4513",
		},

		// Public safety
		{
			ID:       "safety_001",
			Name:     "Emergency Call Box - Times Square",
			Type:     "emergency",
			Category: "public_safety",
			Location: models.Location{Lat: 40.7580, Lng: -73.9855, Height: 2},
			Status:   models.StatusActive,
			Data: map[string]any{
				"lastTested":     "2024-01-10T14:00:00Z",
				"batteryLevel":   95, // %
				"signalStrength": "excellent",
				"lastUpdate":     now,
			},
			Color: "#FF0000",
		},
		{
			ID:       "safety_002",
			Name:     "CCTV Camera - Grand Central",
			Type:     "cctv",
			Category: "public_safety",
			Location: models.Location{Lat: 40.7527, Lng: -73.9772, Height: 12},
			Status:   models.StatusActive,
			Data: map[string]any{
				"recording":      true,
				"storageUsed":    45, // %
				"motionDetected": false,
				"lastUpdate":     now,
			},
			Color: "#FF0000",
		},

		// Public transportation
		{
			ID:       "transit_001",
			Name:     "Subway Platform Monitor - Penn Station",
			Type:     "subway",
			Category: "transportation",
			Location: models.Location{Lat: 40.7505, Lng: -73.9934, Height: -20},
			Status:   models.StatusActive,
			Data: map[string]any{
				"passengerCount":   1250,
				"trainFrequency":   3, // minutes
				"platformCrowding": "moderate",
				"lastUpdate":       now,
			},
			Color: "#FFD700",
		},
		{
			ID:       "transit_002",
			Name:     "Bus GPS Tracker - MTA Route 1",
			Type:     "bus",
			Category: "transportation",
			Location: models.Location{Lat: 40.7128, Lng: -74.006, Height: 2},
			Status:   models.StatusActive,
			Data: map[string]any{
				"speed":            25, // mph
				"passengerCount":   45,
				"nextStop":         "City Hall",
				"estimatedArrival": "5 min",
				"lastUpdate":       now,
			},
			Color: "#FFD700",
		},

		// Smart buildings
		{
			ID:       "building_001",
			Name:     "Smart Building - Empire State",
			Type:     "building",
			Category: "infrastructure",
			Location: models.Location{Lat: 40.7484, Lng: -73.9857, Height: 100},
			Status:   models.StatusActive,
			Data: map[string]any{
				"energyUsage":    8500, // kWh
				"occupancy":      85,   // %
				"temperature":    72,   // F
				"elevatorStatus": "operational",
				"lastUpdate":     now,
			},
			Color: "#9370DB",
		},
		{
			ID:       "building_002",
			Name:     "Smart Streetlight - 5th Avenue",
			Type:     "lighting",
			Category: "infrastructure",
			Location: models.Location{Lat: 40.7589, Lng: -73.9851, Height: 8},
			Status:   models.StatusActive,
			Data: map[string]any{
				"brightness":        80, // %
				"motionDetected":    true,
				"energyConsumption": 0.5, // kWh
				"lastUpdate":        now,
			},
			Color: "#9370DB",
		},

		// Health & wellness
		{
			ID:       "health_001",
			Name:     "Public Health Monitor - Central Park",
			Type:     "health",
			Category: "public_health",
			Location: models.Location{Lat: 40.7829, Lng: -73.9654, Height: 3},
			Status:   models.StatusActive,
			Data: map[string]any{
				"uvIndex":     6,
				"pollenCount": "low",
				"airQuality":  "good",
				"lastUpdate":  now,
			},
			Color: "#32CD32",
		},
	}
}
