package models

// Location is a point on the city map. Height is meters above (or below,
// for underground installations) the street reference.
type Location struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Height float64 `json:"height"`
}

// Sensor statuses. Anything else submitted by a client is normalized to
// StatusUnknown so the map can render it distinctly.
const (
	StatusActive      = "active"
	StatusInactive    = "inactive"
	StatusMaintenance = "maintenance"
	StatusUnknown     = "unknown"
)

// Sensor represents a monitoring point in the city sensor network.
// Records are immutable once added to the registry. Data is an open mapping
// of type-specific telemetry; consumers must tolerate missing or extra fields.
type Sensor struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Type     string         `json:"type"`
	Category string         `json:"category"`
	Location Location       `json:"location"`
	Status   string         `json:"status"`
	Data     map[string]any `json:"data"`
	Color    string         `json:"color"`
}

// Category is one entry of the fixed eight-way sensor taxonomy.
// Examples is the human-readable summary line used in analysis prompts.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Examples string `json:"-"`
}

// Categories is the fixed taxonomy, in presentation order.
var Categories = []Category{
	{ID: "transportation", Name: "Transportation", Color: "#FFD700", Examples: "traffic lights, cameras, parking, buses, subways"},
	{ID: "environmental", Name: "Environmental", Color: "#00FF00", Examples: "air quality, weather, noise monitoring"},
	{ID: "energy", Name: "Energy", Color: "#FF4500", Examples: "smart grid, solar panels, wind turbines"},
	{ID: "water", Name: "Water", Color: "#4169E1", Examples: "quality monitoring, flood sensors"},
	{ID: "waste_management", Name: "Waste Management", Color: "#8B4513", Examples: "smart bins, recycling centers"},
	{ID: "public_safety", Name: "Public Safety", Color: "#FF0000", Examples: "emergency boxes, CCTV cameras"},
	{ID: "infrastructure", Name: "Infrastructure", Color: "#9370DB", Examples: "smart buildings, streetlights"},
	{ID: "public_health", Name: "Public Health", Color: "#32CD32", Examples: "UV monitoring, pollen counts"},
}

// ValidCategory reports whether id is part of the fixed taxonomy.
func ValidCategory(id string) bool {
	for _, c := range Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// CategoryColor returns the display color for a taxonomy category,
// or the empty string for an unknown category.
func CategoryColor(id string) string {
	for _, c := range Categories {
		if c.ID == id {
			return c.Color
		}
	}
	return ""
}

// NormalizeStatus maps any value outside the known status set to StatusUnknown.
func NormalizeStatus(status string) string {
	switch status {
	case StatusActive, StatusInactive, StatusMaintenance:
		return status
	default:
		return StatusUnknown
	}
}
