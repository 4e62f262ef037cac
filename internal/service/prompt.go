package service

import (
	"strconv"
	"strings"

	"smartcity/internal/models"
)

// System directives for the two generation use cases.
const (
	simulationSystemPrompt = "You are a smart city simulation assistant. Given operator instructions, suggest updates to the city simulation state (traffic, weather, events)."

	reviewSystemPrompt = "You are a smart city planning expert. Analyze the given neighborhood and existing sensor data to provide specific recommendations for sensor placement and city improvements. Focus on practical, actionable advice that considers the neighborhood's characteristics, existing infrastructure, and potential for smart city enhancements."
)

// ComposeReviewPrompt renders the structured analysis request for a
// neighborhood. The output is deterministic: fixed section order, sensors
// listed in input order, no timestamps. When no sensors matched, the prompt
// says so explicitly rather than omitting the section.
func ComposeReviewPrompt(n models.Neighborhood, matched []models.Sensor, taxonomy []models.Category) string {
	var b strings.Builder

	b.WriteString("You are a smart city planning AI expert. Analyze this neighborhood and provide specific sensor placement recommendations.\n\n")

	b.WriteString("NEIGHBORHOOD: " + n.Name + "\n")
	b.WriteString("CHARACTERISTICS: " + n.Characteristics + "\n")
	b.WriteString("KNOWN FOR: " + n.KnownFor + "\n")
	b.WriteString("COORDINATES: " + formatCoord(n.Coordinates.Lat) + ", " + formatCoord(n.Coordinates.Lng) + "\n\n")

	b.WriteString("EXISTING SENSORS IN AREA (" + strconv.Itoa(len(matched)) + " found):\n")
	if len(matched) == 0 {
		b.WriteString("(no sensors currently deployed in this area)\n")
	}
	for _, sensor := range matched {
		b.WriteString("- " + sensor.Name + " (" + sensor.Type + ", " + sensor.Category + ")\n")
	}
	b.WriteString("\n")

	b.WriteString("SENSOR CATEGORIES AVAILABLE:\n")
	for _, category := range taxonomy {
		b.WriteString("- " + category.Name + ": " + category.Examples + "\n")
	}
	b.WriteString("\n")

	b.WriteString("Please provide:\n")
	b.WriteString("1. Analysis of current sensor coverage gaps\n")
	b.WriteString("2. Specific sensor placement recommendations with reasoning\n")
	b.WriteString("3. Priority order for implementation\n")
	b.WriteString("4. Expected benefits and impact\n")
	b.WriteString("5. Cost considerations and ROI estimates\n\n")

	b.WriteString("Format your response in markdown with clear sections. Be specific about sensor types, quantities, and placement reasoning.")

	return b.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
