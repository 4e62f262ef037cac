package repository

import (
	"strings"

	"smartcity/internal/models"
)

// NeighborhoodCatalog is the read-only lookup of named city areas.
// It is loaded once at startup and never mutated.
type NeighborhoodCatalog struct {
	keys    []string
	records map[string]models.Neighborhood
}

// NewNeighborhoodCatalog builds the catalog from the static dataset.
func NewNeighborhoodCatalog() *NeighborhoodCatalog {
	catalog := &NeighborhoodCatalog{records: map[string]models.Neighborhood{}}
	for _, n := range seedNeighborhoods() {
		catalog.keys = append(catalog.keys, n.Key)
		catalog.records[n.Key] = n
	}
	return catalog
}

// Lookup returns the neighborhood for a case-insensitive key match.
func (c *NeighborhoodCatalog) Lookup(key string) (models.Neighborhood, bool) {
	n, ok := c.records[strings.ToLower(strings.TrimSpace(key))]
	return n, ok
}

// Keys returns all registered keys in catalog order.
func (c *NeighborhoodCatalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// All returns every record in catalog order.
func (c *NeighborhoodCatalog) All() []models.Neighborhood {
	out := make([]models.Neighborhood, 0, len(c.keys))
	for _, key := range c.keys {
		out = append(out, c.records[key])
	}
	return out
}

func seedNeighborhoods() []models.Neighborhood {
	return []models.Neighborhood{
		{
			Key:             "times square",
			Name:            "Times Square",
			Coordinates:     models.Coordinates{Lat: 40.7580, Lng: -73.9855},
			Characteristics: "Tourist destination with high pedestrian traffic and entertainment venues",
			KnownFor:        "Tourism, entertainment, high pedestrian traffic",
		},
		{
			Key:             "hells kitchen",
			Name:            "Hell's Kitchen",
			Coordinates:     models.Coordinates{Lat: 40.7639, Lng: -73.9924},
			Characteristics: "Residential area with restaurants, theaters, and mixed-use development",
			KnownFor:        "Restaurants, Broadway theaters, residential diversity",
		},
		{
			Key:             "chelsea",
			Name:            "Chelsea",
			Coordinates:     models.Coordinates{Lat: 40.7465, Lng: -73.9934},
			Characteristics: "Art galleries, gay culture, and the High Line elevated park",
			KnownFor:        "Art galleries, High Line, gay culture, residential",
		},
		{
			Key:             "soho",
			Name:            "SoHo",
			Coordinates:     models.Coordinates{Lat: 40.7235, Lng: -73.9990},
			Characteristics: "Historic district with art galleries, boutiques, and cast-iron architecture",
			KnownFor:        "Art galleries, shopping, historic architecture",
		},
		{
			Key:             "greenwich village",
			Name:            "Greenwich Village",
			Coordinates:     models.Coordinates{Lat: 40.7338, Lng: -73.9967},
			Characteristics: "Bohemian neighborhood with historic charm and cultural institutions",
			KnownFor:        "Bohemian culture, NYU, Washington Square Park",
		},
		{
			Key:             "east village",
			Name:            "East Village",
			Coordinates:     models.Coordinates{Lat: 40.7265, Lng: -73.9818},
			Characteristics: "Alternative culture, music venues, and diverse dining scene",
			KnownFor:        "Punk rock history, Ukrainian food, alternative culture",
		},
		{
			Key:             "lower east side",
			Name:            "Lower East Side",
			Coordinates:     models.Coordinates{Lat: 40.7158, Lng: -73.9870},
			Characteristics: "Historic immigrant neighborhood with trendy bars and restaurants",
			KnownFor:        "Immigrant history, nightlife, trendy restaurants",
		},
		{
			Key:             "financial district",
			Name:            "Financial District",
			Coordinates:     models.Coordinates{Lat: 40.7075, Lng: -74.0107},
			Characteristics: "Financial center with Wall Street and historic landmarks",
			KnownFor:        "Wall Street, financial institutions, historic sites",
		},
		{
			Key:             "battery park city",
			Name:            "Battery Park City",
			Coordinates:     models.Coordinates{Lat: 40.7128, Lng: -74.0160},
			Characteristics: "Planned residential community with waterfront views",
			KnownFor:        "Waterfront living, planned community, residential",
		},
		{
			Key:             "tribeca",
			Name:            "TriBeCa",
			Coordinates:     models.Coordinates{Lat: 40.7163, Lng: -74.0086},
			Characteristics: "Trendy neighborhood with converted warehouses and upscale dining",
			KnownFor:        "Converted lofts, upscale dining, film festival",
		},
		{
			Key:             "chinatown",
			Name:            "Chinatown",
			Coordinates:     models.Coordinates{Lat: 40.7158, Lng: -73.9970},
			Characteristics: "Dense Asian community with authentic restaurants and markets",
			KnownFor:        "Chinese culture, authentic food, markets",
		},
		{
			Key:             "little italy",
			Name:            "Little Italy",
			Coordinates:     models.Coordinates{Lat: 40.7191, Lng: -73.9973},
			Characteristics: "Historic Italian neighborhood with traditional restaurants",
			KnownFor:        "Italian culture, traditional restaurants, festivals",
		},
		{
			Key:             "upper west side",
			Name:            "Upper West Side",
			Coordinates:     models.Coordinates{Lat: 40.7870, Lng: -73.9754},
			Characteristics: "Residential area with cultural institutions and Central Park access",
			KnownFor:        "Lincoln Center, American Museum of Natural History, residential",
		},
		{
			Key:             "upper east side",
			Name:            "Upper East Side",
			Coordinates:     models.Coordinates{Lat: 40.7736, Lng: -73.9595},
			Characteristics: "Affluent residential area with museums and luxury shopping",
			KnownFor:        "Museum Mile, luxury shopping, residential",
		},
		{
			Key:             "harlem",
			Name:            "Harlem",
			Coordinates:     models.Coordinates{Lat: 40.8116, Lng: -73.9465},
			Characteristics: "Historic African American neighborhood with rich cultural heritage",
			KnownFor:        "African American culture, jazz history, cultural institutions",
		},
		{
			Key:             "brooklyn heights",
			Name:            "Brooklyn Heights",
			Coordinates:     models.Coordinates{Lat: 40.6997, Lng: -73.9939},
			Characteristics: "Historic residential neighborhood with Manhattan skyline views",
			KnownFor:        "Historic brownstones, Brooklyn Bridge views, residential",
		},
	}
}
