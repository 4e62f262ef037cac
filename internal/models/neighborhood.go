package models

// Coordinates is a flat lat/lng pair used by the neighborhood catalog.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Neighborhood is a static descriptive record for a named city area.
// Records are loaded once at startup and never mutated.
type Neighborhood struct {
	Key             string      `json:"key"`
	Name            string      `json:"name"`
	Coordinates     Coordinates `json:"coordinates"`
	Characteristics string      `json:"characteristics"`
	KnownFor        string      `json:"knownFor"`
}
