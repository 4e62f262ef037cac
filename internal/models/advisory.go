package models

import "time"

// AdvisoryRequest is the transient input to the prompt composer: a
// neighborhood, the sensors matched within the proximity radius, and the
// full category taxonomy. It is built per request and never persisted.
type AdvisoryRequest struct {
	Neighborhood Neighborhood
	Matched      []Sensor
	Taxonomy     []Category
}

// AdvisoryResult is one entry of the review history. Review holds either the
// generated analysis or the user-facing failure message that replaced it.
// Results are never mutated after being recorded.
type AdvisoryResult struct {
	ID           int64     `json:"id"`
	Neighborhood string    `json:"neighborhood"`
	Review       string    `json:"review"`
	Failed       bool      `json:"failed"`
	Timestamp    time.Time `json:"timestamp"`
}
