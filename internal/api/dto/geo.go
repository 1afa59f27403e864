package dto

import "encoding/json"

type SuggestionResponse struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

type RouteResponse struct {
	DistanceKM      float64         `json:"distance_km"`
	DurationSeconds int             `json:"duration_seconds"`
	Geometry        json.RawMessage `json:"geometry,omitempty"`
}
