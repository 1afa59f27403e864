package ports

import (
	"context"
	"logistics-quote-service/internal/domain"
)

// Contract for resolving a free-text address to geographic coordinates.
type Geocoder interface {
	// Resolve an address to exactly one coordinate pair.
	// Returns domain.ErrAddressNotFound when the service has no match and
	// domain.ErrGeocodeService on transport or service failure.
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}

// A single autocomplete candidate for a partial address query.
type Suggestion struct {
	Label  string
	Coords domain.Coordinates
}

// Optional extension of Geocoder that supports autocomplete lookups.
type SuggestingGeocoder interface {
	Geocoder
	// Return up to a handful of candidate addresses for a partial query.
	Suggest(ctx context.Context, query string) ([]Suggestion, error)
}
