package ports

import (
	"context"
	"logistics-quote-service/internal/domain"
)

// Persistent cache mapping normalized address strings to coordinates.
// Callers are expected to normalize keys before lookup.
type GeocodeCache interface {
	// Get returns the cached coordinates and whether the address was present.
	Get(ctx context.Context, address string) (domain.Coordinates, bool, error)
	Put(ctx context.Context, address string, coords domain.Coordinates) error
}

// Persistent cache for origin->destination route results.
type DistanceCache interface {
	// Get returns the cached result and whether the pair was present.
	Get(ctx context.Context, origin, destination string) (RouteResult, bool, error)
	Put(ctx context.Context, origin, destination string, result RouteResult) error
}
