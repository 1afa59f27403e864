package ports

import (
	"context"
	"encoding/json"
	"logistics-quote-service/internal/domain"
)

// Travel distance and estimated duration between two coordinates.
type RouteResult struct {
	DistanceKM      float64
	DurationSeconds int
}

// Contract for retrieving road travel distance between two coordinates.
type RouteProvider interface {
	// Return travel distance and estimated duration between two points.
	// Returns domain.ErrNoRouteFound when the network has no connecting route
	// and domain.ErrRouteService on transport or service failure.
	RouteDistance(ctx context.Context, from, to domain.Coordinates) (RouteResult, error)
}

// Optional extension of RouteProvider that can return the route path.
type GeometryProvider interface {
	RouteProvider
	// Return the route path between two points as a GeoJSON geometry.
	RouteGeometry(ctx context.Context, from, to domain.Coordinates) (json.RawMessage, error)
}
