package routing

import (
	"context"
	"math"

	"logistics-quote-service/internal/domain"
	"logistics-quote-service/internal/ports"
)

// HaversineRouter computes great-circle distance between two points. It is
// the last resort of the fallback chain: always available, never blocks on
// the network, but underestimates road distance and carries no duration.
type HaversineRouter struct{}

func NewHaversineRouter() *HaversineRouter { return &HaversineRouter{} }

func (h *HaversineRouter) RouteDistance(ctx context.Context, from, to domain.Coordinates) (ports.RouteResult, error) {
	if err := from.Validate(); err != nil {
		return ports.RouteResult{}, err
	}
	if err := to.Validate(); err != nil {
		return ports.RouteResult{}, err
	}

	return ports.RouteResult{DistanceKM: haversineKM(from, to)}, nil
}

// haversineKM returns the great-circle distance in kilometers rounded to two
// decimals.
func haversineKM(from, to domain.Coordinates) float64 {
	const earthRadiusKM = 6371.0

	rad := func(d float64) float64 { return d * math.Pi / 180.0 }
	dLat := rad(to.Lat - from.Lat)
	dLon := rad(to.Lon - from.Lon)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(from.Lat))*math.Cos(rad(to.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return math.Round(earthRadiusKM*c*100) / 100
}
