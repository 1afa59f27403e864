package routing

import (
	"context"
	"fmt"

	"logistics-quote-service/internal/domain"
	"logistics-quote-service/internal/ports"
)

type MockLeg struct {
	From, To domain.Coordinates
	KM       float64
	Seconds  int
}

// MockRouter serves fixed point-to-point results and counts calls so tests
// can assert that failed geocodes never reach the routing step.
type MockRouter struct {
	m     map[string]ports.RouteResult
	Calls int
}

func key(from, to domain.Coordinates) string {
	return fmt.Sprintf("%g,%g|%g,%g", from.Lat, from.Lon, to.Lat, to.Lon)
}

func NewMockRouter(legs []MockLeg) *MockRouter {
	m := make(map[string]ports.RouteResult, len(legs))
	for _, l := range legs {
		m[key(l.From, l.To)] = ports.RouteResult{DistanceKM: l.KM, DurationSeconds: l.Seconds}
	}
	return &MockRouter{m: m}
}

func (p *MockRouter) RouteDistance(ctx context.Context, from, to domain.Coordinates) (ports.RouteResult, error) {
	p.Calls++

	r, ok := p.m[key(from, to)]
	if !ok {
		return ports.RouteResult{}, fmt.Errorf("%w: no mock leg %v -> %v", domain.ErrNoRouteFound, from, to)
	}

	return r, nil
}
