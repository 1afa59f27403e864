package geocode

import (
	"context"
	"fmt"

	"logistics-quote-service/internal/domain"
)

// MockGeocoder resolves addresses from a fixed map. Unknown addresses fail
// with domain.ErrAddressNotFound, matching real geocoder semantics.
type MockGeocoder struct {
	m map[string]domain.Coordinates
}

func NewMockGeocoder(known map[string]domain.Coordinates) *MockGeocoder {
	m := make(map[string]domain.Coordinates, len(known))
	for addr, c := range known {
		m[addr] = c
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	c, ok := g.m[address]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("%w: %q", domain.ErrAddressNotFound, address)
	}

	return c, nil
}
