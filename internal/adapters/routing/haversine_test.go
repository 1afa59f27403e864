package routing

import (
	"context"
	"errors"
	"testing"

	"logistics-quote-service/internal/domain"
)

func TestHaversineKnownDistances(t *testing.T) {
	h := NewHaversineRouter()

	// One degree of longitude at the equator is ~111.19 km.
	r, err := h.RouteDistance(context.Background(),
		domain.Coordinates{Lat: 0, Lon: 0},
		domain.Coordinates{Lat: 0, Lon: 1},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.DistanceKM < 111.0 || r.DistanceKM > 111.5 {
		t.Fatalf("equator degree = %g km, want ~111.19", r.DistanceKM)
	}

	// Same point is zero.
	p := domain.Coordinates{Lat: 42.6977, Lon: 23.3219}
	r, err = h.RouteDistance(context.Background(), p, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.DistanceKM != 0 {
		t.Fatalf("same point = %g km, want 0", r.DistanceKM)
	}
}

func TestHaversineRejectsBadCoordinates(t *testing.T) {
	h := NewHaversineRouter()

	_, err := h.RouteDistance(context.Background(),
		domain.Coordinates{Lat: 91, Lon: 0},
		domain.Coordinates{Lat: 0, Lon: 0},
	)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
