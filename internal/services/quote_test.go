package services

import (
	"context"
	"errors"
	"testing"

	"logistics-quote-service/internal/adapters/geocode"
	"logistics-quote-service/internal/adapters/routing"
	"logistics-quote-service/internal/domain"
)

var (
	sofia   = domain.Coordinates{Lat: 42.6977, Lon: 23.3219}
	plovdiv = domain.Coordinates{Lat: 42.1354, Lon: 24.7453}
)

func testResolver(t *testing.T) (*Resolver, *routing.MockRouter) {
	t.Helper()

	geocoder := geocode.NewMockGeocoder(map[string]domain.Coordinates{
		"Sofia":   sofia,
		"Plovdiv": plovdiv,
	})
	router := routing.NewMockRouter([]routing.MockLeg{
		{From: sofia, To: plovdiv, KM: 95.0, Seconds: 5400},
	})

	r, err := NewResolver(geocoder, router, testPricing())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r, router
}

func TestResolveQuote(t *testing.T) {
	r, _ := testResolver(t)

	q, err := r.Resolve(context.Background(), "Sofia", "Plovdiv", domain.SizeM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.Pickup != sofia {
		t.Errorf("pickup = %v, want %v", q.Pickup, sofia)
	}
	if q.Dropoff != plovdiv {
		t.Errorf("dropoff = %v, want %v", q.Dropoff, plovdiv)
	}
	if q.DistanceKM != 95.0 {
		t.Errorf("distance = %g, want 95.0", q.DistanceKM)
	}
	if q.Price != 153.2 {
		t.Errorf("price = %g, want 153.2", q.Price)
	}
}

func TestResolveIdempotent(t *testing.T) {
	r, _ := testResolver(t)

	first, err := r.Resolve(context.Background(), "Sofia", "Plovdiv", domain.SizeL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := r.Resolve(context.Background(), "Sofia", "Plovdiv", domain.SizeL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Fatalf("repeated resolve differs: %+v vs %+v", first, second)
	}
}

func TestResolveUnknownPickupSkipsRouting(t *testing.T) {
	r, router := testResolver(t)

	_, err := r.Resolve(context.Background(), "Nowhere", "Plovdiv", domain.SizeS)
	if !errors.Is(err, domain.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
	if router.Calls != 0 {
		t.Fatalf("routing called %d times after failed pickup geocode", router.Calls)
	}
}

func TestResolveUnknownDropoff(t *testing.T) {
	r, router := testResolver(t)

	_, err := r.Resolve(context.Background(), "Sofia", "Nowhere", domain.SizeS)
	if !errors.Is(err, domain.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
	if router.Calls != 0 {
		t.Fatalf("routing called %d times after failed dropoff geocode", router.Calls)
	}
}

func TestResolveNoRoute(t *testing.T) {
	geocoder := geocode.NewMockGeocoder(map[string]domain.Coordinates{
		"Sofia":   sofia,
		"Plovdiv": plovdiv,
	})
	router := routing.NewMockRouter(nil)

	r, err := NewResolver(geocoder, router, testPricing())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = r.Resolve(context.Background(), "Sofia", "Plovdiv", domain.SizeM)
	if !errors.Is(err, domain.ErrNoRouteFound) {
		t.Fatalf("expected ErrNoRouteFound, got %v", err)
	}
}

func TestResolveRejectsBadInput(t *testing.T) {
	r, _ := testResolver(t)

	if _, err := r.Resolve(context.Background(), "  ", "Plovdiv", domain.SizeM); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("empty pickup: expected ErrInvalidInput, got %v", err)
	}
	if _, err := r.Resolve(context.Background(), "Sofia", "", domain.SizeM); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("empty dropoff: expected ErrInvalidInput, got %v", err)
	}
	if _, err := r.Resolve(context.Background(), "Sofia", "Plovdiv", domain.SizeClass("XXL")); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("bad size: expected ErrInvalidInput, got %v", err)
	}
}
