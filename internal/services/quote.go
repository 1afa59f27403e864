package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"logistics-quote-service/internal/domain"
	"logistics-quote-service/internal/platform/obs"
	"logistics-quote-service/internal/ports"
)

// Resolver turns a pair of free-text addresses and a size class into a Quote.
//
// It composes three steps in order: geocode pickup, geocode dropoff, route
// distance, then applies the pricing formula. The first failure short-circuits
// and its error kind propagates unchanged to the caller. The resolver holds no
// mutable state and is safe for concurrent use.
type Resolver struct {
	Geocoder ports.Geocoder
	Router   ports.RouteProvider
	Pricing  PricingConfig
}

func NewResolver(geocoder ports.Geocoder, router ports.RouteProvider, pricing PricingConfig) (*Resolver, error) {
	if geocoder == nil {
		return nil, errors.New("new resolver: geocoder must be non-nil")
	}
	if router == nil {
		return nil, errors.New("new resolver: router must be non-nil")
	}
	if err := pricing.Validate(); err != nil {
		return nil, fmt.Errorf("new resolver: pricing config: %w", err)
	}

	return &Resolver{Geocoder: geocoder, Router: router, Pricing: pricing}, nil
}

type geocodeResult struct {
	coords domain.Coordinates
	err    error
}

// Resolve computes a Quote for the given endpoints and size class.
//
// Both endpoints are geocoded concurrently; neither call has a side effect on
// the other, so this is observationally identical to the sequential order.
// When both geocodes fail the pickup error wins. No routing call is made
// unless both endpoints resolved, and pricing is never attempted after a
// failed step. The resolver does not retry.
func (s *Resolver) Resolve(
	ctx context.Context,
	pickupText string,
	dropoffText string,
	size domain.SizeClass,
) (_ domain.Quote, err error) {
	defer obs.Time(ctx, "quote.Resolve")(&err)

	pickupText = strings.TrimSpace(pickupText)
	if pickupText == "" {
		return domain.Quote{}, fmt.Errorf("%w: pickup address must be non-empty", domain.ErrInvalidInput)
	}

	dropoffText = strings.TrimSpace(dropoffText)
	if dropoffText == "" {
		return domain.Quote{}, fmt.Errorf("%w: dropoff address must be non-empty", domain.ErrInvalidInput)
	}

	if _, ok := s.Pricing.SizeMultiplier[size]; !ok {
		return domain.Quote{}, fmt.Errorf("%w: unknown size class %q", domain.ErrInvalidInput, size)
	}

	pickupCh := make(chan geocodeResult, 1)
	dropoffCh := make(chan geocodeResult, 1)

	go func() {
		c, e := s.Geocoder.Geocode(ctx, pickupText)
		pickupCh <- geocodeResult{coords: c, err: e}
	}()
	go func() {
		c, e := s.Geocoder.Geocode(ctx, dropoffText)
		dropoffCh <- geocodeResult{coords: c, err: e}
	}()

	pickup := <-pickupCh
	dropoff := <-dropoffCh

	if pickup.err != nil {
		return domain.Quote{}, fmt.Errorf("resolve quote: geocode pickup %q: %w", pickupText, pickup.err)
	}
	if dropoff.err != nil {
		return domain.Quote{}, fmt.Errorf("resolve quote: geocode dropoff %q: %w", dropoffText, dropoff.err)
	}

	route, err := s.Router.RouteDistance(ctx, pickup.coords, dropoff.coords)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("resolve quote: route distance: %w", err)
	}

	price, err := PriceFor(s.Pricing, route.DistanceKM, size)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("resolve quote: price: %w", err)
	}

	return domain.Quote{
		Pickup:     pickup.coords,
		Dropoff:    dropoff.coords,
		DistanceKM: route.DistanceKM,
		Size:       size,
		Price:      price,
	}, nil
}
