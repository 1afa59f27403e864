package domain

import "errors"

// Failure kinds surfaced by the quoting core. Callers match with errors.Is;
// adapters wrap these with context via fmt.Errorf("...: %w", ...).
var (
	// Caller supplied data the core cannot price (bad size class, negative
	// distance, out-of-range coordinates).
	ErrInvalidInput = errors.New("invalid input")

	// The geocoder answered but found no match for the address.
	ErrAddressNotFound = errors.New("address not found")

	// The geocoding service could not be reached or failed.
	ErrGeocodeService = errors.New("geocoding service error")

	// The routing service answered but no route connects the two points.
	ErrNoRouteFound = errors.New("no route found")

	// The routing service could not be reached or failed.
	ErrRouteService = errors.New("routing service error")
)
