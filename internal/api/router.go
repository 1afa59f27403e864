package api

import (
	"net/http"
	"time"

	"logistics-quote-service/internal/api/handlers"
	"logistics-quote-service/internal/ports"
	"logistics-quote-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	resolver *services.Resolver,
	offices ports.OfficeRepository,
	geocoder ports.SuggestingGeocoder,
	router ports.GeometryProvider,
) http.Handler {
	mux := http.NewServeMux()

	quoteHandler := &handlers.QuoteHandler{
		Resolver: resolver,
		Offices:  offices,
	}
	officeHandler := &handlers.OfficeHandler{Repo: offices}
	geocodeHandler := &handlers.GeocodeHandler{Geocoder: geocoder}
	routeHandler := &handlers.RouteHandler{Router: router}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/quotes", quoteHandler.Quote)
	mux.HandleFunc("/offices", officeHandler.List)
	mux.HandleFunc("/api/route", routeHandler.Preview)

	// The autocomplete proxy hits a shared upstream, so it gets its own
	// per-client rate limit.
	suggestThrottle := newThrottle(time.Second)
	mux.Handle("/api/geocode", suggestThrottle.middleware(http.HandlerFunc(geocodeHandler.Suggest)))

	return requestIDMiddleware(loggingMiddleware(mux))
}
