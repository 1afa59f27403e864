package routing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"logistics-quote-service/internal/domain"
)

func TestOSRMRouteDistance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"Ok","routes":[{"distance":95300.4,"duration":5421.7}]}`))
	}))
	defer srv.Close()

	router := NewOSRMRouter(srv.URL)
	r, err := router.RouteDistance(context.Background(), cFrom, cTo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.DistanceKM != 95.3 {
		t.Fatalf("distance = %g km, want 95.3", r.DistanceKM)
	}
	if r.DurationSeconds != 5422 {
		t.Fatalf("duration = %d s, want 5422", r.DurationSeconds)
	}
}

func TestOSRMNoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	}))
	defer srv.Close()

	router := NewOSRMRouter(srv.URL)
	_, err := router.RouteDistance(context.Background(), cFrom, cTo)
	if !errors.Is(err, domain.ErrNoRouteFound) {
		t.Fatalf("expected ErrNoRouteFound, got %v", err)
	}
}

func TestOSRMServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	router := NewOSRMRouter(srv.URL)
	_, err := router.RouteDistance(context.Background(), cFrom, cTo)
	if !errors.Is(err, domain.ErrRouteService) {
		t.Fatalf("expected ErrRouteService, got %v", err)
	}
}

func TestOSRMRouteGeometry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("geometries") != "geojson" {
			t.Errorf("missing geometries=geojson, query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"Ok","routes":[{"distance":1,"duration":1,"geometry":{"type":"LineString","coordinates":[[23.3,42.7],[24.7,42.1]]}}]}`))
	}))
	defer srv.Close()

	router := NewOSRMRouter(srv.URL)
	geom, err := router.RouteGeometry(context.Background(), cFrom, cTo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(geom) == 0 {
		t.Fatal("expected non-empty geometry")
	}
}
