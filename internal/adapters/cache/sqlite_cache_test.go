package cache

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"logistics-quote-service/internal/adapters/repositories"
	"logistics-quote-service/internal/domain"
	"logistics-quote-service/internal/ports"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := repositories.InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	return db
}

func TestSqliteGeocodeCacheRoundTrip(t *testing.T) {
	c := NewSqliteGeocodeCache(testDB(t))
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "plovdiv, bulgaria"); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	want := domain.Coordinates{Lat: 42.1354, Lon: 24.7453}
	if err := c.Put(ctx, "plovdiv, bulgaria", want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, "plovdiv, bulgaria")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSqliteGeocodeCacheUpsert(t *testing.T) {
	c := NewSqliteGeocodeCache(testDB(t))
	ctx := context.Background()

	if err := c.Put(ctx, "addr", domain.Coordinates{Lat: 1, Lon: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Put(ctx, "addr", domain.Coordinates{Lat: 2, Lon: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, "addr")
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if got.Lat != 2 || got.Lon != 2 {
		t.Fatalf("upsert did not replace: %+v", got)
	}
}

func TestSqliteDistanceCacheRoundTrip(t *testing.T) {
	c := NewSqliteDistanceCache(testDB(t))
	ctx := context.Background()

	want := ports.RouteResult{DistanceKM: 95.3, DurationSeconds: 5422}
	if err := c.Put(ctx, "a", "b", want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, "a", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	if _, ok, _ := c.Get(ctx, "b", "a"); ok {
		t.Fatal("reverse pair should miss")
	}
}
