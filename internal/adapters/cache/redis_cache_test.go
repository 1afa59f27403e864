package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"logistics-quote-service/internal/domain"
	"logistics-quote-service/internal/ports"
)

func testRedis(t *testing.T) *redis.Client {
	t.Helper()

	srv := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: srv.Addr()})
}

func TestRedisGeocodeCacheRoundTrip(t *testing.T) {
	c := NewRedisGeocodeCache(testRedis(t), time.Hour)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "sofia, bulgaria"); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	want := domain.Coordinates{Lat: 42.6977, Lon: 23.3219}
	if err := c.Put(ctx, "sofia, bulgaria", want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, "sofia, bulgaria")
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

func TestRedisGeocodeCacheRejectsEmptyKey(t *testing.T) {
	c := NewRedisGeocodeCache(testRedis(t), time.Hour)

	if _, _, err := c.Get(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty address")
	}
	if err := c.Put(context.Background(), "", domain.Coordinates{}); err == nil {
		t.Fatal("expected error for empty address")
	}
}

func TestRedisDistanceCacheRoundTrip(t *testing.T) {
	c := NewRedisDistanceCache(testRedis(t), time.Hour)
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "a", "b"); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

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

	// Reverse direction is a distinct key.
	if _, ok, _ := c.Get(ctx, "b", "a"); ok {
		t.Fatal("reverse pair should miss")
	}
}

func TestRedisDistanceCacheExpiry(t *testing.T) {
	srv := miniredis.RunT(t)
	c := NewRedisDistanceCache(redis.NewClient(&redis.Options{Addr: srv.Addr()}), time.Minute)
	ctx := context.Background()

	if err := c.Put(ctx, "a", "b", ports.RouteResult{DistanceKM: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	srv.FastForward(2 * time.Minute)

	if _, ok, err := c.Get(ctx, "a", "b"); err != nil || ok {
		t.Fatalf("expired entry: ok=%v err=%v", ok, err)
	}
}
