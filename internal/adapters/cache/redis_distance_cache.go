package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"logistics-quote-service/internal/ports"
)

// RedisDistanceCache is a Redis-backed cache for origin->destination route
// results with TTL expiry.
type RedisDistanceCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisDistanceCache(client *redis.Client, ttl time.Duration) *RedisDistanceCache {
	return &RedisDistanceCache{Client: client, TTL: ttl}
}

func distanceKey(origin, destination string) string {
	return "distance:" + origin + "|" + destination
}

type distancePayload struct {
	DistanceKM      float64 `json:"distance_km"`
	DurationSeconds int     `json:"duration_seconds"`
}

// Fetch the cached route result for one origin/destination pair.
func (r *RedisDistanceCache) Get(ctx context.Context, origin, destination string) (ports.RouteResult, bool, error) {
	if r.Client == nil {
		return ports.RouteResult{}, false, errors.New("distance cache: redis client is nil")
	}

	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return ports.RouteResult{}, false, errors.New("get distance cache: origin and destination must not be empty")
	}

	raw, err := r.Client.Get(ctx, distanceKey(origin, destination)).Result()
	if errors.Is(err, redis.Nil) {
		return ports.RouteResult{}, false, nil
	}
	if err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get distance cache: redis get: %w", err)
	}

	var p distancePayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get distance cache: decode entry: %w", err)
	}

	return ports.RouteResult{DistanceKM: p.DistanceKM, DurationSeconds: p.DurationSeconds}, true, nil
}

// Store a route result for an origin/destination pair.
func (r *RedisDistanceCache) Put(ctx context.Context, origin, destination string, result ports.RouteResult) error {
	if r.Client == nil {
		return errors.New("distance cache: redis client is nil")
	}

	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return errors.New("insert distance cache: origin and destination must not be empty")
	}

	raw, err := json.Marshal(distancePayload{
		DistanceKM:      result.DistanceKM,
		DurationSeconds: result.DurationSeconds,
	})
	if err != nil {
		return fmt.Errorf("insert distance cache: encode entry: %w", err)
	}

	if err := r.Client.Set(ctx, distanceKey(origin, destination), raw, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert distance cache dest=%q: %w", destination, err)
	}

	return nil
}
