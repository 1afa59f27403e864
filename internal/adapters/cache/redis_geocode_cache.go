package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"logistics-quote-service/internal/domain"
)

// RedisGeocodeCache is a Redis-backed cache mapping addresses to coordinates.
// Entries expire after TTL so stale geocodes age out without manual purging.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

func geocodeKey(address string) string {
	return "geocode:" + address
}

type geocodePayload struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Fetch cached coordinates for the given address.
func (r *RedisGeocodeCache) Get(ctx context.Context, address string) (domain.Coordinates, bool, error) {
	if r.Client == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: redis client is nil")
	}

	if strings.TrimSpace(address) == "" {
		return domain.Coordinates{}, false, errors.New("get geocode cache: address must not be empty")
	}

	raw, err := r.Client.Get(ctx, geocodeKey(address)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: redis get: %w", err)
	}

	var p geocodePayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: decode entry: %w", err)
	}

	return domain.Coordinates{Lon: p.Lon, Lat: p.Lat}, true, nil
}

// Store an address -> coordinate mapping in the cache.
func (r *RedisGeocodeCache) Put(ctx context.Context, address string, coords domain.Coordinates) error {
	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	if strings.TrimSpace(address) == "" {
		return errors.New("insert geocode cache: address must not be empty")
	}

	raw, err := json.Marshal(geocodePayload{Lon: coords.Lon, Lat: coords.Lat})
	if err != nil {
		return fmt.Errorf("insert geocode cache: encode entry: %w", err)
	}

	if err := r.Client.Set(ctx, geocodeKey(address), raw, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert geocode cache addr=%q: %w", address, err)
	}

	return nil
}
