package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"logistics-quote-service/internal/platform/obs"
	"logistics-quote-service/internal/ports"
)

// SQLDistanceCache is a Postgres-backed cache for origin->destination route results.
type SQLDistanceCache struct {
	DB *sql.DB
}

func NewSQLDistanceCache(db *sql.DB) *SQLDistanceCache {
	return &SQLDistanceCache{DB: db}
}

// Fetch the cached route result for one origin/destination pair.
func (s *SQLDistanceCache) Get(ctx context.Context, origin, destination string) (_ ports.RouteResult, _ bool, err error) {
	defer obs.Time(ctx, "distance.cache.Get")(&err)

	if s.DB == nil {
		return ports.RouteResult{}, false, errors.New("distance cache: db is nil")
	}

	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return ports.RouteResult{}, false, errors.New("get distance cache: origin and destination must not be empty")
	}

	q := `
	SELECT distance_km, duration_seconds
    FROM distance_cache
    WHERE origin = $1
        AND destination = $2;
	`

	var km float64
	var seconds int
	err = s.DB.QueryRowContext(ctx, q, origin, destination).Scan(&km, &seconds)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.RouteResult{}, false, nil
	}
	if err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get distance cache: query distance_cache table: %w", err)
	}

	return ports.RouteResult{DistanceKM: km, DurationSeconds: seconds}, true, nil
}

// Store a route result for an origin/destination pair.
func (s *SQLDistanceCache) Put(ctx context.Context, origin, destination string, result ports.RouteResult) error {
	if s.DB == nil {
		return errors.New("distance cache: db is nil")
	}

	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return errors.New("insert distance cache: origin and destination must not be empty")
	}

	q := `
	INSERT INTO distance_cache (origin, destination, distance_km, duration_seconds)
    VALUES ($1, $2, $3, $4)
	ON CONFLICT (origin, destination) DO UPDATE
	SET distance_km = EXCLUDED.distance_km,
		duration_seconds = EXCLUDED.duration_seconds;
	`

	if _, err := s.DB.ExecContext(ctx, q, origin, destination, result.DistanceKM, result.DurationSeconds); err != nil {
		return fmt.Errorf("insert distance cache dest=%q: %w", destination, err)
	}

	return nil
}
