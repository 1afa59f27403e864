package routing

import (
	"context"
	"errors"
	"fmt"
	"log"

	"logistics-quote-service/internal/domain"
	"logistics-quote-service/internal/platform/obs"
	"logistics-quote-service/internal/ports"
)

// Chain tries route providers in priority order, falling through on service
// failures. domain.ErrNoRouteFound is final: a provider that answered "no
// road connects these points" is not a degraded service, so later providers
// are not consulted.
//
// An optional distance cache is checked first; fresh results are written back
// best-effort. An optional straight-line fallback answers when every provider
// failed.
type Chain struct {
	providers []ports.RouteProvider
	fallback  ports.RouteProvider
	cache     ports.DistanceCache
}

func NewChain(cache ports.DistanceCache, fallback ports.RouteProvider, providers ...ports.RouteProvider) (*Chain, error) {
	if len(providers) == 0 && fallback == nil {
		return nil, errors.New("route chain: at least one provider is required")
	}

	return &Chain{providers: providers, fallback: fallback, cache: cache}, nil
}

// coordKey formats a coordinate pair as a stable cache key. Six decimals is
// ~0.1m resolution, well below geocoder precision.
func coordKey(c domain.Coordinates) string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lon)
}

func (c *Chain) RouteDistance(ctx context.Context, from, to domain.Coordinates) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "routechain.RouteDistance")(&err)

	if err := from.Validate(); err != nil {
		return ports.RouteResult{}, err
	}
	if err := to.Validate(); err != nil {
		return ports.RouteResult{}, err
	}

	origin, destination := coordKey(from), coordKey(to)

	if c.cache != nil {
		// The cache is best-effort: a failed read is a miss, not an outage.
		result, ok, err := c.cache.Get(ctx, origin, destination)
		if err != nil {
			log.Printf("distance cache read failed: %v", err)
		} else if ok {
			return result, nil
		}
	}

	var lastErr error
	for _, p := range c.providers {
		result, err := p.RouteDistance(ctx, from, to)
		if err == nil {
			c.store(ctx, origin, destination, result)
			return result, nil
		}

		if errors.Is(err, domain.ErrNoRouteFound) {
			return ports.RouteResult{}, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ports.RouteResult{}, fmt.Errorf("%w: %v", domain.ErrRouteService, ctxErr)
		}

		log.Printf("route provider failed, trying next: %v", err)
		lastErr = err
	}

	if c.fallback != nil {
		result, err := c.fallback.RouteDistance(ctx, from, to)
		if err != nil {
			return ports.RouteResult{}, err
		}

		c.store(ctx, origin, destination, result)
		return result, nil
	}

	return ports.RouteResult{}, lastErr
}

func (c *Chain) store(ctx context.Context, origin, destination string, result ports.RouteResult) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Put(ctx, origin, destination, result); err != nil {
		log.Printf("distance cache write failed: %v", err)
	}
}
