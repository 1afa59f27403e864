package routing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"encoding/json"

	"logistics-quote-service/internal/domain"
	"logistics-quote-service/internal/platform/obs"
	"logistics-quote-service/internal/ports"
)

// ORSRouter implements RouteProvider using the OpenRouteService directions
// endpoint. Unlike OSRM it requires an API key.
type ORSRouter struct {
	session *http.Client
	apiKey  string
	baseURL string
	profile string
}

func NewORSRouter(apiKey string) (*ORSRouter, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSRouter{
		session: &http.Client{Timeout: 12 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openrouteservice.org",
		profile: "driving-car",
	}, nil
}

type orsDirectionsResponse struct {
	Features []struct {
		Properties struct {
			Summary struct {
				DistanceMeters  float64 `json:"distance"`
				DurationSeconds float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

func (o *ORSRouter) RouteDistance(ctx context.Context, from, to domain.Coordinates) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "ors.RouteDistance")(&err)

	if err := from.Validate(); err != nil {
		return ports.RouteResult{}, err
	}
	if err := to.Validate(); err != nil {
		return ports.RouteResult{}, err
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s", o.baseURL, o.profile)

	resp, err := doWithRetry(ctx, o.session, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		q := url.Values{}
		q.Set("start", fmt.Sprintf("%f,%f", from.Lon, from.Lat))
		q.Set("end", fmt.Sprintf("%f,%f", to.Lon, to.Lat))
		req.URL.RawQuery = q.Encode()
		req.Header.Set("Authorization", o.apiKey)
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("%w: ORS directions request: %v", domain.ErrRouteService, err)
	}
	defer resp.Body.Close()

	var decoded orsDirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.RouteResult{}, fmt.Errorf("%w: decode ORS response: %v", domain.ErrRouteService, err)
	}

	if len(decoded.Features) == 0 {
		return ports.RouteResult{}, fmt.Errorf("%w: %v -> %v", domain.ErrNoRouteFound, from, to)
	}

	summary := decoded.Features[0].Properties.Summary
	return ports.RouteResult{
		DistanceKM:      math.Round(summary.DistanceMeters/10) / 100,
		DurationSeconds: int(math.Round(summary.DurationSeconds)),
	}, nil
}
