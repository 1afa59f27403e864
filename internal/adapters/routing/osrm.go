package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"logistics-quote-service/internal/domain"
	"logistics-quote-service/internal/platform/obs"
	"logistics-quote-service/internal/ports"
)

// OSRMRouter implements RouteProvider and GeometryProvider against an OSRM
// HTTP instance (the keyless public demo server by default).
//
// The client is safe for concurrent use.
type OSRMRouter struct {
	session *http.Client
	baseURL string
	profile string
}

func NewOSRMRouter(baseURL string) *OSRMRouter {
	if baseURL == "" {
		baseURL = "https://router.project-osrm.org"
	}

	return &OSRMRouter{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		profile: "driving",
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		DistanceMeters  float64         `json:"distance"`
		DurationSeconds float64         `json:"duration"`
		Geometry        json.RawMessage `json:"geometry"`
	} `json:"routes"`
}

func (o *OSRMRouter) RouteDistance(ctx context.Context, from, to domain.Coordinates) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "osrm.RouteDistance")(&err)

	decoded, err := o.route(ctx, from, to, url.Values{
		"overview":     {"false"},
		"alternatives": {"false"},
		"steps":        {"false"},
	})
	if err != nil {
		return ports.RouteResult{}, err
	}

	r := decoded.Routes[0]
	return ports.RouteResult{
		DistanceKM:      math.Round(r.DistanceMeters/10) / 100,
		DurationSeconds: int(math.Round(r.DurationSeconds)),
	}, nil
}

// RouteGeometry returns the full route path as a GeoJSON geometry,
// used by the map widget to draw the polyline.
func (o *OSRMRouter) RouteGeometry(ctx context.Context, from, to domain.Coordinates) (_ json.RawMessage, err error) {
	defer obs.Time(ctx, "osrm.RouteGeometry")(&err)

	decoded, err := o.route(ctx, from, to, url.Values{
		"overview":   {"full"},
		"geometries": {"geojson"},
	})
	if err != nil {
		return nil, err
	}

	return decoded.Routes[0].Geometry, nil
}

func (o *OSRMRouter) route(ctx context.Context, from, to domain.Coordinates, params url.Values) (*osrmResponse, error) {
	if err := from.Validate(); err != nil {
		return nil, err
	}
	if err := to.Validate(); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf(
		"%s/route/v1/%s/%f,%f;%f,%f",
		o.baseURL, o.profile, from.Lon, from.Lat, to.Lon, to.Lat,
	)

	resp, err := doWithRetry(ctx, o.session, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.URL.RawQuery = params.Encode()
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: OSRM route request: %v", domain.ErrRouteService, err)
	}
	defer resp.Body.Close()

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decode OSRM response: %v", domain.ErrRouteService, err)
	}

	// OSRM reports unroutable pairs with code "NoRoute" and HTTP 200.
	if decoded.Code == "NoRoute" || (decoded.Code == "Ok" && len(decoded.Routes) == 0) {
		return nil, fmt.Errorf("%w: %v -> %v", domain.ErrNoRouteFound, from, to)
	}
	if decoded.Code != "Ok" || len(decoded.Routes) == 0 {
		return nil, fmt.Errorf("%w: OSRM code %q", domain.ErrRouteService, decoded.Code)
	}

	return &decoded, nil
}
