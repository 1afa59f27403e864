package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"logistics-quote-service/internal/domain"
	"logistics-quote-service/internal/platform/obs"
	"logistics-quote-service/internal/ports"
)

// NominatimClient implements Geocoder against the public OpenStreetMap
// Nominatim search endpoint.
//
// It coordinates:
//   - Address normalization
//   - Persistent geocode caching
//   - External API calls with retry/backoff
//
// The service is keyless but its usage policy requires an identifying
// User-Agent and caller-side rate limiting (see api.Throttle). The client is
// safe for concurrent use.
type NominatimClient struct {
	session   *http.Client
	baseURL   string
	userAgent string
	country   string
	cache     ports.GeocodeCache
}

func NewNominatimClient(userAgent, country string, cache ports.GeocodeCache) (*NominatimClient, error) {
	if strings.TrimSpace(userAgent) == "" {
		return nil, errors.New("nominatim user agent is empty")
	}

	client := &NominatimClient{
		session:   &http.Client{Timeout: 10 * time.Second},
		baseURL:   "https://nominatim.openstreetmap.org",
		userAgent: userAgent,
		country:   strings.ToLower(strings.TrimSpace(country)),
		cache:     cache,
	}

	return client, nil
}

// normalize ensures consistent queries by collapsing whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cacheKey lowercases the normalized address so that cache hits survive
// user-typed case differences.
func cacheKey(s string) string {
	return strings.ToLower(normalize(s))
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves a free-text address to a single coordinate pair.
//
// When the service returns multiple candidates only the first (its own
// highest-relevance ranking) is used; the request asks for limit=1 so ties
// never reach the client.
func (n *NominatimClient) Geocode(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	norm := normalize(address)
	if norm == "" {
		return domain.Coordinates{}, fmt.Errorf("%w: address must be non-empty", domain.ErrInvalidInput)
	}

	key := cacheKey(norm)
	if n.cache != nil {
		// The cache is best-effort: a failed read is a miss, not an outage.
		coords, ok, err := n.cache.Get(ctx, key)
		if err != nil {
			log.Printf("geocode cache read failed: %v", err)
		} else if ok {
			return coords, nil
		}
	}

	places, err := n.search(ctx, norm, 1)
	if err != nil {
		return domain.Coordinates{}, err
	}

	if len(places) == 0 {
		return domain.Coordinates{}, fmt.Errorf("%w: %q", domain.ErrAddressNotFound, address)
	}

	coords, err := placeCoords(places[0])
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: %v", domain.ErrGeocodeService, err)
	}

	if n.cache != nil {
		if err := n.cache.Put(ctx, key, coords); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return coords, nil
}

// Suggest returns up to six candidate addresses for a partial query,
// for live autocomplete dropdowns. Suggestions are not cached: partial
// queries rarely repeat and would crowd out resolved addresses.
func (n *NominatimClient) Suggest(ctx context.Context, query string) (_ []ports.Suggestion, err error) {
	defer obs.Time(ctx, "nominatim.Suggest")(&err)

	norm := normalize(query)
	if norm == "" {
		return []ports.Suggestion{}, nil
	}

	places, err := n.search(ctx, norm, 6)
	if err != nil {
		return nil, err
	}

	out := make([]ports.Suggestion, 0, len(places))
	for _, p := range places {
		coords, err := placeCoords(p)
		if err != nil {
			continue
		}
		out = append(out, ports.Suggestion{Label: p.DisplayName, Coords: coords})
	}

	return out, nil
}

func (n *NominatimClient) search(ctx context.Context, text string, limit int) ([]nominatimPlace, error) {
	endpoint := n.baseURL + "/search"

	resp, err := n.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := n.newRequest(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		q := url.Values{}
		q.Set("q", text)
		q.Set("format", "jsonv2")
		q.Set("limit", strconv.Itoa(limit))
		if n.country != "" {
			q.Set("countrycodes", n.country)
		}
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: search %q: %v", domain.ErrGeocodeService, text, err)
	}
	defer resp.Body.Close()

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("%w: decode search response: %v", domain.ErrGeocodeService, err)
	}

	return places, nil
}

// Nominatim encodes lat/lon as JSON strings.
func placeCoords(p nominatimPlace) (domain.Coordinates, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse lat %q: %w", p.Lat, err)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse lon %q: %w", p.Lon, err)
	}

	coords := domain.Coordinates{Lat: lat, Lon: lon}
	if err := coords.Validate(); err != nil {
		return domain.Coordinates{}, err
	}

	return coords, nil
}
