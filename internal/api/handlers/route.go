package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"logistics-quote-service/internal/api/dto"
	"logistics-quote-service/internal/domain"
	"logistics-quote-service/internal/ports"
)

// RouteHandler serves route previews for the map view: distance, duration
// and the road geometry between two already-resolved coordinate pairs.
type RouteHandler struct {
	Router ports.GeometryProvider
}

func (h *RouteHandler) Preview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	from, err := queryCoords(r, "o_lat", "o_lon")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	to, err := queryCoords(r, "d_lat", "d_lon")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res, err := h.Router.RouteDistance(r.Context(), from, to)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	geometry, err := h.Router.RouteGeometry(r.Context(), from, to)
	if err != nil {
		// The numbers are still useful without the drawn path.
		log.Printf("route geometry failed: %v", err)
		geometry = nil
	}

	writeJSON(w, r, http.StatusOK, dto.RouteResponse{
		DistanceKM:      res.DistanceKM,
		DurationSeconds: res.DurationSeconds,
		Geometry:        geometry,
	})
}

func queryCoords(r *http.Request, latParam, lonParam string) (domain.Coordinates, error) {
	lat, err := queryFloat(r, latParam)
	if err != nil {
		return domain.Coordinates{}, err
	}
	lon, err := queryFloat(r, lonParam)
	if err != nil {
		return domain.Coordinates{}, err
	}
	c := domain.Coordinates{Lat: lat, Lon: lon}
	if err := c.Validate(); err != nil {
		return domain.Coordinates{}, err
	}
	return c, nil
}

func queryFloat(r *http.Request, param string) (float64, error) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return 0, fmt.Errorf("%w: missing query parameter %q", domain.ErrInvalidInput, param)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parameter %q is not a number", domain.ErrInvalidInput, param)
	}
	return v, nil
}
