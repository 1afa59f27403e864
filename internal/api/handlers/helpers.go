package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"logistics-quote-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeDomainError maps the quoting error taxonomy to HTTP statuses.
// Upstream (geocoder/router) service failures surface as 502 so the caller
// can distinguish "your input is wrong" from "try again later".
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAddressNotFound):
		writeError(w, r, http.StatusNotFound, "address not found")
	case errors.Is(err, domain.ErrNoRouteFound):
		writeError(w, r, http.StatusUnprocessableEntity, "no route between the given points")
	case errors.Is(err, domain.ErrGeocodeService):
		writeError(w, r, http.StatusBadGateway, "geocoding service unavailable")
	case errors.Is(err, domain.ErrRouteService):
		writeError(w, r, http.StatusBadGateway, "routing service unavailable")
	default:
		log.Printf("unhandled error: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
