package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"logistics-quote-service/internal/api/dto"
	"logistics-quote-service/internal/domain"
	"logistics-quote-service/internal/ports"
	"logistics-quote-service/internal/services"
)

type QuoteHandler struct {
	Resolver *services.Resolver
	Offices  ports.OfficeRepository
}

// Quote prices a single pickup/dropoff pair. Endpoints are either free-text
// addresses or registered office references; office IDs are expanded to their
// full addresses before quoting so the resolver only ever sees address text.
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.QuoteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	pickup, err := h.endpointAddress(r, req.PickupAddress, req.PickupOfficeID, "pickup")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	dropoff, err := h.endpointAddress(r, req.DropoffAddress, req.DropoffOfficeID, "dropoff")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	size, err := domain.ParseSizeClass(req.Size)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	quote, err := h.Resolver.Resolve(r.Context(), pickup, dropoff, size)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.QuoteResponse{
		Pickup:     dto.CoordinatesResponse{Lat: quote.Pickup.Lat, Lon: quote.Pickup.Lon},
		Dropoff:    dto.CoordinatesResponse{Lat: quote.Dropoff.Lat, Lon: quote.Dropoff.Lon},
		DistanceKM: quote.DistanceKM,
		Size:       string(quote.Size),
		Price:      quote.Price,
	})
}

func (h *QuoteHandler) endpointAddress(r *http.Request, address string, officeID int, field string) (string, error) {
	address = strings.TrimSpace(address)

	switch {
	case officeID != 0 && address != "":
		return "", fmt.Errorf("%w: %s_address and %s_office_id are mutually exclusive", domain.ErrInvalidInput, field, field)
	case officeID != 0:
		if h.Offices == nil {
			return "", fmt.Errorf("%w: office endpoints are not supported", domain.ErrInvalidInput)
		}
		office, err := h.Offices.GetOffice(r.Context(), officeID)
		if err != nil {
			return "", err
		}
		return office.FullAddress(), nil
	case address != "":
		return address, nil
	default:
		return "", fmt.Errorf("%w: %s_address or %s_office_id is required", domain.ErrInvalidInput, field, field)
	}
}
