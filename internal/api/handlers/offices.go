package handlers

import (
	"log"
	"net/http"

	"logistics-quote-service/internal/api/dto"
	"logistics-quote-service/internal/ports"
)

// OfficeHandler exposes read-only office retrieval endpoints.
type OfficeHandler struct {
	Repo ports.OfficeRepository
}

func (h *OfficeHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	offices, err := h.Repo.ListOffices(r.Context())
	if err != nil {
		log.Printf("list offices failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListOfficesResponse{
		Offices: make([]dto.OfficeResponse, 0, len(offices)),
	}
	for _, o := range offices {
		item := dto.OfficeResponse{
			OfficeID: o.OfficeID,
			Name:     o.Name,
			City:     o.City,
			Address:  o.Address,
			Country:  o.Country,
		}
		if o.Coords != nil {
			item.Coords = &dto.CoordinatesResponse{Lat: o.Coords.Lat, Lon: o.Coords.Lon}
		}
		res.Offices = append(res.Offices, item)
	}

	writeJSON(w, r, http.StatusOK, res)
}
