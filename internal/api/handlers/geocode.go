package handlers

import (
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"logistics-quote-service/internal/api/dto"
	"logistics-quote-service/internal/ports"
)

// GeocodeHandler proxies autocomplete lookups for the address form fields.
type GeocodeHandler struct {
	Geocoder ports.SuggestingGeocoder
}

// Suggest returns candidate addresses for a partial query. Failures degrade
// to an empty list: a broken dropdown should not break the form.
func (h *GeocodeHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if utf8.RuneCountInString(q) < 3 {
		writeJSON(w, r, http.StatusOK, []dto.SuggestionResponse{})
		return
	}

	suggestions, err := h.Geocoder.Suggest(r.Context(), q)
	if err != nil {
		log.Printf("suggest %q failed: %v", q, err)
		writeJSON(w, r, http.StatusOK, []dto.SuggestionResponse{})
		return
	}

	res := make([]dto.SuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		res = append(res, dto.SuggestionResponse{
			Label: s.Label,
			Lat:   s.Coords.Lat,
			Lon:   s.Coords.Lon,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
