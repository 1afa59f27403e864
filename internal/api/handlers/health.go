package handlers

import "net/http"

// Health answers liveness probes. It deliberately checks nothing downstream:
// the service can still serve cached quotes when an upstream is degraded.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok", "service": "quotes"})
}
