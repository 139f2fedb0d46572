package api

import "net/http"

// CheckHealth reports the loaded table size.
// GET /api/v1/health
func (h *Handler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, HealthResponse{
		Healthy:  true,
		Routes:   h.table.Len(),
		Sources:  len(h.stats),
		LoadedAt: h.loadedAt,
		Version:  h.version,
	})
}
