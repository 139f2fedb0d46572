package api

import (
	"net/http"

	"github.com/maksimkurb/keen-lpm/src/internal/routes"
)

// GetRoutes returns every route in ascending prefix order.
// GET /api/v1/routes
func (h *Handler) GetRoutes(w http.ResponseWriter, r *http.Request) {
	resp := RoutesResponse{
		Routes:  make([]*routes.Route, 0, h.table.Len()),
		Sources: h.stats,
	}
	for _, route := range h.table.All() {
		resp.Routes = append(resp.Routes, route)
	}
	if resp.Sources == nil {
		resp.Sources = []routes.SourceStats{}
	}

	writeJSONData(w, resp)
}
