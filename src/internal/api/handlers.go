package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/maksimkurb/keen-lpm/src/internal/ipv4"
	"github.com/maksimkurb/keen-lpm/src/internal/routes"
)

// HostResolver resolves hostnames given to the lookup endpoint.
type HostResolver interface {
	LookupA(ctx context.Context, host string) ([]ipv4.Address, error)
}

// Handler serves lookups against one immutable table.
type Handler struct {
	table    *routes.Table
	stats    []routes.SourceStats
	resolver HostResolver
	loadedAt time.Time
	version  string
}

// NewHandler creates a handler for tbl. resolver may be nil, in which case
// hostnames are rejected.
func NewHandler(tbl *routes.Table, stats []routes.SourceStats, resolver HostResolver, version string) *Handler {
	return &Handler{
		table:    tbl,
		stats:    stats,
		resolver: resolver,
		loadedAt: time.Now(),
		version:  version,
	}
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(DataResponse{Data: data})
}

// writeJSONData writes a successful JSON response with data.
func writeJSONData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
