package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maksimkurb/keen-lpm/src/internal/ipv4"
	"github.com/maksimkurb/keen-lpm/src/internal/resolver"
)

// Lookup returns the most specific route containing an address or the first
// A record of a hostname.
// GET /api/v1/lookup/{address}
func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "address")

	resp := LookupResponse{Query: query}

	addr, err := ipv4.ParseAddress(query)
	if err != nil {
		if !resolver.IsHostname(query) {
			WriteInvalidFormat(w, query, err)
			return
		}
		if h.resolver == nil {
			WriteInvalidRequest(w, "hostname lookups are disabled, set general.dns_upstream")
			return
		}

		addrs, err := h.resolver.LookupA(r.Context(), query)
		if err != nil {
			WriteResolveFailed(w, err.Error())
			return
		}
		for _, a := range addrs {
			resp.Resolved = append(resp.Resolved, a.String())
		}
		addr = addrs[0]
	}
	resp.Address = addr.String()

	route, ok := h.table.Lookup(addr)
	if !ok {
		WriteNoRoute(w, resp.Address)
		return
	}
	resp.Route = route

	resp.Supernets = []string{}
	for pfx := range h.table.Supernets(addr) {
		resp.Supernets = append(resp.Supernets, pfx.String())
	}

	writeJSONData(w, resp)
}
