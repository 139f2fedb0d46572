package api

import (
	"net/http"

	"github.com/maksimkurb/keen-lpm/src/internal/ipv4"
	"github.com/maksimkurb/keen-lpm/src/internal/lpm"
)

// Match tests one address against a list of prefixes without using the table.
// POST /api/v1/match
func (h *Handler) Match(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteInvalidRequest(w, "Invalid JSON: "+err.Error())
		return
	}

	addr, err := ipv4.ParseAddress(req.Address)
	if err != nil {
		WriteInvalidFormat(w, req.Address, err)
		return
	}

	candidates := make([]ipv4.Prefix, 0, len(req.Prefixes))
	for _, s := range req.Prefixes {
		pfx, err := ipv4.ParsePrefix(s)
		if err != nil {
			WriteInvalidFormat(w, s, err)
			return
		}
		candidates = append(candidates, pfx)
	}

	resp := MatchResponse{
		Address: addr.String(),
		Bits:    addr.BitString(),
		Results: make([]MatchResult, 0, len(candidates)),
	}
	for _, pfx := range candidates {
		resp.Results = append(resp.Results, MatchResult{
			Prefix:  pfx.String(),
			Bits:    pfx.BitString(),
			Matches: lpm.Matches(pfx, addr),
		})
	}

	if length, ok := lpm.LongestPrefixLength(addr, candidates); ok {
		resp.LongestLength = &length
		for _, pfx := range candidates {
			if pfx.Len() == length && pfx.Contains(addr) {
				resp.LongestPrefix = pfx.String()
				break
			}
		}
	}

	writeJSONData(w, resp)
}
