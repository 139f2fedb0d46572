package api

import (
	"net/http"

	"github.com/maksimkurb/keen-lpm/src/internal/ipv4"
)

// Parse classifies an address or CIDR block.
// GET /api/v1/parse?input=...
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("input")
	if input == "" {
		WriteInvalidRequest(w, "query parameter 'input' is required")
		return
	}

	parsed, err := ipv4.Parse(input)
	if err != nil {
		WriteInvalidFormat(w, input, err)
		return
	}

	writeJSONData(w, describe(input, parsed))
}

func describe(input string, parsed ipv4.Parsed) ParseResponse {
	if !parsed.IsPrefix() {
		addr := parsed.Address()
		return ParseResponse{
			Input: input,
			Kind:  "address",
			Value: addr.String(),
			Bits:  addr.BitString(),
		}
	}

	pfx := parsed.Prefix()
	length := pfx.Len()
	first, last := pfx.Range()
	return ParseResponse{
		Input:   input,
		Kind:    "prefix",
		Value:   pfx.String(),
		Bits:    pfx.BitString(),
		Network: pfx.Network().String(),
		Length:  &length,
		Mask:    pfx.Mask().String(),
		First:   first.String(),
		Last:    last.String(),
	}
}
