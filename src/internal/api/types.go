package api

import (
	"time"

	"github.com/maksimkurb/keen-lpm/src/internal/routes"
)

// DataResponse wraps successful responses with a "data" field.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// LookupResponse is the result of a longest-prefix lookup.
type LookupResponse struct {
	Query     string        `json:"query"`
	Address   string        `json:"address"`
	Resolved  []string      `json:"resolved,omitempty"` // A records when the query was a hostname
	Route     *routes.Route `json:"route"`
	Supernets []string      `json:"supernets"` // every containing prefix, least specific first
}

// RoutesResponse lists the whole table in prefix order.
type RoutesResponse struct {
	Routes  []*routes.Route      `json:"routes"`
	Sources []routes.SourceStats `json:"sources"`
}

// ParseResponse describes a parsed address or CIDR block.
type ParseResponse struct {
	Input   string `json:"input"`
	Kind    string `json:"kind"` // "address" or "prefix"
	Value   string `json:"value"`
	Bits    string `json:"bits"`
	Network string `json:"network,omitempty"`
	Length  *int   `json:"length,omitempty"`
	Mask    string `json:"mask,omitempty"`
	First   string `json:"first,omitempty"`
	Last    string `json:"last,omitempty"`
}

// MatchRequest asks which of the candidate prefixes contain an address.
type MatchRequest struct {
	Address  string   `json:"address"`
	Prefixes []string `json:"prefixes"`
}

// MatchResult is the pairwise outcome for one prefix.
type MatchResult struct {
	Prefix  string `json:"prefix"`
	Bits    string `json:"bits"`
	Matches bool   `json:"matches"`
}

// MatchResponse is the result of a pairwise match.
type MatchResponse struct {
	Address       string        `json:"address"`
	Bits          string        `json:"bits"`
	Results       []MatchResult `json:"results"`
	LongestLength *int          `json:"longest_length"` // null when nothing matches
	LongestPrefix string        `json:"longest_prefix,omitempty"`
}

// HealthResponse reports that the table is loaded.
type HealthResponse struct {
	Healthy  bool      `json:"healthy"`
	Routes   int       `json:"routes"`
	Sources  int       `json:"sources"`
	LoadedAt time.Time `json:"loaded_at"`
	Version  string    `json:"version,omitempty"`
}
