package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/maksimkurb/keen-lpm/src/internal/ipv4"
	"github.com/maksimkurb/keen-lpm/src/internal/log"
	"github.com/maksimkurb/keen-lpm/src/internal/routes"
)

type fakeResolver map[string][]ipv4.Address

func (f fakeResolver) LookupA(_ context.Context, host string) ([]ipv4.Address, error) {
	addrs, ok := f[host]
	if !ok {
		return nil, fmt.Errorf("no such host %s", host)
	}
	return addrs, nil
}

func newTestRouter(t *testing.T, opts RouterOptions) http.Handler {
	t.Helper()
	log.DisableLogs()

	tbl := &routes.Table{}
	for _, r := range []*routes.Route{
		{Prefix: ipv4.MustParsePrefix("68.211.0.0/17"), Name: "A", Source: "test"},
		{Prefix: ipv4.MustParsePrefix("68.211.160.0/19"), Name: "B", Source: "test"},
		{Prefix: ipv4.MustParsePrefix("68.208.0.0/12"), Name: "wide", Gateway: ipv4.MustParseAddress("10.0.0.1"), Source: "test"},
	} {
		tbl.Insert(r.Prefix, r)
	}

	res := fakeResolver{"example.com": {ipv4.MustParseAddress("68.211.170.1"), ipv4.MustParseAddress("68.211.6.120")}}
	h := NewHandler(tbl, []routes.SourceStats{{Name: "test", Type: "inline", Routes: 3}}, res, "test")
	return NewRouter(h, opts)
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var resp struct {
		Data T `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp.Data
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) APIError {
	t.Helper()
	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error: %v", err)
	}
	return resp.Error
}

func TestLookup(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})

	rec := do(t, router, http.MethodGet, "/api/v1/lookup/68.211.6.120", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	resp := decodeData[struct {
		Address   string   `json:"address"`
		Supernets []string `json:"supernets"`
		Route     struct {
			Prefix  string `json:"prefix"`
			Name    string `json:"name"`
			Gateway string `json:"gateway"`
		} `json:"route"`
	}](t, rec)

	if resp.Route.Prefix != "68.211.0.0/17" || resp.Route.Name != "A" {
		t.Errorf("Expected route A via 68.211.0.0/17, got %+v", resp.Route)
	}
	if resp.Route.Gateway != "" {
		t.Errorf("Expected gateway to be omitted, got %q", resp.Route.Gateway)
	}
	if strings.Join(resp.Supernets, ",") != "68.208.0.0/12,68.211.0.0/17" {
		t.Errorf("Unexpected supernets: %v", resp.Supernets)
	}
}

func TestLookup_Hostname(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})

	rec := do(t, router, http.MethodGet, "/api/v1/lookup/example.com", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	resp := decodeData[LookupResponse](t, rec)
	if resp.Address != "68.211.170.1" || resp.Route.Name != "B" {
		t.Errorf("Expected first A record to hit B, got %s -> %v", resp.Address, resp.Route)
	}
	if len(resp.Resolved) != 2 {
		t.Errorf("Expected 2 resolved addresses, got %v", resp.Resolved)
	}
}

func TestLookup_Errors(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})

	tests := []struct {
		target string
		status int
		code   ErrorCode
	}{
		{"/api/v1/lookup/8.8.8.8", http.StatusNotFound, ErrCodeNoRoute},
		{"/api/v1/lookup/300.1.1.1", http.StatusBadRequest, ErrCodeInvalidFormat},
		{"/api/v1/lookup/missing.example", http.StatusBadGateway, ErrCodeResolveFailed},
		{"/api/v1/nothing", http.StatusNotFound, ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := do(t, router, http.MethodGet, tt.target, "")
			if rec.Code != tt.status {
				t.Errorf("Expected %d, got %d", tt.status, rec.Code)
			}
			if apiErr := decodeError(t, rec); apiErr.Code != tt.code {
				t.Errorf("Expected code %s, got %s", tt.code, apiErr.Code)
			}
		})
	}
}

func TestLookup_NoResolver(t *testing.T) {
	log.DisableLogs()
	h := NewHandler(&routes.Table{}, nil, nil, "")
	rec := do(t, NewRouter(h, RouterOptions{}), http.MethodGet, "/api/v1/lookup/example.com", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestGetRoutes(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})

	rec := do(t, router, http.MethodGet, "/api/v1/routes", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	resp := decodeData[RoutesResponse](t, rec)

	var got []string
	for _, r := range resp.Routes {
		got = append(got, r.Prefix.String())
	}
	expected := "68.208.0.0/12,68.211.0.0/17,68.211.160.0/19"
	if strings.Join(got, ",") != expected {
		t.Errorf("Expected %s, got %v", expected, got)
	}
	if resp.Routes[0].Gateway.String() != "10.0.0.1" {
		t.Errorf("Expected gateway to round-trip, got %s", resp.Routes[0].Gateway)
	}
	if len(resp.Sources) != 1 || resp.Sources[0].Routes != 3 {
		t.Errorf("Unexpected sources: %+v", resp.Sources)
	}
}

func TestParse(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})

	rec := do(t, router, http.MethodGet, "/api/v1/parse?input=192.168.1.5/24", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	resp := decodeData[ParseResponse](t, rec)
	if resp.Kind != "prefix" || resp.Value != "192.168.1.0/24" {
		t.Errorf("Expected prefix 192.168.1.0/24, got %s %s", resp.Kind, resp.Value)
	}
	if resp.Length == nil || *resp.Length != 24 {
		t.Errorf("Expected length 24, got %v", resp.Length)
	}
	if resp.Mask != "255.255.255.0" || resp.First != "192.168.1.0" || resp.Last != "192.168.1.255" {
		t.Errorf("Unexpected range: %+v", resp)
	}

	rec = do(t, router, http.MethodGet, "/api/v1/parse?input=10.0.0.1", "")
	resp = decodeData[ParseResponse](t, rec)
	if resp.Kind != "address" || resp.Length != nil {
		t.Errorf("Expected bare address, got %+v", resp)
	}

	for _, target := range []string{"/api/v1/parse", "/api/v1/parse?input=1.2.3.4/33"} {
		if rec := do(t, router, http.MethodGet, target, ""); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestMatch(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})

	body := `{"address":"68.211.6.120","prefixes":["68.208.0.0/12","68.211.0.0/17","68.211.128.0/19","68.211.160.0/19","68.211.192.0/18"]}`
	rec := do(t, router, http.MethodPost, "/api/v1/match", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	resp := decodeData[MatchResponse](t, rec)

	if resp.LongestLength == nil || *resp.LongestLength != 17 {
		t.Errorf("Expected longest length 17, got %v", resp.LongestLength)
	}
	if resp.LongestPrefix != "68.211.0.0/17" {
		t.Errorf("Expected 68.211.0.0/17, got %s", resp.LongestPrefix)
	}
	matches := make([]bool, 0, len(resp.Results))
	for _, r := range resp.Results {
		matches = append(matches, r.Matches)
	}
	if fmt.Sprint(matches) != "[true true false false false]" {
		t.Errorf("Unexpected pairwise results: %v", matches)
	}
}

func TestMatch_NoMatch(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})

	rec := do(t, router, http.MethodPost, "/api/v1/match", `{"address":"1.1.1.1","prefixes":["10.0.0.0/8"]}`)
	var raw map[string]map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&raw)
	if v, ok := raw["data"]["longest_length"]; !ok || v != nil {
		t.Errorf("Expected longest_length to be null, got %v", v)
	}
}

func TestMatch_BadRequests(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})

	tests := []struct {
		name string
		body string
		code ErrorCode
	}{
		{"bad json", `{"address":`, ErrCodeInvalidRequest},
		{"unknown field", `{"addr":"1.1.1.1"}`, ErrCodeInvalidRequest},
		{"bad address", `{"address":"1.1.1","prefixes":[]}`, ErrCodeInvalidFormat},
		{"bad prefix", `{"address":"1.1.1.1","prefixes":["1.1.1.1"]}`, ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPost, "/api/v1/match", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rec.Code)
			}
			if apiErr := decodeError(t, rec); apiErr.Code != tt.code {
				t.Errorf("Expected code %s, got %s", tt.code, apiErr.Code)
			}
		})
	}
}

func TestCheckHealth(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})

	rec := do(t, router, http.MethodGet, "/api/v1/health", "")
	resp := decodeData[HealthResponse](t, rec)
	if !resp.Healthy || resp.Routes != 3 || resp.Sources != 1 {
		t.Errorf("Unexpected health: %+v", resp)
	}
}

func TestJSONContentType(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestPrivateSubnetOnly(t *testing.T) {
	router := newTestRouter(t, RouterOptions{PrivateOnly: true})

	tests := []struct {
		name    string
		remote  string
		headers map[string]string
		status  int
	}{
		{"LAN client", "192.168.1.10:5000", nil, http.StatusOK},
		{"Loopback", "127.0.0.1:5000", nil, http.StatusOK},
		{"IPv6 loopback", "[::1]:5000", nil, http.StatusOK},
		{"Public client", "8.8.8.8:5000", nil, http.StatusForbidden},
		{"Just outside 172.16/12", "172.32.0.1:5000", nil, http.StatusForbidden},
		{"Public client forging X-Forwarded-For", "8.8.8.8:1234", map[string]string{"X-Forwarded-For": "10.0.0.1"}, http.StatusForbidden},
		{"Public client forging X-Real-IP", "8.8.8.8:1234", map[string]string{"X-Real-IP": "192.168.0.5"}, http.StatusForbidden},
		{"Local proxy forwarding LAN client", "127.0.0.1:5000", map[string]string{"X-Forwarded-For": "192.168.1.20, 127.0.0.1"}, http.StatusOK},
		{"Local proxy forwarding public client", "127.0.0.1:5000", map[string]string{"X-Forwarded-For": "8.8.8.8"}, http.StatusForbidden},
		{"Local proxy with X-Real-IP", "10.0.0.2:5000", map[string]string{"X-Real-IP": "1.1.1.1"}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.status {
				t.Errorf("Expected %d, got %d", tt.status, rec.Code)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	log.DisableLogs()
	h := Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", rec.Code)
	}
}
