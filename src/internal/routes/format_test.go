package routes

import (
	"testing"

	"github.com/maksimkurb/keen-lpm/src/internal/ipv4"
)

func TestFormatter_Format(t *testing.T) {
	route := &Route{
		Prefix:    ipv4.MustParsePrefix("68.211.0.0/17"),
		Name:      "upstream",
		Gateway:   ipv4.MustParseAddress("10.0.0.1"),
		Interface: "wg0",
		Metric:    5,
		Source:    "vpn",
	}
	addr := ipv4.MustParseAddress("68.211.6.120")

	tests := []struct {
		format   string
		route    *Route
		expected string
	}{
		{"{{address}} via {{prefix}} ({{route}})", route, "68.211.6.120 via 68.211.0.0/17 (upstream)"},
		{"{{ gateway }} dev {{interface}} metric {{metric}} [{{source}}]", route, "10.0.0.1 dev wg0 metric 5 [vpn]"},
		{"{{bits}}", route, "01000100110100110000011001111000"},
		{"{{address}}:{{unknown}}:{{route}}", nil, "68.211.6.120::"},
		{"no placeholders", route, "no placeholders"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f, err := NewFormatter(tt.format)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := f.Format(addr, tt.route); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFormatter_EmptyGateway(t *testing.T) {
	f, _ := NewFormatter("[{{gateway}}]")
	r := &Route{Prefix: ipv4.MustParsePrefix("10.0.0.0/8"), Name: "corp"}
	if got := f.Format(ipv4.MustParseAddress("10.1.1.1"), r); got != "[]" {
		t.Errorf("Expected empty gateway, got %q", got)
	}
}

func TestNewFormatter_Unterminated(t *testing.T) {
	if _, err := NewFormatter("{{address"); err == nil {
		t.Error("Expected error for unterminated tag")
	}
}
