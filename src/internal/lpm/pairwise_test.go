package lpm

import (
	"testing"

	"github.com/maksimkurb/keen-lpm/src/internal/ipv4"
)

func TestMatches(t *testing.T) {
	addr := mpa("68.211.6.120")

	if !Matches(mpp("68.211.0.0/17"), addr) {
		t.Error("Expected 68.211.0.0/17 to match")
	}
	if Matches(mpp("68.211.160.0/19"), addr) {
		t.Error("Expected 68.211.160.0/19 not to match")
	}
}

func TestLongestPrefixLength(t *testing.T) {
	candidates := []ipv4.Prefix{
		mpp("68.208.0.0/12"),
		mpp("68.211.0.0/17"),
		mpp("68.211.128.0/19"),
		mpp("68.211.160.0/19"),
		mpp("68.211.192.0/18"),
	}

	tests := []struct {
		name       string
		addr       string
		candidates []ipv4.Prefix
		length     int
		ok         bool
	}{
		{"Example script", "68.211.6.120", candidates, 17, true},
		{"Single /17", "68.211.6.120", candidates[1:2], 17, true},
		{"Single non-matching /19", "68.211.6.120", candidates[3:4], 0, false},
		{"No candidates", "68.211.6.120", nil, 0, false},
		{"Only default", "1.2.3.4", []ipv4.Prefix{mpp("0.0.0.0/0")}, 0, true},
		{"Upper /18", "68.211.200.1", candidates, 18, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			length, ok := LongestPrefixLength(mpa(tt.addr), tt.candidates)
			if length != tt.length || ok != tt.ok {
				t.Errorf("Expected (%d, %v), got (%d, %v)", tt.length, tt.ok, length, ok)
			}
		})
	}
}
