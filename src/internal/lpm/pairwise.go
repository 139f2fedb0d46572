package lpm

import "github.com/maksimkurb/keen-lpm/src/internal/ipv4"

// Matches reports whether pfx contains addr. It is the pairwise form of a
// table lookup and needs no table.
func Matches(pfx ipv4.Prefix, addr ipv4.Address) bool {
	return pfx.Contains(addr)
}

// LongestPrefixLength returns the greatest length among candidates that
// contain addr. ok is false when no candidate matches; a genuine 0.0.0.0/0
// match returns (0, true).
func LongestPrefixLength(addr ipv4.Address, candidates []ipv4.Prefix) (length int, ok bool) {
	for _, pfx := range candidates {
		if !pfx.Contains(addr) {
			continue
		}
		if !ok || pfx.Len() > length {
			length = pfx.Len()
		}
		ok = true
	}
	return length, ok
}
