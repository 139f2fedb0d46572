// Package ipv4 implements IPv4 addresses and CIDR prefixes for keen-lpm.
//
// Addresses are plain 32-bit values, most significant octet first. Prefixes
// pair a network address with a length in [0,32] and are always kept in
// canonical form: host bits past the prefix length are cleared when the
// prefix is built, so "192.168.1.5/24" and "192.168.1.0/24" are the same value.
//
// # Parsing
//
// Text input is validated strictly. An address must be four dot-separated
// decimal groups in [0,255]; a prefix is an address followed by "/" and a
// length in [0,32]. Any other input yields a *FormatError that carries the
// offending text:
//
//	addr, err := ipv4.ParseAddress("74.125.43.99")
//	if err != nil {
//	    log.Errorf("%v", err)
//	}
//
//	pfx, _ := ipv4.ParsePrefix("68.211.0.0/17")
//	first, last := pfx.Range() // 68.211.0.0, 68.211.127.255
//	pfx.Contains(addr)         // false
//
// Parse classifies input that may be either form:
//
//	p, err := ipv4.Parse("192.168.0.1/24")
//	if err == nil && p.IsPrefix() {
//	    fmt.Println(p.Prefix()) // 192.168.0.0/24
//	}
//
// All types are comparable values and are safe for concurrent use.
package ipv4
