// Package lpm implements longest-prefix-match lookup over IPv4 prefixes.
//
// Table is a binary trie keyed by successive prefix bits, most significant
// first. Each node may carry the payload of the prefix that ends exactly at
// that depth. A lookup walks the address bits from the root and remembers the
// deepest payload it passed, which is the most specific route.
//
// # Semantics
//
//   - Different lengths: the longer matching prefix always wins, regardless
//     of insertion order.
//   - Same prefix inserted twice: the last insert wins.
//   - No covering prefix (and no 0.0.0.0/0 entry): Lookup reports ok == false.
//
// # Example Usage
//
//	var tbl lpm.Table[string]
//	tbl.Insert(ipv4.MustParsePrefix("68.211.0.0/17"), "A")
//	tbl.Insert(ipv4.MustParsePrefix("68.211.160.0/19"), "B")
//
//	route, ok := tbl.Lookup(ipv4.MustParseAddress("68.211.170.1")) // "B", true
//
// For a handful of candidates there is no need to build a table:
//
//	length, ok := lpm.LongestPrefixLength(addr, candidates)
//
// # Concurrency
//
// Table has no internal locking. Finish all Insert and Delete calls before
// sharing the table; after that any number of goroutines may call the read
// methods concurrently.
package lpm
