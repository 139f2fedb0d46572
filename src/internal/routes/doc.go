// Package routes builds the keen-lpm lookup table from configured sources.
//
// # Sources
//
//   - Plain lists (.lst, .txt, anything unrecognized): one "prefix [name]"
//     per line, '#' comments, bare addresses become /32 host routes. Lines
//     that fail to parse are logged and skipped, the rest still load.
//   - TOML files: [[route]] tables with prefix, name, gateway, interface, metric.
//   - YAML files: a "routes:" list with the same keys.
//   - Kernel tables: a one-time rtnetlink snapshot of an IPv4 routing table.
//   - Inline [[source.route]] entries from the configuration file.
//
// Structured entries are validated with the config package rules and a bad
// entry fails the whole source.
//
// # Example Usage
//
//	loader := routes.NewLoader(cfg, routes.NetlinkLister{})
//	tbl, stats, err := loader.Load(ctx)
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if route, ok := tbl.Lookup(addr); ok {
//	    fmt.Println(route)
//	}
//
// The returned table must not be modified once it is shared between goroutines.
package routes
