// Package config handles configuration file parsing and validation for keen-lpm.
//
// The configuration is a TOML file describing where routes come from. Each
// [[source]] is one of:
//
//   - file: a route file (.lst/.txt plain list, .toml or .yaml)
//   - kernel_table: a one-time snapshot of a kernel routing table
//   - route: inline [[source.route]] entries
//
// Sources are merged into a single longest-prefix-match table in the order
// they appear, so a later source overrides an earlier one for an identical
// prefix.
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/etc/keen-lpm/keen-lpm.conf")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err) // lists every problem found
//	}
//
// Validation uses go-playground/validator with field names taken from the
// TOML tags, so messages point at the keys a user actually wrote.
package config
