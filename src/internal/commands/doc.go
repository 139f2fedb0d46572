// Package commands implements CLI command handlers for keen-lpm.
//
// # Command Structure
//
// All commands follow a consistent pattern:
//   - Init(): Parse arguments, load configuration and build the table if needed
//   - Run(): Execute the command
//   - Name(): Return command name for routing
//
// # Available Commands
//
//   - parse: Classify addresses and CIDR blocks (no configuration needed)
//   - match: Pairwise match of one address against prefixes (no configuration needed)
//   - lookup: Longest-prefix lookup of addresses or hostnames in the configured table
//   - routes: Dump the configured table
//   - serve: Run the HTTP API
//   - self-check: Validate configuration and sources
//
// Commands that take several inputs report each bad input and keep going;
// Run returns an error at the end if any input failed.
//
// # Example Usage
//
//	cmd := commands.CreateLookupCommand()
//	ctx := &commands.AppContext{
//	    ConfigPath: "/opt/etc/keen-lpm/keen-lpm.conf",
//	}
//	if err := cmd.Init([]string{"68.211.6.120"}, ctx); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package commands
