package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/keen-lpm/src/internal/commands"
	"github.com/maksimkurb/keen-lpm/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{Version: version}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", "/opt/etc/keen-lpm/keen-lpm.conf", "Path to configuration file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "IPv4 Longest Prefix Match Toolkit\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command> [arguments]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  parse <input>...        Classify and describe addresses and CIDR blocks\n")
		fmt.Fprintf(os.Stderr, "  match <addr> <cidr>...  Match one address against prefixes and report the longest match\n")
		fmt.Fprintf(os.Stderr, "  lookup <addr|host>...   Find the most specific configured route\n")
		fmt.Fprintf(os.Stderr, "  routes                  Print the merged route table\n")
		fmt.Fprintf(os.Stderr, "  serve                   Run the HTTP lookup API\n")
		fmt.Fprintf(os.Stderr, "  self-check              Validate configuration and route sources\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	// Results go to stdout, logs always to stderr
	log.SetForceStdErr(true)
	if ctx.Verbose {
		log.SetVerbose(true)
	}

	cmds := []commands.Runner{
		commands.CreateParseCommand(),
		commands.CreateMatchCommand(),
		commands.CreateLookupCommand(),
		commands.CreateRoutesCommand(),
		commands.CreateServerCommand(),
		commands.CreateSelfCheckCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
