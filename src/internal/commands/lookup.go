package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/maksimkurb/keen-lpm/src/internal/config"
	"github.com/maksimkurb/keen-lpm/src/internal/errors"
	"github.com/maksimkurb/keen-lpm/src/internal/ipv4"
	"github.com/maksimkurb/keen-lpm/src/internal/log"
	"github.com/maksimkurb/keen-lpm/src/internal/resolver"
	"github.com/maksimkurb/keen-lpm/src/internal/routes"
)

func CreateLookupCommand() *LookupCommand {
	return &LookupCommand{
		fs: flag.NewFlagSet("lookup", flag.ExitOnError),
	}
}

// LookupCommand prints the most specific route for each address or hostname.
type LookupCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	format string
	all    bool

	table     *routes.Table
	formatter *routes.Formatter
	resolver  *resolver.Resolver
	inputs    []string
}

func (c *LookupCommand) Name() string {
	return c.fs.Name()
}

func (c *LookupCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	c.fs.StringVar(&c.format, "format", "", "Output template (default: general.output_format)")
	c.fs.BoolVar(&c.all, "all", false, "Also print every less specific prefix containing the address")

	if err := c.fs.Parse(args); err != nil {
		return err
	}
	c.inputs = c.fs.Args()
	if len(c.inputs) == 0 {
		return fmt.Errorf("usage: lookup [-format <template>] [-all] <address|hostname>...")
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	if c.format == "" {
		c.format = cfg.General.GetOutputFormat()
	}
	if c.formatter, err = routes.NewFormatter(c.format); err != nil {
		return fmt.Errorf("invalid output format: %v", err)
	}

	if c.resolver, err = newResolver(cfg); err != nil {
		return err
	}

	if c.table, _, err = buildTable(ctx, cfg); err != nil {
		return err
	}
	return nil
}

func (c *LookupCommand) Run() error {
	failed := 0
	for _, input := range c.inputs {
		addrs, err := c.resolve(input)
		if err != nil {
			log.Errorf("%v", err)
			failed++
			continue
		}

		// an input fails once however many of its addresses are unroutable
		routed := true
		for _, addr := range addrs {
			if !c.lookup(addr) {
				log.Errorf("%s: no route to %s", input, addr)
				routed = false
			}
		}
		if !routed {
			failed++
		}
	}

	return failedInputs(failed, len(c.inputs))
}

// resolve returns the addresses behind input: itself or its A records.
func (c *LookupCommand) resolve(input string) ([]ipv4.Address, error) {
	addr, err := ipv4.ParseAddress(input)
	if err == nil {
		return []ipv4.Address{addr}, nil
	}
	if !resolver.IsHostname(input) {
		return nil, errors.FromParse(input, err)
	}
	if c.resolver == nil {
		return nil, errors.NewResolveError(fmt.Sprintf("cannot resolve %s: general.dns_upstream is not set", input), nil)
	}

	log.Debugf("Resolving %s via %s", input, c.resolver.Upstream())
	return c.resolver.LookupA(context.Background(), input)
}

func (c *LookupCommand) lookup(addr ipv4.Address) bool {
	out := c.ctx.out()

	route, ok := c.table.Lookup(addr)
	if !ok {
		return false
	}

	if c.all {
		for _, wider := range c.table.Supernets(addr) {
			if wider == route {
				break
			}
			fmt.Fprintf(out, "  %s\n", c.formatter.Format(addr, wider))
		}
	}
	fmt.Fprintln(out, c.formatter.Format(addr, route))
	return true
}
