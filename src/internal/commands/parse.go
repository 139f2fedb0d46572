package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/keen-lpm/src/internal/errors"
	"github.com/maksimkurb/keen-lpm/src/internal/ipv4"
	"github.com/maksimkurb/keen-lpm/src/internal/log"
)

func CreateParseCommand() *ParseCommand {
	return &ParseCommand{
		fs: flag.NewFlagSet("parse", flag.ExitOnError),
	}
}

// ParseCommand classifies addresses and CIDR blocks. It needs no configuration.
type ParseCommand struct {
	fs     *flag.FlagSet
	ctx    *AppContext
	inputs []string
}

func (c *ParseCommand) Name() string {
	return c.fs.Name()
}

func (c *ParseCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	c.inputs = c.fs.Args()
	if len(c.inputs) == 0 {
		return fmt.Errorf("usage: parse <address|prefix>...")
	}
	return nil
}

func (c *ParseCommand) Run() error {
	out := c.ctx.out()
	failed := 0

	for _, input := range c.inputs {
		parsed, err := ipv4.Parse(input)
		if err != nil {
			log.Errorf("%v", errors.FromParse(input, err))
			failed++
			continue
		}

		if !parsed.IsPrefix() {
			addr := parsed.Address()
			fmt.Fprintf(out, "%s: address %s\n", input, addr)
			fmt.Fprintf(out, "  bits:  %s\n", addr.BitString())
			continue
		}

		pfx := parsed.Prefix()
		first, last := pfx.Range()
		fmt.Fprintf(out, "%s: prefix %s\n", input, pfx)
		fmt.Fprintf(out, "  bits:  %s\n", pfx.BitString())
		fmt.Fprintf(out, "  mask:  %s\n", pfx.Mask())
		fmt.Fprintf(out, "  range: %s - %s\n", first, last)
	}

	return failedInputs(failed, len(c.inputs))
}
