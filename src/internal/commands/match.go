package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/keen-lpm/src/internal/errors"
	"github.com/maksimkurb/keen-lpm/src/internal/ipv4"
	"github.com/maksimkurb/keen-lpm/src/internal/log"
	"github.com/maksimkurb/keen-lpm/src/internal/lpm"
)

func CreateMatchCommand() *MatchCommand {
	return &MatchCommand{
		fs: flag.NewFlagSet("match", flag.ExitOnError),
	}
}

// MatchCommand compares one address against candidate prefixes pairwise,
// without building a table.
type MatchCommand struct {
	fs    *flag.FlagSet
	ctx   *AppContext
	addr  ipv4.Address
	input []string
}

func (c *MatchCommand) Name() string {
	return c.fs.Name()
}

func (c *MatchCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	if c.fs.NArg() < 2 {
		return fmt.Errorf("usage: match <address> <prefix>...")
	}

	addr, err := ipv4.ParseAddress(c.fs.Arg(0))
	if err != nil {
		return errors.FromParse(c.fs.Arg(0), err)
	}
	c.addr = addr
	c.input = c.fs.Args()[1:]
	return nil
}

func (c *MatchCommand) Run() error {
	out := c.ctx.out()

	fmt.Fprintf(out, "address to match:\n")
	fmt.Fprintf(out, "%s: %s\n\n", c.addr, c.addr.BitString())
	fmt.Fprintf(out, "possible matches:\n")

	failed := 0
	candidates := make([]ipv4.Prefix, 0, len(c.input))
	for _, s := range c.input {
		pfx, err := ipv4.ParsePrefix(s)
		if err != nil {
			log.Errorf("%v", errors.FromParse(s, err))
			failed++
			continue
		}
		candidates = append(candidates, pfx)

		fmt.Fprintf(out, "%s: %s\n", pfx, pfx.BitString())
		fmt.Fprintf(out, "matches ... %v\n", lpm.Matches(pfx, c.addr))
	}

	if length, ok := lpm.LongestPrefixLength(c.addr, candidates); ok {
		fmt.Fprintf(out, "\nlongest match: %d\n", length)
	} else {
		fmt.Fprintf(out, "\nlongest match: none\n")
	}

	return failedInputs(failed, len(c.input))
}
