package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/keen-lpm/src/internal/config"
	"github.com/maksimkurb/keen-lpm/src/internal/log"
	"github.com/maksimkurb/keen-lpm/src/internal/routes"
)

const defaultRoutesFormat = "{{prefix}}\t{{route}}\t{{gateway}}\t{{interface}}\t{{source}}"

func CreateRoutesCommand() *RoutesCommand {
	return &RoutesCommand{
		fs: flag.NewFlagSet("routes", flag.ExitOnError),
	}
}

// RoutesCommand dumps the merged table in prefix order.
type RoutesCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	format string
}

func (c *RoutesCommand) Name() string {
	return c.fs.Name()
}

func (c *RoutesCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs.StringVar(&c.format, "format", defaultRoutesFormat, "Output template, {{address}} is the network address")

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

func (c *RoutesCommand) Run() error {
	formatter, err := routes.NewFormatter(c.format)
	if err != nil {
		return fmt.Errorf("invalid output format: %v", err)
	}

	tbl, stats, err := buildTable(c.ctx, c.cfg)
	if err != nil {
		return err
	}

	out := c.ctx.out()
	for pfx, route := range tbl.All() {
		fmt.Fprintln(out, formatter.Format(pfx.Network(), route))
	}

	log.Infof("%d routes from %d sources", tbl.Len(), len(stats))
	return nil
}
