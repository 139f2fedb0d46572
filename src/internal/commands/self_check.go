package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/keen-lpm/src/internal/config"
	"github.com/maksimkurb/keen-lpm/src/internal/log"
	"github.com/maksimkurb/keen-lpm/src/internal/routes"
)

func CreateSelfCheckCommand() *SelfCheckCommand {
	gc := &SelfCheckCommand{
		fs: flag.NewFlagSet("self-check", flag.ExitOnError),
	}
	return gc
}

type SelfCheckCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config
}

func (g *SelfCheckCommand) Name() string {
	return g.fs.Name()
}

func (g *SelfCheckCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *SelfCheckCommand) Run() error {
	log.Infof("Running self-check...")
	log.Infof("---------------- Configuration START -----------------")

	if cfg, err := g.cfg.SerializeConfig(); err != nil {
		log.Errorf("Failed to serialize config: %v", err)
		return err
	} else if _, err := g.ctx.out().Write(cfg.Bytes()); err != nil {
		log.Errorf("Failed to output config: %v", err)
		return err
	}

	log.Infof("----------------- Configuration END ------------------")

	hasFailures := false

	if _, err := routes.NewFormatter(g.cfg.General.GetOutputFormat()); err != nil {
		log.Errorf("[general] output_format is invalid: %v", err)
		hasFailures = true
	}

	if _, err := newResolver(g.cfg); err != nil {
		log.Errorf("[general] dns_upstream is invalid: %v", err)
		hasFailures = true
	}

	tbl, stats, err := buildTable(g.ctx, g.cfg)
	if err != nil {
		log.Errorf("Failed to build route table: %v", err)
		log.Errorf("Self-check completed with failures")
		return fmt.Errorf("self-check failed")
	}

	for _, s := range stats {
		if !g.checkSource(s) {
			hasFailures = true
		}
	}
	g.checkGateways(tbl)

	log.Infof("Table contains %d routes", tbl.Len())

	if hasFailures {
		log.Errorf("Self-check completed with failures")
		return fmt.Errorf("self-check failed")
	}

	log.Infof("Self-check completed successfully")
	return nil
}

// checkSource reports one source. Skipped lines count as a failure.
func (g *SelfCheckCommand) checkSource(s routes.SourceStats) bool {
	switch {
	case s.Skipped > 0:
		log.Errorf("[%s] %s source: %d routes loaded, %d lines skipped", s.Name, s.Type, s.Routes, s.Skipped)
		return false
	case s.Routes == 0:
		log.Warnf("[%s] %s source is empty", s.Name, s.Type)
	default:
		log.Infof("[%s] %s source: %d routes loaded", s.Name, s.Type, s.Routes)
	}
	return true
}

// checkGateways warns about next hops that no route in the table covers.
func (g *SelfCheckCommand) checkGateways(tbl *routes.Table) {
	for pfx, route := range tbl.All() {
		if !route.HasGateway() {
			continue
		}
		if via, ok := tbl.Lookup(route.Gateway); !ok {
			log.Warnf("[%s] %s: gateway %s is not covered by any route", route.Source, pfx, route.Gateway)
		} else {
			log.Debugf("[%s] %s: gateway %s reachable via %s", route.Source, pfx, route.Gateway, via.Prefix)
		}
	}
}
