package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/maksimkurb/keen-lpm/src/internal/config"
	"github.com/maksimkurb/keen-lpm/src/internal/resolver"
	"github.com/maksimkurb/keen-lpm/src/internal/routes"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
	Version    string

	// Stdout receives command results; nil means os.Stdout.
	Stdout io.Writer
	// KernelRoutes reads kernel tables for kernel_table sources; nil means netlink.
	KernelRoutes routes.RouteLister
}

func (ctx *AppContext) out() io.Writer {
	if ctx.Stdout == nil {
		return os.Stdout
	}
	return ctx.Stdout
}

func (ctx *AppContext) kernel() routes.RouteLister {
	if ctx.KernelRoutes == nil {
		return routes.NetlinkLister{}
	}
	return ctx.KernelRoutes
}

// loadAndValidateConfigOrFail loads configuration from file and validates it.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return cfg, nil
}

// buildTable loads every source of cfg into a fresh table.
func buildTable(ctx *AppContext, cfg *config.Config) (*routes.Table, []routes.SourceStats, error) {
	return routes.NewLoader(cfg, ctx.kernel()).Load(context.Background())
}

// newResolver returns nil when no DNS upstream is configured.
func newResolver(cfg *config.Config) (*resolver.Resolver, error) {
	if cfg.General.DNSUpstream == "" {
		return nil, nil
	}
	timeout := time.Duration(cfg.General.GetDNSTimeoutSeconds()) * time.Second
	return resolver.NewResolver(cfg.General.DNSUpstream, timeout)
}

// failedInputs is returned by commands that keep going after bad inputs.
func failedInputs(failed, total int) error {
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d inputs failed", failed, total)
}
