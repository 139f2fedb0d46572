package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maksimkurb/keen-lpm/src/internal/api"
	"github.com/maksimkurb/keen-lpm/src/internal/config"
	"github.com/maksimkurb/keen-lpm/src/internal/log"
)

// ServerCommand implements the serve command for running the HTTP API server.
type ServerCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	// Command-specific flags
	bindAddr    string
	privateOnly bool

	server *api.Server
}

// CreateServerCommand creates a new serve command.
func CreateServerCommand() Runner {
	return &ServerCommand{}
}

// Name returns the command name.
func (c *ServerCommand) Name() string {
	return "serve"
}

// Init loads the configuration and builds the table before anything listens.
func (c *ServerCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet("serve", flag.ExitOnError)

	c.fs.StringVar(&c.bindAddr, "bind", "", "Address to bind the HTTP server (default: general.api_bind_address or "+config.DefaultAPIBindAddress+")")
	c.fs.BoolVar(&c.privateOnly, "private-only", false, "Reject clients outside private and loopback networks")

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	// Flag wins over config
	if c.bindAddr == "" {
		c.bindAddr = cfg.General.GetAPIBindAddress()
	}

	tbl, stats, err := buildTable(ctx, cfg)
	if err != nil {
		return err
	}

	res, err := newResolver(cfg)
	if err != nil {
		return err
	}
	var hostResolver api.HostResolver
	if res != nil {
		hostResolver = res
	}

	handler := api.NewHandler(tbl, stats, hostResolver, ctx.Version)
	c.server = api.NewServer(c.bindAddr, api.NewRouter(handler, api.RouterOptions{PrivateOnly: c.privateOnly}))
	return nil
}

// Run starts the HTTP API server and blocks until a signal arrives.
func (c *ServerCommand) Run() error {
	log.Infof("Starting keen-lpm API server on %s", c.bindAddr)
	log.Infof("Configuration loaded from: %s", c.ctx.ConfigPath)
	if c.privateOnly {
		log.Infof("Access restricted to private subnets only, public clients get 403 Forbidden")
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- c.server.Start()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		return err

	case sig := <-shutdown:
		log.Infof("Received signal %v, shutting down server...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := c.server.Stop(ctx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		log.Infof("Server stopped gracefully")
	}

	return nil
}
