package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/holectl/holectl/src/internal/api"
	"github.com/holectl/holectl/src/internal/config"
	"github.com/holectl/holectl/src/internal/domain"
	"github.com/holectl/holectl/src/internal/log"
	"github.com/holectl/holectl/src/internal/watch"
)

// ServerCommand implements the server command for running the HTTP API server.
type ServerCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	cfg  *config.Config
	deps *domain.AppDependencies

	bindAddr string
}

// CreateServerCommand creates a new server command.
func CreateServerCommand() *ServerCommand {
	c := &ServerCommand{
		fs: flag.NewFlagSet("server", flag.ContinueOnError),
	}
	c.fs.StringVar(&c.bindAddr, "bind", "", "Address to bind the HTTP server (default: api.listen from the configuration)")
	return c
}

// Name returns the command name.
func (c *ServerCommand) Name() string {
	return c.fs.Name()
}

// Init initializes the server command with arguments.
func (c *ServerCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	if c.bindAddr == "" {
		c.bindAddr = cfg.API.Listen
	}

	if c.deps, err = domain.NewAppDependencies(cfg); err != nil {
		return err
	}
	return nil
}

// Run starts the HTTP API server and blocks until SIGINT or SIGTERM.
func (c *ServerCommand) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.serve(ctx)
}

func (c *ServerCommand) serve(ctx context.Context) error {
	defer func() {
		if err := c.deps.Close(); err != nil {
			log.Warnf("Failed to close list storage: %v", err)
		}
	}()

	if c.cfg.API.PrivateOnly {
		log.Infof("Access restricted to private subnets only:")
		log.Infof("  IPv4: 10.0.0.0/8, 172.16.0.0/12, 192.168.0.0/16, 127.0.0.0/8")
		log.Infof("  IPv6: fc00::/7, fe80::/10, ::1/128")
	}

	server := api.NewServer(c.bindAddr, c.deps, api.RouterOptions{
		PrivateOnly: c.cfg.API.PrivateOnly,
		Version: api.VersionInfo{
			Version: c.ctx.Version,
			Commit:  c.ctx.Commit,
			Date:    c.ctx.Date,
		},
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(server.Start)

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		log.Infof("Server stopped gracefully")
		return nil
	})

	if c.cfg.API.WatchSetupVars {
		watcher, err := watch.New(watch.Config{
			Path:      c.deps.Compiler().Source(),
			Generator: c.deps.Compiler(),
		})
		if err != nil {
			return err
		}
		g.Go(func() error { return watcher.Run(gctx) })
	}

	return g.Wait()
}
