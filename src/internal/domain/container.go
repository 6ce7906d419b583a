package domain

import (
	"io"

	"github.com/holectl/holectl/src/internal/config"
	"github.com/holectl/holectl/src/internal/errors"
	"github.com/holectl/holectl/src/internal/ftl"
	"github.com/holectl/holectl/src/internal/gravity"
	"github.com/holectl/holectl/src/internal/lists"
	"github.com/holectl/holectl/src/internal/log"
)

// AppDependencies is a dependency injection container that holds all application dependencies.
//
// Usage:
//
//	deps, err := domain.NewAppDependencies(cfg)
//	if err != nil {
//	    return err
//	}
//	defer deps.Close()
//	err = deps.ListService().Add(ctx, lists.Deny, "ads.example.com")
type AppDependencies struct {
	listService ListService
	compiler    ConfigCompiler

	// closer releases the repository, nil when it holds no resources
	closer io.Closer
}

// NewAppDependencies creates the production implementations selected by cfg.
//
// With General.DryRun set the gravity reload and the FTL commands are only logged.
func NewAppDependencies(cfg *config.Config) (*AppDependencies, error) {
	repo, closer, err := newRepository(cfg.Lists)
	if err != nil {
		return nil, err
	}

	var reloader lists.Reloader
	var channel lists.ControlChannel
	if cfg.General.DryRun {
		log.Debugf("Dry run: gravity reloads and FTL commands are not executed")
		reloader = gravity.DryRunReloader{}
		channel = ftl.DryRunChannel{}
	} else {
		reloader = gravity.NewReloader(gravity.Config{
			Command: cfg.Gravity.Command,
			UseSudo: cfg.Gravity.UseSudo,
			Timeout: cfg.GravityTimeout(),
		})
		channel = ftl.NewClient(cfg.FTL.Network, cfg.FTL.Address, cfg.FTLTimeout())
	}

	return &AppDependencies{
		listService: lists.NewService(repo, reloader, channel),
		compiler:    NewDnsmasqCompiler(cfg.General.SetupVars, cfg.General.DnsmasqConfig),
		closer:      closer,
	}, nil
}

func newRepository(cfg config.ListsConfig) (lists.Repository, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return lists.NewFileRepository(map[lists.List]string{
			lists.Allow:   cfg.Whitelist,
			lists.Deny:    cfg.Blacklist,
			lists.Pattern: cfg.Regexlist,
		}), nil, nil
	case config.BackendSQLite:
		repo, err := lists.OpenSQLiteRepository(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo, nil
	case config.BackendMemory:
		return lists.NewMemoryRepository(), nil, nil
	default:
		return nil, nil, errors.NewConfigError("unknown list backend \""+cfg.Backend+"\"", nil)
	}
}

// NewTestDependencies creates a dependency container around the given implementations.
func NewTestDependencies(listService ListService, compiler ConfigCompiler) *AppDependencies {
	return &AppDependencies{
		listService: listService,
		compiler:    compiler,
	}
}

// ListService returns the list service.
func (d *AppDependencies) ListService() ListService {
	return d.listService
}

// Compiler returns the dnsmasq configuration compiler.
func (d *AppDependencies) Compiler() ConfigCompiler {
	return d.compiler
}

// Close releases the list repository.
func (d *AppDependencies) Close() error {
	if d.closer == nil {
		return nil
	}
	return d.closer.Close()
}
