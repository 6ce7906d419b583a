package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/holectl/holectl/src/internal/config"
	"github.com/holectl/holectl/src/internal/log"
)

// DefaultConfigPath is used when -config is not given.
const DefaultConfigPath = "/etc/holectl/holectl.toml"

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool

	// Build information
	Version string
	Commit  string
	Date    string

	// Out receives command output, os.Stdout when nil
	Out io.Writer
}

func (ctx *AppContext) out() io.Writer {
	if ctx.Out == nil {
		return os.Stdout
	}
	return ctx.Out
}

// loadAndValidateConfigOrFail loads and validates the configuration file.
// A missing file at DefaultConfigPath yields the stock Pi-hole defaults.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	var cfg *config.Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) && configPath == DefaultConfigPath {
		log.Debugf("Configuration file %s not found, using defaults", configPath)
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}
