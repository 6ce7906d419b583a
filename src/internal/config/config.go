package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/holectl/holectl/src/internal/errors"
	"github.com/holectl/holectl/src/internal/log"
	"github.com/holectl/holectl/src/internal/utils"
)

// LoadConfig reads the configuration file at configPath on top of DefaultConfig
// and resolves relative paths against the file's directory.
func LoadConfig(configPath string) (*Config, error) {
	configFile, err := filepath.Abs(filepath.Clean(configPath))
	if err != nil {
		return nil, errors.NewConfigError("failed to get absolute path", err)
	}

	content, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, errors.NewConfigError(fmt.Sprintf("configuration file not found: %s", configFile), nil)
	}
	if err != nil {
		return nil, errors.NewConfigError("failed to read config file", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(content, config); err != nil {
		var derr *toml.DecodeError
		if stderrors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file at line %d, column %d", row, col), err)
		}
		return nil, errors.NewConfigError("failed to parse config file", err)
	}

	config._absConfigFilePath = configFile
	config.resolvePaths()

	log.Debugf("Configuration file path: %s", configFile)
	return config, nil
}

func (c *Config) resolvePaths() {
	dir := c.GetConfigDir()
	for _, p := range []*string{
		&c.General.SetupVars,
		&c.General.DnsmasqConfig,
		&c.Lists.Whitelist,
		&c.Lists.Blacklist,
		&c.Lists.Regexlist,
		&c.Lists.Database,
	} {
		*p = utils.GetAbsolutePath(*p, dir)
	}
	if c.FTL.Network == "unix" {
		c.FTL.Address = utils.GetAbsolutePath(c.FTL.Address, dir)
	}
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

// WriteConfig writes the configuration to path, creating parent directories.
func (c *Config) WriteConfig(path string) error {
	config, err := c.SerializeConfig()
	if err != nil {
		return errors.NewConfigError("failed to serialize config", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.NewConfigError("failed to create config directory", err)
	}
	if err := os.WriteFile(path, config.Bytes(), 0o644); err != nil {
		return errors.NewConfigError("failed to write config file", err)
	}
	return nil
}
