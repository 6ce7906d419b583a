package config

import (
	"path/filepath"
	"time"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type Config struct {
	General GeneralConfig `toml:"general" json:"general"`
	Lists   ListsConfig   `toml:"lists" json:"lists"`
	Gravity GravityConfig `toml:"gravity" json:"gravity"`
	FTL     FTLConfig     `toml:"ftl" json:"ftl"`
	API     APIConfig     `toml:"api" json:"api"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// SetupVars is the appliance settings file read by the dnsmasq compiler.
	SetupVars string `toml:"setup_vars" json:"setup_vars" validate:"required"`
	// DnsmasqConfig is where the compiled dnsmasq configuration is written.
	DnsmasqConfig string `toml:"dnsmasq_config" json:"dnsmasq_config" validate:"required"`
	// DryRun logs gravity reloads and FTL commands instead of running them.
	DryRun bool `toml:"dry_run" json:"dry_run"`
}

type ListsConfig struct {
	// Backend selects the list storage: file, sqlite or memory.
	Backend string `toml:"backend" json:"backend" validate:"required,oneof=file sqlite memory"`
	// Whitelist, Blacklist and Regexlist are the list files of the file backend.
	Whitelist string `toml:"whitelist" json:"whitelist" validate:"required_if=Backend file"`
	Blacklist string `toml:"blacklist" json:"blacklist" validate:"required_if=Backend file"`
	Regexlist string `toml:"regexlist" json:"regexlist" validate:"required_if=Backend file"`
	// Database is the SQLite database of the sqlite backend.
	Database string `toml:"database" json:"database" validate:"required_if=Backend sqlite"`
}

type GravityConfig struct {
	// Command is the pihole executable.
	Command string `toml:"command" json:"command" validate:"required"`
	// UseSudo runs the command through sudo.
	UseSudo bool `toml:"use_sudo" json:"use_sudo"`
	// TimeoutSeconds bounds a single reload (0 = no limit).
	TimeoutSeconds int `toml:"timeout_seconds" json:"timeout_seconds" validate:"gte=0"`
}

type FTLConfig struct {
	// Network is "unix" for the FTL socket file or "tcp" for the telnet port.
	Network string `toml:"network" json:"network" validate:"required,oneof=unix tcp"`
	// Address is the socket path or host:port.
	Address string `toml:"address" json:"address" validate:"required"`
	// TimeoutSeconds bounds a single command round trip (0 = no limit).
	TimeoutSeconds int `toml:"timeout_seconds" json:"timeout_seconds" validate:"gte=0"`
}

type APIConfig struct {
	// Listen is the host:port of the HTTP API.
	Listen string `toml:"listen" json:"listen" validate:"required,hostport"`
	// PrivateOnly rejects requests from non-private source addresses.
	PrivateOnly bool `toml:"private_only" json:"private_only"`
	// WatchSetupVars regenerates the dnsmasq configuration when setup_vars changes.
	WatchSetupVars bool `toml:"watch_setup_vars" json:"watch_setup_vars"`
}

// DefaultConfig returns the configuration of a stock Pi-hole installation.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			SetupVars:     "/etc/pihole/setupVars.conf",
			DnsmasqConfig: "/etc/dnsmasq.d/01-pihole.conf",
		},
		Lists: ListsConfig{
			Backend:   BackendFile,
			Whitelist: "/etc/pihole/whitelist.txt",
			Blacklist: "/etc/pihole/blacklist.txt",
			Regexlist: "/etc/pihole/regex.list",
			Database:  "/etc/pihole/lists.db",
		},
		Gravity: GravityConfig{
			Command:        "pihole",
			UseSudo:        true,
			TimeoutSeconds: 300,
		},
		FTL: FTLConfig{
			Network:        "unix",
			Address:        "/var/run/pihole/FTL.sock",
			TimeoutSeconds: 5,
		},
		API: APIConfig{
			Listen:      "127.0.0.1:8081",
			PrivateOnly: true,
		},
	}
}

func (c *Config) GetConfigDir() string {
	if c._absConfigFilePath == "" {
		return "."
	}
	return filepath.Dir(c._absConfigFilePath)
}

func (c *Config) GravityTimeout() time.Duration {
	return time.Duration(c.Gravity.TimeoutSeconds) * time.Second
}

func (c *Config) FTLTimeout() time.Duration {
	return time.Duration(c.FTL.TimeoutSeconds) * time.Second
}
