// Package config loads the holectl configuration file.
//
// The file is TOML. Every section is optional; missing values keep the
// defaults from DefaultConfig, which match a stock Pi-hole installation.
// Relative paths are resolved against the directory of the configuration file.
//
// # Example
//
//	[general]
//	setup_vars = "/etc/pihole/setupVars.conf"
//	dnsmasq_config = "/etc/dnsmasq.d/01-pihole.conf"
//
//	[lists]
//	backend = "sqlite"
//	database = "/etc/pihole/lists.db"
//
//	[ftl]
//	network = "tcp"
//	address = "127.0.0.1:4711"
//
// Loading:
//
//	cfg, err := config.LoadConfig("/etc/holectl/holectl.toml")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    return err // ValidationErrors lists every problem found
//	}
package config
