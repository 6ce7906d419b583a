// Package commands implements the CLI commands of holectl.
//
// Each command implements the Runner interface:
//   - Init(): Parse arguments and load configuration
//   - Run(): Execute the command
//   - Name(): Return command name for routing
//
// # Available Commands
//
//   - add, remove, show: manage the whitelist, blacklist and regex list
//   - generate-dnsmasq: compile setupVars.conf into the dnsmasq configuration
//   - interfaces: list the network interfaces dnsmasq can listen on
//   - init-config: write the default configuration file
//   - server: run the HTTP API
//
// # Example Usage
//
//	cmd := commands.CreateAddCommand()
//	ctx := &commands.AppContext{
//	    ConfigPath: "/etc/holectl/holectl.toml",
//	}
//	if err := cmd.Init([]string{"-list", "blacklist", "ads.example.com"}, ctx); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package commands
