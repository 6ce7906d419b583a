package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/holectl/holectl/src/internal/commands"
	"github.com/holectl/holectl/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	flag.StringVar(&ctx.ConfigPath, "config", commands.DefaultConfigPath, "Path to configuration file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Pi-hole list and dnsmasq configuration manager\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  add -list <list> <domain>...     Add domains to whitelist, blacklist or regexlist\n")
		fmt.Fprintf(os.Stderr, "  remove -list <list> <domain>...  Remove domains from a list\n")
		fmt.Fprintf(os.Stderr, "  show -list <list>                Print the entries of a list\n")
		fmt.Fprintf(os.Stderr, "  generate-dnsmasq [-o path|-]     Compile setupVars.conf into the dnsmasq configuration\n")
		fmt.Fprintf(os.Stderr, "  interfaces                       Show available network interfaces\n")
		fmt.Fprintf(os.Stderr, "  init-config [-force]             Write the default configuration file\n")
		fmt.Fprintf(os.Stderr, "  server [-bind addr]              Run the HTTP API server\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	cmds := []commands.Runner{
		commands.CreateAddCommand(),
		commands.CreateRemoveCommand(),
		commands.CreateShowCommand(),
		commands.CreateGenerateDnsmasqCommand(),
		commands.CreateInterfacesCommand(),
		commands.CreateInitConfigCommand(),
		commands.CreateServerCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
