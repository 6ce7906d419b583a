package commands

import (
	"bufio"
	"flag"
	"fmt"

	"github.com/holectl/holectl/src/internal/domain"
	"github.com/holectl/holectl/src/internal/log"
	"github.com/holectl/holectl/src/internal/networking"
	"github.com/holectl/holectl/src/internal/settings"
)

func CreateGenerateDnsmasqCommand() *GenerateDnsmasqCommand {
	c := &GenerateDnsmasqCommand{
		fs:     flag.NewFlagSet("generate-dnsmasq", flag.ContinueOnError),
		lookup: networking.GetInterface,
	}
	c.fs.StringVar(&c.output, "o", "", "Output file, \"-\" for stdout (default: dnsmasq_config from the configuration)")
	return c
}

type GenerateDnsmasqCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext

	output   string
	compiler *domain.DnsmasqCompiler
	lookup   networking.InterfaceLookup
}

func (g *GenerateDnsmasqCommand) Name() string {
	return g.fs.Name()
}

func (g *GenerateDnsmasqCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	// keep stdout clean for the configuration
	if g.output == "-" {
		log.SetForceStdErr(true)
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}

	destination := cfg.General.DnsmasqConfig
	if g.output != "" && g.output != "-" {
		destination = g.output
	}
	g.compiler = domain.NewDnsmasqCompiler(cfg.General.SetupVars, destination)
	return nil
}

func (g *GenerateDnsmasqCommand) Run() error {
	g.checkInterface()

	if g.output == "-" {
		out := bufio.NewWriter(g.ctx.out())
		if err := g.compiler.Preview(out); err != nil {
			return fmt.Errorf("failed to render dnsmasq config: %w", err)
		}
		return out.Flush()
	}

	if err := g.compiler.Generate(); err != nil {
		return fmt.Errorf("failed to generate dnsmasq config: %w", err)
	}
	return nil
}

// checkInterface warns when dnsmasq would bind to a missing or down interface.
func (g *GenerateDnsmasqCommand) checkInterface() {
	store, err := settings.LoadFile(g.compiler.Source())
	if err != nil {
		// reported by the compiler
		return
	}
	if err := networking.CheckListeningInterface(store, g.lookup); err != nil {
		log.Warnf("%v", err)
	}
}
