package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/holectl/holectl/src/internal/networking"
)

func CreateInterfacesCommand() *InterfacesCommand {
	return &InterfacesCommand{
		fs:   flag.NewFlagSet("interfaces", flag.ContinueOnError),
		list: networking.GetInterfaceList,
	}
}

type InterfacesCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext

	list func() ([]networking.Interface, error)
}

func (g *InterfacesCommand) Name() string {
	return g.fs.Name()
}

func (g *InterfacesCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx
	return g.fs.Parse(args)
}

func (g *InterfacesCommand) Run() error {
	interfaces, err := g.list()
	if err != nil {
		return fmt.Errorf("failed to get interfaces: %v", err)
	}

	out := g.ctx.out()
	for i := range interfaces {
		iface := &interfaces[i]
		if iface.IsLoopback() {
			continue
		}

		state := "down"
		if iface.IsUp() {
			state = "up"
		}

		var addrs []string
		if ips, err := iface.AddrsIps(); err == nil {
			for _, ip := range ips {
				addrs = append(addrs, ip.String())
			}
		}

		fmt.Fprintf(out, "%-16s %-5s %s\n", iface.Attrs().Name, state, strings.Join(addrs, ", "))
	}
	return nil
}
