package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/holectl/holectl/src/internal/config"
	"github.com/holectl/holectl/src/internal/log"
)

func CreateInitConfigCommand() *InitConfigCommand {
	c := &InitConfigCommand{
		fs: flag.NewFlagSet("init-config", flag.ContinueOnError),
	}
	c.fs.BoolVar(&c.force, "force", false, "Overwrite an existing configuration file")
	return c
}

// InitConfigCommand writes the default configuration to the -config path.
type InitConfigCommand struct {
	fs    *flag.FlagSet
	ctx   *AppContext
	force bool
}

func (c *InitConfigCommand) Name() string {
	return c.fs.Name()
}

func (c *InitConfigCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	return c.fs.Parse(args)
}

func (c *InitConfigCommand) Run() error {
	if _, err := os.Stat(c.ctx.ConfigPath); err == nil && !c.force {
		return fmt.Errorf("configuration file %s already exists, use -force to overwrite", c.ctx.ConfigPath)
	}

	if err := config.DefaultConfig().WriteConfig(c.ctx.ConfigPath); err != nil {
		return err
	}

	log.Infof("Configuration written to %s", c.ctx.ConfigPath)
	return nil
}
