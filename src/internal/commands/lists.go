package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/holectl/holectl/src/internal/domain"
	"github.com/holectl/holectl/src/internal/lists"
	"github.com/holectl/holectl/src/internal/log"
)

type listAction int

const (
	actionAdd listAction = iota
	actionRemove
	actionShow
)

func CreateAddCommand() *ListCommand {
	return newListCommand("add", actionAdd)
}

func CreateRemoveCommand() *ListCommand {
	return newListCommand("remove", actionRemove)
}

func CreateShowCommand() *ListCommand {
	return newListCommand("show", actionShow)
}

func newListCommand(name string, action listAction) *ListCommand {
	c := &ListCommand{
		fs:     flag.NewFlagSet(name, flag.ContinueOnError),
		action: action,
	}
	c.fs.StringVar(&c.listName, "list", "", "List to operate on: whitelist, blacklist or regexlist")
	return c
}

// ListCommand adds, removes or shows list entries.
type ListCommand struct {
	fs     *flag.FlagSet
	ctx    *AppContext
	action listAction

	listName string
	list     lists.List
	domains  []string

	deps *domain.AppDependencies
}

func (c *ListCommand) Name() string {
	return c.fs.Name()
}

func (c *ListCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	list, err := lists.ParseList(c.listName)
	if err != nil {
		return err
	}
	c.list = list

	c.domains = c.fs.Args()
	if c.action != actionShow && len(c.domains) == 0 {
		return fmt.Errorf("%s requires at least one domain", c.Name())
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}

	if c.deps, err = domain.NewAppDependencies(cfg); err != nil {
		return err
	}
	return nil
}

func (c *ListCommand) Run() error {
	defer func() {
		if err := c.deps.Close(); err != nil {
			log.Warnf("Failed to close list storage: %v", err)
		}
	}()

	ctx := context.Background()
	svc := c.deps.ListService()

	if c.action == actionShow {
		entries, err := svc.Get(ctx, c.list)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			fmt.Fprintln(c.ctx.out(), entry)
		}
		return nil
	}

	failed := 0
	for _, d := range c.domains {
		var err error
		if c.action == actionAdd {
			err = svc.Add(ctx, c.list, d)
		} else {
			err = svc.Remove(ctx, c.list, d)
		}
		if err != nil {
			log.Errorf("%s %s: %v", c.Name(), d, err)
			failed++
			continue
		}
		log.Infof("%s %s: ok (%s)", c.Name(), d, c.list)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d domains failed", failed, len(c.domains))
	}
	return nil
}
