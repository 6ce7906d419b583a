// Package gravity runs the pihole gravity reload after list changes.
package gravity

import (
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/holectl/holectl/src/internal/errors"
	"github.com/holectl/holectl/src/internal/lists"
	"github.com/holectl/holectl/src/internal/log"
)

// Config describes how the gravity command is launched.
type Config struct {
	// Command is the pihole executable, looked up in PATH unless absolute.
	Command string
	// UseSudo prefixes the command with sudo.
	UseSudo bool
	// Timeout bounds a single reload. Zero disables the limit.
	Timeout time.Duration
}

// Reloader reloads one list into the resolver by running
// "pihole -g --skip-download --<list>-only".
type Reloader struct {
	cfg Config
}

func NewReloader(cfg Config) *Reloader {
	if cfg.Command == "" {
		cfg.Command = "pihole"
	}
	return &Reloader{cfg: cfg}
}

// Args returns the gravity arguments that reload only list.
func Args(list lists.List) ([]string, error) {
	var scope string
	switch list {
	case lists.Allow:
		scope = "--whitelist-only"
	case lists.Deny:
		scope = "--blacklist-only"
	default:
		return nil, errors.NewUnknownError(fmt.Sprintf("gravity cannot reload %s", list), nil)
	}
	return []string{"-g", "--skip-download", scope}, nil
}

// Reload implements lists.Reloader. The process gets no input and its output
// is discarded; the exit status alone decides success.
func (r *Reloader) Reload(ctx context.Context, list lists.List) error {
	args, err := Args(list)
	if err != nil {
		return err
	}

	name := r.cfg.Command
	if r.cfg.UseSudo {
		args = append([]string{name}, args...)
		name = "sudo"
	}

	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	commandLine := name + " " + strings.Join(args, " ")
	log.Debugf("Running %s", commandLine)

	// Nil Stdin/Stdout/Stderr are connected to the null device.
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Run(); err != nil {
		if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			return errors.NewReloadError(fmt.Sprintf("%s timed out after %s", commandLine, r.cfg.Timeout), err)
		}
		return errors.NewReloadError(commandLine+" failed", err)
	}
	return nil
}

// DryRunReloader logs reloads instead of running them.
type DryRunReloader struct{}

func (DryRunReloader) Reload(_ context.Context, list lists.List) error {
	args, err := Args(list)
	if err != nil {
		return err
	}
	log.Infof("[dry-run] would run: pihole %s", strings.Join(args, " "))
	return nil
}
