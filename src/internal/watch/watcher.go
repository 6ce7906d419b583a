// Package watch regenerates the dnsmasq configuration when the settings file changes.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/holectl/holectl/src/internal/errors"
	"github.com/holectl/holectl/src/internal/log"
)

// Regenerator rebuilds derived state from the watched file.
type Regenerator interface {
	Generate() error
}

// Config configures the settings watcher.
type Config struct {
	// Path is the watched file. Its directory is watched so that editors
	// replacing the file by rename are noticed.
	Path      string
	Generator Regenerator
	// Debounce period for rapid changes, 200ms when zero
	Debounce time.Duration
	// OnChange is called after every regeneration attempt
	OnChange func(err error)
}

// Watcher calls the generator after the watched file settles.
type Watcher struct {
	path      string
	generator Regenerator
	debounce  time.Duration
	onChange  func(err error)
}

// New creates a watcher. Nothing is watched until Run is called.
func New(cfg Config) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, errors.NewConfigError("watched path is required", nil)
	}
	if cfg.Generator == nil {
		return nil, errors.NewConfigError("generator is required", nil)
	}

	path, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, errors.NewConfigError("failed to resolve "+cfg.Path, err)
	}

	debounce := cfg.Debounce
	if debounce == 0 {
		debounce = 200 * time.Millisecond
	}

	return &Watcher{
		path:      path,
		generator: cfg.Generator,
		debounce:  debounce,
		onChange:  cfg.OnChange,
	}, nil
}

// Run watches the file until ctx is cancelled. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.NewConfigError("failed to create watcher", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return errors.NewConfigError("failed to watch "+filepath.Dir(w.path), err)
	}
	log.Infof("Watching %s for changes", w.path)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debugf("Settings file event: %s", event.Op)
			timer.Reset(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnf("Settings watcher error: %v", err)

		case <-timer.C:
			w.regenerate()

		case <-ctx.Done():
			return nil
		}
	}
}

func (w *Watcher) regenerate() {
	err := w.generator.Generate()
	if err != nil {
		log.Errorf("Failed to regenerate dnsmasq config after %s changed: %v", w.path, err)
	} else {
		log.Infof("Regenerated dnsmasq config after %s changed", w.path)
	}
	if w.onChange != nil {
		w.onChange(err)
	}
}
