package domain

import (
	"io"
	"sync"

	"github.com/holectl/holectl/src/internal/dnsmasq"
	"github.com/holectl/holectl/src/internal/settings"
)

// DnsmasqCompiler compiles the settings file at source into destination.
// The settings file is re-read on every call.
type DnsmasqCompiler struct {
	source      string
	destination string

	mu    sync.Mutex
	store *settings.FileStore
}

func NewDnsmasqCompiler(source, destination string) *DnsmasqCompiler {
	return &DnsmasqCompiler{source: source, destination: destination}
}

func (c *DnsmasqCompiler) Source() string      { return c.source }
func (c *DnsmasqCompiler) Destination() string { return c.destination }

func (c *DnsmasqCompiler) Preview(w io.Writer) error {
	store, err := c.settings()
	if err != nil {
		return err
	}
	return dnsmasq.Write(w, store)
}

func (c *DnsmasqCompiler) Generate() error {
	store, err := c.settings()
	if err != nil {
		return err
	}
	return dnsmasq.Generate(store, c.destination)
}

// settings returns a snapshot of the freshly read settings file.
func (c *DnsmasqCompiler) settings() (settings.Store, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store == nil {
		store, err := settings.LoadFile(c.source)
		if err != nil {
			return nil, err
		}
		c.store = store
	} else if err := c.store.Reload(); err != nil {
		return nil, err
	}
	return c.store.Snapshot(), nil
}
