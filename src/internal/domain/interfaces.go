// Package domain defines the interfaces the outer layers (API, CLI, watcher)
// depend on and the container that wires their production implementations.
package domain

import (
	"context"
	"io"

	"github.com/holectl/holectl/src/internal/lists"
)

// ListService manages the whitelist, blacklist and regex list.
//
// Implementations keep the whitelist and blacklist mutually exclusive and
// notify the resolver after every successful change.
type ListService interface {
	// Add inserts domain into list.
	Add(ctx context.Context, list lists.List, domain string) error

	// Remove deletes domain from list.
	Remove(ctx context.Context, list lists.List, domain string) error

	// Get returns the entries of list in storage order.
	Get(ctx context.Context, list lists.List) ([]string, error)
}

// ConfigCompiler renders the dnsmasq configuration from the appliance settings.
type ConfigCompiler interface {
	// Preview renders the configuration into w without touching the destination file.
	Preview(w io.Writer) error

	// Generate renders the configuration into the destination file.
	Generate() error

	// Destination returns the path Generate writes to.
	Destination() string

	// Source returns the settings file the configuration is compiled from.
	Source() string
}
