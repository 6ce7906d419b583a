package lists

import "context"

// Repository stores list entries.
//
// Add returns an ALREADY_EXISTS error for a duplicate entry and Remove a
// NOT_FOUND error for a missing one. Get returns entries in storage order.
type Repository interface {
	Contains(ctx context.Context, list List, domain string) (bool, error)
	Add(ctx context.Context, list List, domain string) error
	Remove(ctx context.Context, list List, domain string) error
	Get(ctx context.Context, list List) ([]string, error)
}

// Reloader makes the resolver re-read the on-disk data of one list.
type Reloader interface {
	Reload(ctx context.Context, list List) error
}

// ControlChannel sends a command to the running resolver and requires an
// empty acknowledgment.
type ControlChannel interface {
	Send(ctx context.Context, command string) error
}
