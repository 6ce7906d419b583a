package lists

import (
	"context"
	"slices"
	"sync"

	"github.com/holectl/holectl/src/internal/errors"
)

// MemoryRepository keeps entries in process memory.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[List][]string
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[List][]string)}
}

func (r *MemoryRepository) Contains(_ context.Context, list List, domain string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Contains(r.entries[list], domain), nil
}

func (r *MemoryRepository) Add(_ context.Context, list List, domain string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slices.Contains(r.entries[list], domain) {
		return errors.NewAlreadyExistsError(list.String(), domain)
	}
	r.entries[list] = append(r.entries[list], domain)
	return nil
}

func (r *MemoryRepository) Remove(_ context.Context, list List, domain string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := slices.Index(r.entries[list], domain)
	if i < 0 {
		return errors.NewNotFoundError(list.String(), domain)
	}
	r.entries[list] = slices.Delete(r.entries[list], i, i+1)
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, list List) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string{}, r.entries[list]...), nil
}
