package lists

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/holectl/holectl/src/internal/errors"
	"github.com/holectl/holectl/src/internal/utils"
)

// FileRepository stores each list in its own text file, one entry per line.
// Blank lines and lines starting with '#' are kept but not treated as entries.
//
// Read-modify-write cycles hold an exclusive flock(2) on a "<file>.lock"
// sidecar so other processes editing the same lists are serialized, and the
// list file itself is replaced atomically.
type FileRepository struct {
	paths map[List]string
	mu    sync.Mutex
}

// NewFileRepository creates a repository over the given list files.
// Missing files are treated as empty lists and created on first write.
func NewFileRepository(paths map[List]string) *FileRepository {
	return &FileRepository{paths: paths}
}

func (r *FileRepository) Contains(ctx context.Context, list List, domain string) (bool, error) {
	entries, err := r.Get(ctx, list)
	if err != nil {
		return false, err
	}
	for _, e := range entries {
		if e == domain {
			return true, nil
		}
	}
	return false, nil
}

func (r *FileRepository) Get(_ context.Context, list List) ([]string, error) {
	path, err := r.path(list)
	if err != nil {
		return nil, err
	}
	lines, err := readLines(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to read "+list.String(), err)
	}

	entries := make([]string, 0, len(lines))
	for _, line := range lines {
		if e, ok := entryOf(line); ok {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (r *FileRepository) Add(_ context.Context, list List, domain string) error {
	if e, ok := entryOf(domain); !ok || e != domain || strings.ContainsAny(domain, "\r\n") {
		return errors.NewInvalidDomainError(domain)
	}
	return r.update(list, func(lines []string) ([]string, error) {
		for _, line := range lines {
			if e, ok := entryOf(line); ok && e == domain {
				return nil, errors.NewAlreadyExistsError(list.String(), domain)
			}
		}
		return append(lines, domain), nil
	})
}

func (r *FileRepository) Remove(_ context.Context, list List, domain string) error {
	return r.update(list, func(lines []string) ([]string, error) {
		kept := lines[:0]
		found := false
		for _, line := range lines {
			if e, ok := entryOf(line); ok && e == domain {
				found = true
				continue
			}
			kept = append(kept, line)
		}
		if !found {
			return nil, errors.NewNotFoundError(list.String(), domain)
		}
		return kept, nil
	})
}

func (r *FileRepository) path(list List) (string, error) {
	path, ok := r.paths[list]
	if !ok || path == "" {
		return "", errors.NewUnknownError(fmt.Sprintf("no file configured for %s", list), nil)
	}
	return path, nil
}

func (r *FileRepository) update(list List, modify func(lines []string) ([]string, error)) error {
	path, err := r.path(list)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	unlock, err := lockFile(path + ".lock")
	if err != nil {
		return errors.NewStorageError("failed to lock "+list.String(), err)
	}
	defer unlock()

	lines, err := readLines(path)
	if err != nil {
		return errors.NewStorageError("failed to read "+list.String(), err)
	}

	lines, err = modify(lines)
	if err != nil {
		return err
	}

	err = utils.WriteFileAtomic(path, 0o644, func(w io.Writer) error {
		for _, line := range lines {
			if _, err := io.WriteString(w, line+"\n"); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.NewStorageError("failed to write "+list.String(), err)
	}
	return nil
}

func entryOf(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}
	return line, true
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer utils.CloseOrWarn(f)

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func lockFile(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		utils.CloseOrWarn(f)
		return nil, err
	}
	return func() {
		_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
		utils.CloseOrWarn(f)
	}, nil
}
