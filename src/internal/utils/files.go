package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/holectl/holectl/src/internal/log"
)

func CloseOrWarn(file io.Closer) {
	if err := file.Close(); err != nil {
		log.Warnf("Failed to close file: %v", err)
	}
}

// WriteFileAtomic renders a file through write into a temporary file next to
// path and renames it over path once everything is flushed and synced.
// Readers of path see either the old or the new content, never a partial one.
// Errors returned by write are passed through unchanged.
func WriteFileAtomic(path string, perm os.FileMode, write func(w io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := write(bw); err != nil {
		CloseOrWarn(tmp)
		return err
	}
	if err := bw.Flush(); err != nil {
		CloseOrWarn(tmp)
		return fmt.Errorf("failed to flush %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		CloseOrWarn(tmp)
		return fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		CloseOrWarn(tmp)
		return fmt.Errorf("failed to sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	tmpName = ""
	return nil
}
