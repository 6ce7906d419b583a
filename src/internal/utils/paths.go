package utils

import "path/filepath"

// GetAbsolutePath resolves path against baseDir unless it is already absolute.
// An empty path stays empty so optional settings remain unset.
func GetAbsolutePath(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}
