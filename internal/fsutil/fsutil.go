// Package fsutil provides file system utility functions.
package fsutil

import (
	"os"
	"strings"
)

// HasAnyExtension reports whether the path ends with one of the given
// extensions, compared case-insensitively. Extensions must include the
// leading dot.
func HasAnyExtension(path string, extensions ...string) bool {
	if len(extensions) == 0 {
		panic("at least one extension must be provided")
	}

	lower := strings.ToLower(path)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// EnsureDir creates the directory at path, along with any missing parents.
// It is a no-op if the directory already exists.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
