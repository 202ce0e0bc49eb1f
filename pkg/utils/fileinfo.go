// =============================================================================
// QCEFF Table Display - File Utilities
// =============================================================================
//
// Small helpers the readers use before opening a table:
//   - Existence checks that distinguish "missing" from "unreadable"
//   - Size and extension lookups for logging and reader selection
//
// =============================================================================

package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileExists checks if a regular file exists at path.
// Directories do not count: a table path that names a directory is as
// useless as a missing one.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsNotExist reports whether err means the path is missing, either directly
// or because a parent directory is missing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// GetFileSize returns the size of a file in bytes.
func GetFileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Ext returns the lower-cased extension of path, including the dot.
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
