// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"strings"
)

// IsURL returns true if the string is an http(s) URL rather than a file path.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// IsHiddenName returns true for dotfile names like ".git" or ".cache".
// The current and parent directory entries do not count as hidden.
func IsHiddenName(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
