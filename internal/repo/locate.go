// Package repo locates git repository roots and reads their remote configuration.
package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultMarker is the directory that marks a git repository root.
const DefaultMarker = ".git"

// ErrRepoNotFound is returned when no ancestor directory contains the marker.
var ErrRepoNotFound = errors.New("repository root not found")

// Locate walks upward from startDir until it finds a directory containing a
// .git directory and returns that directory as an absolute path. An empty
// startDir means the current working directory.
func Locate(startDir string) (string, error) {
	return LocateMarker(startDir, DefaultMarker)
}

// LocateMarker is Locate with a custom marker directory name.
func LocateMarker(startDir, marker string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}

		startDir = wd
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path %s: %w", startDir, err)
	}

	for {
		if isDir(filepath.Join(dir, marker)) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf(
				"%w: no %s directory in %s or any parent; is this a git repository?",
				ErrRepoNotFound, marker, startDir,
			)
		}

		dir = parent
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.IsDir()
}
