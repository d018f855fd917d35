// Package project discovers the buildable projects inside a repository and
// extracts their internal dependencies.
package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/donaldgifford/metaforge/internal/language"
)

// Project is a directory holding a manifest recognised by Language.
type Project struct {
	// Root is the directory containing the manifest.
	Root string
	// Language is the language whose manifest was matched.
	Language language.Language
}

// ManifestPath returns the path of the project's manifest file.
func (p Project) ManifestPath() string {
	return filepath.Join(p.Root, p.Language.ManifestFileName())
}

// Policy controls how per-entry failures affect a scan or extraction run.
type Policy int

const (
	// PolicyAbort stops at the first failure and returns no results.
	PolicyAbort Policy = iota

	// PolicyContinue skips failing entries and reports them together
	// alongside the results that succeeded.
	PolicyContinue
)

// String returns the config spelling of the policy.
func (p Policy) String() string {
	switch p {
	case PolicyAbort:
		return "abort"
	case PolicyContinue:
		return "continue"
	default:
		return "unknown"
	}
}

// ParsePolicy converts "abort" or "continue" into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "abort":
		return PolicyAbort, nil
	case "continue":
		return PolicyContinue, nil
	default:
		return PolicyAbort, fmt.Errorf("unknown scan policy %q, must be one of: abort, continue", s)
	}
}

var (
	// ErrInvalidFileName is returned for entries whose name is not valid UTF-8.
	ErrInvalidFileName = errors.New("file name is not valid UTF-8")

	// ErrNoParent is returned when a manifest has no parent directory.
	ErrNoParent = errors.New("manifest has no parent directory")
)

// ScanError records a failure for one filesystem entry during a scan.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scanning %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
