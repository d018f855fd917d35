package project

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"

	"github.com/donaldgifford/metaforge/internal/language"
)

// DefaultSkipDirs are directory names that never contain first-party projects.
var DefaultSkipDirs = []string{".git", "node_modules", "vendor", "target"}

// Opts configures a Scanner.
type Opts struct {
	// Registry holds the languages to match. Nil uses language.DefaultRegistry.
	Registry *language.Registry
	// SkipDirs are directory names pruned from the walk. Nil prunes nothing.
	SkipDirs []string
	// Policy decides whether a bad entry aborts the scan.
	Policy Policy
	// Logger for debug output.
	Logger *slog.Logger
}

// Scanner walks a repository and records a Project for every manifest it finds.
type Scanner struct {
	registry *language.Registry
	skipDirs []string
	policy   Policy
	logger   *slog.Logger
}

// NewScanner creates a Scanner from opts. A nil opts uses the defaults.
func NewScanner(opts *Opts) *Scanner {
	if opts == nil {
		opts = &Opts{}
	}

	registry := opts.Registry
	if registry == nil {
		registry = language.DefaultRegistry(nil)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Scanner{
		registry: registry,
		skipDirs: opts.SkipDirs,
		policy:   opts.Policy,
		logger:   logger,
	}
}

// Scan walks the tree under root in lexical order and returns one Project per
// file whose name equals a registered manifest file name. Matching continues
// below a project directory, so nested projects are found too.
//
// Under PolicyAbort the first bad entry ends the scan with a *ScanError.
// Under PolicyContinue bad entries are skipped: Scan returns the projects it
// found together with a *multierror.Error listing every skipped entry.
func (s *Scanner) Scan(ctx context.Context, root string) ([]Project, error) {
	var (
		projects []Project
		skipped  *multierror.Error
	)

	entryErr := func(path string, err error) error {
		scanErr := &ScanError{Path: path, Err: err}
		if s.policy == PolicyAbort {
			return scanErr
		}

		s.logger.Warn("skipping unreadable entry", "path", path, "err", err)
		skipped = multierror.Append(skipped, scanErr)

		return nil
	}

	// WalkDir does not descend through a symlinked root, so walk the target
	// and report paths under root.
	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, &ScanError{Path: root, Err: err}
	}

	walkErr := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if path != walkRoot {
			rel, relErr := filepath.Rel(walkRoot, path)
			if relErr != nil {
				return entryErr(path, relErr)
			}

			path = filepath.Join(root, rel)
		} else {
			path = root
		}

		if err != nil {
			if path == root {
				return &ScanError{Path: path, Err: err}
			}

			return entryErr(path, err)
		}

		if d.IsDir() {
			if path != root && slices.Contains(s.skipDirs, d.Name()) {
				s.logger.Debug("skipping directory", "path", path)

				return fs.SkipDir
			}

			return nil
		}

		return s.visitFile(path, d.Name(), &projects, entryErr)
	})
	if walkErr != nil {
		return nil, walkErr
	}

	s.logger.Debug("scan complete", "root", root, "projects", len(projects))

	return projects, skipped.ErrorOrNil()
}

func (s *Scanner) visitFile(path, name string, projects *[]Project, entryErr func(string, error) error) error {
	if !utf8.ValidString(name) {
		return entryErr(path, ErrInvalidFileName)
	}

	for _, lang := range s.registry.Match(name) {
		dir := filepath.Dir(path)
		if dir == path {
			return entryErr(path, ErrNoParent)
		}

		s.logger.Debug("found project", "root", dir, "language", lang.Name())
		*projects = append(*projects, Project{Root: dir, Language: lang})
	}

	return nil
}

// Scan walks root with a default Scanner.
func Scan(ctx context.Context, root string) ([]Project, error) {
	projects, err := NewScanner(nil).Scan(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	return projects, nil
}
