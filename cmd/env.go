package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/metaforge/internal/config"
	"github.com/donaldgifford/metaforge/internal/language"
	"github.com/donaldgifford/metaforge/internal/project"
	"github.com/donaldgifford/metaforge/internal/repo"
	"github.com/donaldgifford/metaforge/internal/ui"
)

// runEnv is the state shared by the repository commands.
type runEnv struct {
	cfg     *config.Config
	root    string
	policy  project.Policy
	scanner *project.Scanner
	ui      *ui.Writer
}

// setup loads the configuration, locates the repository root, and builds a
// scanner for it.
func setup(cmd *cobra.Command) (*runEnv, error) {
	path := cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, err
	}

	policy, err := project.ParsePolicy(cfg.ScanPolicy)
	if err != nil {
		return nil, err
	}

	internal, err := cfg.InternalRegexp()
	if err != nil {
		return nil, err
	}

	root, err := repo.LocateMarker(startDir, cfg.Marker)
	if err != nil {
		return nil, fmt.Errorf("locating repository: %w", err)
	}

	slog.Debug("repository root", "root", root, "marker", cfg.Marker)

	skip := cfg.SkipDirs
	if !slices.Contains(skip, cfg.Marker) {
		skip = append(slices.Clone(skip), cfg.Marker)
	}

	scanner := project.NewScanner(&project.Opts{
		Registry: language.DefaultRegistry(internal),
		SkipDirs: skip,
		Policy:   policy,
		Logger:   slog.Default(),
	})

	return &runEnv{
		cfg:     cfg,
		root:    root,
		policy:  policy,
		scanner: scanner,
		ui:      ui.NewWriterTo(cmd.ErrOrStderr(), noColor),
	}, nil
}

// scan runs the project scan and reports skipped entries as warnings.
func (e *runEnv) scan(cmd *cobra.Command) ([]project.Project, error) {
	projects, err := e.scanner.Scan(cmd.Context(), e.root)
	if err = e.tolerate(err); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", e.root, err)
	}

	return projects, nil
}

// dependencies extracts the internal dependencies of every project.
func (e *runEnv) dependencies(projects []project.Project) ([]project.Result, error) {
	results, err := project.DependenciesAll(projects, e.policy)
	if err = e.tolerate(err); err != nil {
		return nil, err
	}

	return results, nil
}

// tolerate turns the collected errors of a PolicyContinue run into warnings.
// Any other error is returned unchanged.
func (e *runEnv) tolerate(err error) error {
	if err == nil || e.policy != project.PolicyContinue {
		return err
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		return err
	}

	e.ui.Skipped(merr)

	return nil
}
