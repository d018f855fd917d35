package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/metaforge/internal/repo"
)

// State reports where a reconciled descriptor came from.
type State int

const (
	// StateAbsent means no descriptor has been resolved yet.
	StateAbsent State = iota
	// StateExisting means the descriptor was read from the repository.
	StateExisting
	// StateNew means the descriptor was built from defaults.
	StateNew
	// StateMerged means discovered dependencies were added to the descriptor.
	StateMerged
)

func (s State) String() string {
	switch s {
	case StateExisting:
		return "existing"
	case StateNew:
		return "new"
	case StateMerged:
		return "merged"
	default:
		return "absent"
	}
}

// NameResolver returns the repository name used for a new descriptor.
type NameResolver interface {
	RemoteName(ctx context.Context, root string) (string, error)
}

// NameResolverFunc adapts a function to NameResolver.
type NameResolverFunc func(ctx context.Context, root string) (string, error)

// RemoteName calls f.
func (f NameResolverFunc) RemoteName(ctx context.Context, root string) (string, error) {
	return f(ctx, root)
}

// Opts configures a Reconciler.
type Opts struct {
	// Names resolves the repository name. Nil uses the git origin remote.
	Names NameResolver
	// Defaults fill spec.owner and friends on new descriptors.
	Defaults Defaults
	Logger   *slog.Logger
}

// Reconciler produces the catalog descriptor for a repository.
type Reconciler struct {
	names    NameResolver
	defaults Defaults
	logger   *slog.Logger
}

// NewReconciler creates a Reconciler from opts.
func NewReconciler(opts *Opts) *Reconciler {
	if opts == nil {
		opts = &Opts{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	names := opts.Names
	if names == nil {
		names = repo.NewResolver(logger)
	}

	return &Reconciler{
		names:    names,
		defaults: opts.Defaults,
		logger:   logger,
	}
}

// Resolve returns the descriptor stored under root, or a new one named after
// the repository when none exists. An existing descriptor is returned as read.
func (r *Reconciler) Resolve(ctx context.Context, root string) (*Descriptor, State, error) {
	exists, err := Exists(root)
	if err != nil {
		return nil, StateAbsent, err
	}

	if exists {
		d, err := Load(root)
		if err != nil {
			return nil, StateAbsent, fmt.Errorf("loading descriptor: %w", err)
		}

		r.logger.Debug("using existing descriptor", "path", Path(root))

		return d, StateExisting, nil
	}

	name, err := r.names.RemoteName(ctx, root)
	if err != nil {
		return nil, StateAbsent, fmt.Errorf("resolving repository name: %w", err)
	}

	if name == "" {
		r.logger.Warn("repository name is empty", "root", root)
	}

	r.logger.Debug("creating descriptor", "name", name)

	return New(name, r.defaults), StateNew, nil
}

// ResolveWithDependencies resolves the descriptor and merges names into its
// dependsOn list. The state is StateMerged when at least one name was added.
func (r *Reconciler) ResolveWithDependencies(ctx context.Context, root string, names []string) (*Descriptor, State, error) {
	d, state, err := r.Resolve(ctx, root)
	if err != nil {
		return nil, state, err
	}

	if added := MergeDependencies(d, names); added > 0 {
		r.logger.Debug("merged dependencies", "added", added)

		return d, StateMerged, nil
	}

	return d, state, nil
}
