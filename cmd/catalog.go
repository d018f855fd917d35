package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/metaforge/internal/catalog"
	"github.com/donaldgifford/metaforge/internal/project"
	"github.com/donaldgifford/metaforge/internal/repo"
)

var (
	catalogMerge bool
	catalogWrite bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print or update the repository's Backstage catalog-info.yaml",
	Long: `Read catalog-info.yaml from the repository root, or build a new descriptor
named after the origin remote when none exists, and print it as YAML.

With --merge, internal dependencies found in the repository are appended to
spec.dependsOn; existing entries are kept. With --write the result is saved
to catalog-info.yaml instead of printed.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogMerge, "merge", false, "add discovered internal dependencies to spec.dependsOn")
	catalogCmd.Flags().BoolVar(&catalogWrite, "write", false, "write catalog-info.yaml instead of printing it")
	catalogCmd.Flags().String("owner", "", "spec.owner for a new descriptor")
	catalogCmd.Flags().String("system", "", "spec.system for a new descriptor")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}

	reconciler := catalog.NewReconciler(&catalog.Opts{
		Names:    repo.NewResolver(slog.Default()),
		Defaults: env.cfg.CatalogDefaults(),
		Logger:   slog.Default(),
	})

	var names []string

	if catalogMerge {
		projects, err := env.scan(cmd)
		if err != nil {
			return err
		}

		results, err := env.dependencies(projects)
		if err != nil {
			return err
		}

		names = project.ComponentNames(results)
	}

	d, state, err := reconciler.ResolveWithDependencies(cmd.Context(), env.root, names)
	if err != nil {
		return err
	}

	if d.Metadata.Name == "" {
		env.ui.Warning("origin remote gave an empty repository name")
	}

	if !catalogWrite {
		env.ui.Infof("%s descriptor", state)

		return catalog.Encode(cmd.OutOrStdout(), d)
	}

	if err := catalog.Write(env.root, d); err != nil {
		return fmt.Errorf("saving descriptor: %w", err)
	}

	env.ui.Successf("wrote %s (%s)", catalog.Path(env.root), state)

	return nil
}
