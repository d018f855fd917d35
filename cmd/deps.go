package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/metaforge/internal/report"
)

var depsOutputFormat string

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "List internal dependencies of each project",
	Long: `Scan the repository and print, for each project, the dependencies whose
source matches the internal pattern (by default the bitbucket.org/bxbdigital
organisation). Dependencies are listed in manifest order without deduplication.`,
	Args: cobra.NoArgs,
	RunE: runDeps,
}

func init() {
	depsCmd.Flags().StringVarP(&depsOutputFormat, "output", "o", report.FormatTable, "output format (table, json)")
	rootCmd.AddCommand(depsCmd)
}

func runDeps(cmd *cobra.Command, _ []string) error {
	if err := report.ValidateFormat(depsOutputFormat); err != nil {
		return err
	}

	env, err := setup(cmd)
	if err != nil {
		return err
	}

	projects, err := env.scan(cmd)
	if err != nil {
		return err
	}

	results, err := env.dependencies(projects)
	if err != nil {
		return err
	}

	return report.Dependencies(&report.Opts{
		Root:   env.root,
		Format: depsOutputFormat,
		Writer: cmd.OutOrStdout(),
	}, results)
}
