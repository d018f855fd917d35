package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/metaforge/internal/report"
)

var projectsOutputFormat string

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the projects in the repository",
	Long: `List every project found under the repository root. A project is a
directory holding a recognised manifest file; a directory with two manifests
is listed once per language.`,
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runProjects,
}

func init() {
	projectsCmd.Flags().StringVarP(&projectsOutputFormat, "output", "o", report.FormatTable, "output format (table, json)")
	rootCmd.AddCommand(projectsCmd)
}

func runProjects(cmd *cobra.Command, _ []string) error {
	if err := report.ValidateFormat(projectsOutputFormat); err != nil {
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

	return report.Projects(&report.Opts{
		Root:   env.root,
		Format: projectsOutputFormat,
		Writer: cmd.OutOrStdout(),
	}, projects)
}
