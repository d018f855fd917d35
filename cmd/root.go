// Package cmd defines the CLI commands for metaforge.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/metaforge/internal/ui"
)

var (
	verbose  bool
	noColor  bool
	cfgFile  string
	startDir string
)

// rootCmd is the base command for the metaforge CLI.
var rootCmd = &cobra.Command{
	Use:   "metaforge",
	Short: "Discover projects and internal dependencies in a repository",
	Long: `Metaforge finds the root of the current git repository, lists the
projects inside it (one per go.mod, Cargo.toml, pyproject.toml or package.json),
extracts each project's dependencies on other repositories of the organisation,
and keeps the repository's Backstage catalog-info.yaml in step with them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		initLogger()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// PrintError reports a command failure on stderr.
func PrintError(err error) {
	ui.NewWriter(noColor).Err(err)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/metaforge/config.yaml)")
	pf.StringVarP(&startDir, "dir", "C", "", "directory to start the repository search from (default is the working directory)")

	pf.String("marker", ".git", "directory name that marks the repository root")
	pf.String("internal-pattern", "", "regular expression matching the organisation's dependency sources")
	pf.StringSlice("skip-dir", nil, "directory name to leave out of the scan (repeatable)")
	pf.String("scan-policy", "", "what to do with unreadable entries (abort, continue)")
}

func initLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
