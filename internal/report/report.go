// Package report renders scan and dependency results as tables or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/donaldgifford/metaforge/internal/project"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Opts configures rendering.
type Opts struct {
	// Root is the repository root; paths are printed relative to it.
	Root string
	// Format is "table" or "json".
	Format string
	// Writer is the output destination.
	Writer io.Writer
}

// ProjectInfo represents a project in JSON output.
type ProjectInfo struct {
	Path     string `json:"path"`
	Language string `json:"language"`
	Manifest string `json:"manifest"`
}

// DependencyInfo represents a project and its internal dependencies in JSON
// output.
type DependencyInfo struct {
	Path         string   `json:"path"`
	Language     string   `json:"language"`
	Dependencies []string `json:"dependencies"`
}

// ValidateFormat reports an error for an unknown output format.
func ValidateFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, FormatTable, FormatJSON)
	}
}

// Projects renders one row per project.
func Projects(opts *Opts, projects []project.Project) error {
	infos := make([]ProjectInfo, 0, len(projects))
	for _, p := range projects {
		infos = append(infos, ProjectInfo{
			Path:     relPath(opts.Root, p.Root),
			Language: p.Language.Name(),
			Manifest: p.Language.ManifestFileName(),
		})
	}

	if opts.Format == FormatJSON {
		return renderJSON(opts.Writer, infos)
	}

	tw := tabwriter.NewWriter(opts.Writer, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "PATH\tLANGUAGE\tMANIFEST"); err != nil {
		return err
	}

	for _, info := range infos {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Path, info.Language, info.Manifest); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// Dependencies renders the internal dependencies of each project. The table
// form prints one row per dependency, and "-" for a project without any.
func Dependencies(opts *Opts, results []project.Result) error {
	infos := make([]DependencyInfo, 0, len(results))
	for _, r := range results {
		names := make([]string, 0, len(r.Components))
		for _, c := range r.Components {
			names = append(names, c.Name)
		}

		infos = append(infos, DependencyInfo{
			Path:         relPath(opts.Root, r.Project.Root),
			Language:     r.Project.Language.Name(),
			Dependencies: names,
		})
	}

	if opts.Format == FormatJSON {
		return renderJSON(opts.Writer, infos)
	}

	tw := tabwriter.NewWriter(opts.Writer, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "PATH\tLANGUAGE\tDEPENDENCY"); err != nil {
		return err
	}

	for _, info := range infos {
		if len(info.Dependencies) == 0 {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t-\n", info.Path, info.Language); err != nil {
				return err
			}

			continue
		}

		for _, dep := range info.Dependencies {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Path, info.Language, dep); err != nil {
				return err
			}
		}
	}

	return tw.Flush()
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func relPath(root, path string) string {
	if root == "" {
		return path
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}

	return filepath.ToSlash(rel)
}
