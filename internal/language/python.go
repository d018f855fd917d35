package language

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// pyproject is the subset of pyproject.toml that declares dependencies.
type pyproject struct {
	Project struct {
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
}

// Python extracts internal direct references from pyproject.toml.
type Python struct {
	internal *regexp.Regexp
}

// NewPython creates the Python language. A nil internal uses DefaultInternalPattern.
func NewPython(internal *regexp.Regexp) *Python {
	return &Python{internal: internalOrDefault(internal)}
}

// Name returns "Python".
func (p *Python) Name() string { return "Python" }

// ManifestFileName returns "pyproject.toml".
func (p *Python) ManifestFileName() string { return "pyproject.toml" }

// InternalDependencies returns PEP 508 direct references ("name @ url") whose
// URL points at an internal repository. Required dependencies come first,
// followed by optional groups in name order.
func (p *Python) InternalDependencies(projectRoot string) ([]Component, error) {
	path := filepath.Join(projectRoot, p.ManifestFileName())

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, readError(p, path, err)
	}

	var manifest pyproject
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, parseError(p, path, err)
	}

	components := []Component{}
	components = p.collect(components, manifest.Project.Dependencies)

	groups := make([]string, 0, len(manifest.Project.OptionalDependencies))
	for group := range manifest.Project.OptionalDependencies {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	for _, group := range groups {
		components = p.collect(components, manifest.Project.OptionalDependencies[group])
	}

	return components, nil
}

func (p *Python) collect(components []Component, requirements []string) []Component {
	for _, req := range requirements {
		_, url, ok := strings.Cut(req, "@")
		if !ok {
			continue
		}

		// Environment markers follow the URL after a semicolon.
		url, _, _ = strings.Cut(url, ";")
		url = strings.TrimSpace(url)

		if url != "" && p.internal.MatchString(url) {
			components = append(components, Component{Name: sourcePath(url)})
		}
	}

	return components
}
