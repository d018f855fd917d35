package language

import (
	"os"
	"path/filepath"
	"regexp"
)

var (
	// goRequireBlock matches a parenthesised require block, possibly spanning lines.
	goRequireBlock = regexp.MustCompile(`require \((?:.*\n)*?\)`)

	// goRequireLine captures the module path of a tab-indented require line.
	goRequireLine = regexp.MustCompile(`\t(.+?) (.+)\n`)
)

// Go extracts internal modules from the require blocks of go.mod.
type Go struct {
	internal *regexp.Regexp
}

// NewGo creates the Go language. A nil internal uses DefaultInternalPattern.
func NewGo(internal *regexp.Regexp) *Go {
	return &Go{internal: internalOrDefault(internal)}
}

// Name returns "Go".
func (g *Go) Name() string { return "Go" }

// ManifestFileName returns "go.mod".
func (g *Go) ManifestFileName() string { return "go.mod" }

// InternalDependencies returns the internal modules required in go.mod.
// Only parenthesised require blocks are considered and duplicates are kept.
func (g *Go) InternalDependencies(projectRoot string) ([]Component, error) {
	path := filepath.Join(projectRoot, g.ManifestFileName())

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, readError(g, path, err)
	}

	components := []Component{}

	for _, block := range goRequireBlock.FindAllString(string(data), -1) {
		for _, line := range goRequireLine.FindAllStringSubmatch(block, -1) {
			module := line[1]
			if g.internal.MatchString(module) {
				components = append(components, Component{Name: module})
			}
		}
	}

	return components, nil
}
