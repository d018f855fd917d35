package language

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"

	"github.com/tidwall/gjson"
)

// nodeDependencySections are the package.json objects that declare dependencies.
var nodeDependencySections = []string{
	"dependencies",
	"devDependencies",
	"peerDependencies",
	"optionalDependencies",
}

var errInvalidJSON = errors.New("invalid JSON")

// Node extracts internal git dependencies from package.json.
type Node struct {
	internal *regexp.Regexp
}

// NewNode creates the Node language. A nil internal uses DefaultInternalPattern.
func NewNode(internal *regexp.Regexp) *Node {
	return &Node{internal: internalOrDefault(internal)}
}

// Name returns "Node".
func (n *Node) Name() string { return "Node" }

// ManifestFileName returns "package.json".
func (n *Node) ManifestFileName() string { return "package.json" }

// InternalDependencies returns dependencies whose version spec is a git
// source hosted internally. Sections are read in nodeDependencySections
// order, entries in document order.
func (n *Node) InternalDependencies(projectRoot string) ([]Component, error) {
	path := filepath.Join(projectRoot, n.ManifestFileName())

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, readError(n, path, err)
	}

	if !gjson.ValidBytes(data) {
		return nil, parseError(n, path, errInvalidJSON)
	}

	components := []Component{}

	for _, section := range nodeDependencySections {
		gjson.GetBytes(data, section).ForEach(func(_, value gjson.Result) bool {
			spec := value.String()
			if n.internal.MatchString(spec) || n.internal.MatchString(sourcePath(spec)) {
				components = append(components, Component{Name: sourcePath(spec)})
			}

			return true
		})
	}

	return components, nil
}
