// Package catalog reads, builds and writes Backstage catalog-info.yaml
// descriptors for a repository.
package catalog

import "fmt"

// FileName is the descriptor file looked up at the repository root.
const FileName = "catalog-info.yaml"

const (
	// APIVersion is the Backstage schema version of new descriptors.
	APIVersion = "backstage.io/v1alpha1"
	// KindComponent is the entity kind of new descriptors.
	KindComponent = "Component"
)

// Descriptor is a Backstage catalog entity.
type Descriptor struct {
	APIVersion string   `yaml:"apiVersion"`
	Kind       string   `yaml:"kind"`
	Metadata   Metadata `yaml:"metadata"`
	Spec       Spec     `yaml:"spec"`
}

// Metadata identifies the entity.
type Metadata struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Annotations map[string]string `yaml:"annotations"`
	Tags        map[string]string `yaml:"tags"`
	Links       []Link            `yaml:"links"`
}

// Link is an external reference shown on the entity page.
type Link struct {
	Icon  *string `yaml:"icon,omitempty"`
	Title string  `yaml:"title"`
	URL   string  `yaml:"url"`
}

// Spec holds the component fields and its declared dependencies.
type Spec struct {
	Lifecycle string   `yaml:"lifecycle"`
	Owner     string   `yaml:"owner"`
	Type      string   `yaml:"type"`
	System    *string  `yaml:"system,omitempty"`
	DependsOn []string `yaml:"dependsOn"`
}

// Defaults are the spec.* values given to a freshly created descriptor.
type Defaults struct {
	Owner     string
	Lifecycle string
	Type      string
	System    string
}

// DefaultSpec returns the built-in spec defaults.
func DefaultSpec() Defaults {
	return Defaults{
		Owner:     "test",
		Lifecycle: "experimental",
		Type:      "service",
		System:    "a_system",
	}
}

// New builds the initial descriptor for a repository called name. Empty
// fields in defaults fall back to DefaultSpec.
func New(name string, defaults Defaults) *Descriptor {
	defaults = defaults.withFallback(DefaultSpec())
	system := defaults.System

	return &Descriptor{
		APIVersion: APIVersion,
		Kind:       KindComponent,
		Metadata: Metadata{
			Name:        name,
			Description: fmt.Sprintf("A Backstage catalog info file for the %s repository", name),
			Annotations: map[string]string{},
			Tags:        map[string]string{},
			Links:       []Link{},
		},
		Spec: Spec{
			Lifecycle: defaults.Lifecycle,
			Owner:     defaults.Owner,
			Type:      defaults.Type,
			System:    &system,
			DependsOn: []string{},
		},
	}
}

func (d Defaults) withFallback(fb Defaults) Defaults {
	if d.Owner == "" {
		d.Owner = fb.Owner
	}

	if d.Lifecycle == "" {
		d.Lifecycle = fb.Lifecycle
	}

	if d.Type == "" {
		d.Type = fb.Type
	}

	if d.System == "" {
		d.System = fb.System
	}

	return d
}
