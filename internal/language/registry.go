package language

import "regexp"

// Registry is an ordered set of languages consulted during a project scan.
type Registry struct {
	languages []Language
}

// NewRegistry creates a Registry holding langs in the given order.
func NewRegistry(langs ...Language) *Registry {
	r := &Registry{}
	for _, l := range langs {
		r.Register(l)
	}

	return r
}

// DefaultRegistry returns the built-in languages, using internal to decide
// which dependencies belong to the organisation. A nil internal uses
// DefaultInternalPattern.
func DefaultRegistry(internal *regexp.Regexp) *Registry {
	internal = internalOrDefault(internal)

	return NewRegistry(
		NewGo(internal),
		Rust{},
		NewPython(internal),
		NewNode(internal),
	)
}

// Register appends l to the registry. Nil languages are ignored.
func (r *Registry) Register(l Language) {
	if l == nil {
		return
	}

	r.languages = append(r.languages, l)
}

// Languages returns the registered languages in registration order.
func (r *Registry) Languages() []Language {
	out := make([]Language, len(r.languages))
	copy(out, r.languages)

	return out
}

// Len returns the number of registered languages.
func (r *Registry) Len() int {
	return len(r.languages)
}

// Match returns every language whose manifest file name equals fileName.
func (r *Registry) Match(fileName string) []Language {
	var matched []Language

	for _, l := range r.languages {
		if l.ManifestFileName() == fileName {
			matched = append(matched, l)
		}
	}

	return matched
}

// Lookup returns the language registered under name, compared exactly.
func (r *Registry) Lookup(name string) (Language, bool) {
	for _, l := range r.languages {
		if l.Name() == name {
			return l, true
		}
	}

	return nil, false
}
