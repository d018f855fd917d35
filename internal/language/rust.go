package language

// Rust recognises Cargo.toml projects. Dependency extraction is not modelled
// yet, so every Rust project reports no internal dependencies.
type Rust struct{}

// Name returns "Rust".
func (Rust) Name() string { return "Rust" }

// ManifestFileName returns "Cargo.toml".
func (Rust) ManifestFileName() string { return "Cargo.toml" }

// InternalDependencies always returns an empty list without reading the manifest.
func (Rust) InternalDependencies(_ string) ([]Component, error) {
	return []Component{}, nil
}
