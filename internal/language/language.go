// Package language describes the manifest-based languages metaforge
// understands and extracts internal dependencies from their manifests.
//
// Each Language knows the file name of its manifest and how to pull
// same-organisation dependencies out of it. New languages are supported by
// adding one more Language to a Registry; the scanner never needs to change.
package language

import (
	"errors"
	"fmt"
	"regexp"
)

// DefaultInternalPattern matches module and repository sources hosted under
// the organisation's private Bitbucket workspace.
const DefaultInternalPattern = `.*bitbucket\.org[/:]bxbdigital/.*`

var (
	// ErrManifestRead is returned when a manifest file cannot be read.
	ErrManifestRead = errors.New("reading manifest")

	// ErrManifestParse is returned when a structured manifest cannot be decoded.
	ErrManifestParse = errors.New("parsing manifest")
)

// Component is a reference to an internal dependency found in a manifest.
type Component struct {
	Name string `json:"name" yaml:"name"`
}

// Language is a manifest-based language that metaforge can extract internal
// dependencies from. Implementations are stateless after construction.
type Language interface {
	// Name is the human-readable language name.
	Name() string

	// ManifestFileName is the exact file name that marks a project root.
	ManifestFileName() string

	// InternalDependencies reads the manifest inside projectRoot and returns
	// the internal dependencies it declares, in first-seen order.
	InternalDependencies(projectRoot string) ([]Component, error)
}

// ExtractError describes a failed dependency extraction for one manifest.
type ExtractError struct {
	Language string
	Path     string
	Kind     error
	Err      error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", e.Language, e.Kind, e.Path, e.Err)
}

// Is reports whether target is the error kind of e.
func (e *ExtractError) Is(target error) bool {
	return target == e.Kind
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

func readError(lang Language, path string, err error) error {
	return &ExtractError{Language: lang.Name(), Path: path, Kind: ErrManifestRead, Err: err}
}

func parseError(lang Language, path string, err error) error {
	return &ExtractError{Language: lang.Name(), Path: path, Kind: ErrManifestParse, Err: err}
}

// internalOrDefault returns internal, or the compiled DefaultInternalPattern when nil.
func internalOrDefault(internal *regexp.Regexp) *regexp.Regexp {
	if internal != nil {
		return internal
	}

	return regexp.MustCompile(DefaultInternalPattern)
}
