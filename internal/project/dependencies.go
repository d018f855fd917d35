package project

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/donaldgifford/metaforge/internal/language"
)

// Dependencies returns the internal dependencies declared in p's manifest.
func Dependencies(p Project) ([]language.Component, error) {
	components, err := p.Language.InternalDependencies(p.Root)
	if err != nil {
		return nil, fmt.Errorf("extracting %s dependencies for %s: %w", p.Language.Name(), p.Root, err)
	}

	return components, nil
}

// Result pairs a project with its extracted internal dependencies.
type Result struct {
	Project    Project
	Components []language.Component
}

// DependenciesAll extracts dependencies for every project in order. Under
// PolicyAbort the first failure is returned with no results; under
// PolicyContinue failing projects are left out and their errors combined.
func DependenciesAll(projects []Project, policy Policy) ([]Result, error) {
	results := make([]Result, 0, len(projects))

	var failed *multierror.Error

	for _, p := range projects {
		components, err := Dependencies(p)
		if err != nil {
			if policy == PolicyAbort {
				return nil, err
			}

			failed = multierror.Append(failed, err)

			continue
		}

		results = append(results, Result{Project: p, Components: components})
	}

	return results, failed.ErrorOrNil()
}

// ComponentNames flattens results into the dependency names in first-seen
// order. Duplicates are kept.
func ComponentNames(results []Result) []string {
	names := []string{}

	for _, r := range results {
		for _, c := range r.Components {
			names = append(names, c.Name)
		}
	}

	return names
}
