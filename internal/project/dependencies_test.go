package project_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/metaforge/internal/language"
	"github.com/donaldgifford/metaforge/internal/project"
)

type stubLanguage struct {
	components []language.Component
	err        error
}

func (s stubLanguage) Name() string             { return "Stub" }
func (s stubLanguage) ManifestFileName() string { return "stub.manifest" }

func (s stubLanguage) InternalDependencies(_ string) ([]language.Component, error) {
	return s.components, s.err
}

func TestDependencies_GoScenario(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"go.mod": "module x\n\nrequire (\n\tbitbucket.org/bxbdigital/pkg v1.0.0\n\tgithub.com/external/pkg v2.0.0\n)\n",
	})

	projects, err := project.NewScanner(nil).Scan(t.Context(), root)
	require.NoError(t, err)
	require.Len(t, projects, 1)

	deps, err := project.Dependencies(projects[0])
	require.NoError(t, err)
	assert.Equal(t, []language.Component{{Name: "bitbucket.org/bxbdigital/pkg"}}, deps)
}

func TestDependencies_CargoScenario(t *testing.T) {
	t.Parallel()

	root := writeTree(t, map[string]string{
		"Cargo.toml": "[package]\nname = \"x\"\n\n[dependencies]\nserde = \"1\"\n",
	})

	projects, err := project.NewScanner(nil).Scan(t.Context(), root)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Rust", projects[0].Language.Name())

	deps, err := project.Dependencies(projects[0])
	require.NoError(t, err)
	assert.Empty(t, deps)
}

func TestDependencies_WrapsError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	p := project.Project{Root: "/repo/svc", Language: stubLanguage{err: cause}}

	_, err := project.Dependencies(p)
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "Stub")
	assert.Contains(t, err.Error(), "/repo/svc")
}

func TestDependenciesAll(t *testing.T) {
	t.Parallel()

	good := project.Project{Root: "/a", Language: stubLanguage{components: []language.Component{{Name: "one"}, {Name: "two"}}}}
	bad := project.Project{Root: "/b", Language: stubLanguage{err: errors.New("unreadable")}}
	more := project.Project{Root: "/c", Language: stubLanguage{components: []language.Component{{Name: "one"}}}}

	t.Run("abort", func(t *testing.T) {
		t.Parallel()

		results, err := project.DependenciesAll([]project.Project{good, bad, more}, project.PolicyAbort)
		require.Error(t, err)
		assert.Nil(t, results)
	})

	t.Run("continue", func(t *testing.T) {
		t.Parallel()

		results, err := project.DependenciesAll([]project.Project{good, bad, more}, project.PolicyContinue)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unreadable")
		require.Len(t, results, 2)
		assert.Equal(t, []string{"one", "two", "one"}, project.ComponentNames(results))
	})

	t.Run("no failures", func(t *testing.T) {
		t.Parallel()

		results, err := project.DependenciesAll([]project.Project{good}, project.PolicyAbort)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "/a", results[0].Project.Root)
	})
}

func TestComponentNames_Empty(t *testing.T) {
	t.Parallel()

	names := project.ComponentNames(nil)
	assert.NotNil(t, names)
	assert.Empty(t, names)
}
