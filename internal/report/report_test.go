package report_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/metaforge/internal/language"
	"github.com/donaldgifford/metaforge/internal/project"
	"github.com/donaldgifford/metaforge/internal/report"
)

var root = filepath.FromSlash("/work/repo")

func sampleProjects() []project.Project {
	return []project.Project{
		{Root: root, Language: language.NewGo(nil)},
		{Root: filepath.Join(root, "tools", "cli"), Language: language.Rust{}},
	}
}

func sampleResults() []project.Result {
	p := sampleProjects()

	return []project.Result{
		{Project: p[0], Components: []language.Component{
			{Name: "bitbucket.org/bxbdigital/pkg"},
			{Name: "bitbucket.org/bxbdigital/auth"},
		}},
		{Project: p[1], Components: []language.Component{}},
	}
}

func TestProjects_Table(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := report.Projects(&report.Opts{Root: root, Format: report.FormatTable, Writer: &buf}, sampleProjects())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"PATH", "LANGUAGE", "MANIFEST"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{".", "Go", "go.mod"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"tools/cli", "Rust", "Cargo.toml"}, strings.Fields(lines[2]))
}

func TestProjects_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := report.Projects(&report.Opts{Root: root, Format: report.FormatJSON, Writer: &buf}, sampleProjects())
	require.NoError(t, err)

	var infos []report.ProjectInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &infos))
	assert.Equal(t, []report.ProjectInfo{
		{Path: ".", Language: "Go", Manifest: "go.mod"},
		{Path: "tools/cli", Language: "Rust", Manifest: "Cargo.toml"},
	}, infos)
}

func TestProjects_EmptyJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, report.Projects(&report.Opts{Format: report.FormatJSON, Writer: &buf}, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestDependencies_Table(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := report.Dependencies(&report.Opts{Root: root, Format: report.FormatTable, Writer: &buf}, sampleResults())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"PATH", "LANGUAGE", "DEPENDENCY"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{".", "Go", "bitbucket.org/bxbdigital/pkg"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{".", "Go", "bitbucket.org/bxbdigital/auth"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"tools/cli", "Rust", "-"}, strings.Fields(lines[3]))
}

func TestDependencies_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := report.Dependencies(&report.Opts{Root: root, Format: report.FormatJSON, Writer: &buf}, sampleResults())
	require.NoError(t, err)

	var infos []report.DependencyInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &infos))
	require.Len(t, infos, 2)
	assert.Equal(t, []string{"bitbucket.org/bxbdigital/pkg", "bitbucket.org/bxbdigital/auth"}, infos[0].Dependencies)
	assert.Empty(t, infos[1].Dependencies)
	assert.Contains(t, buf.String(), `"dependencies": []`)
}

func TestValidateFormat(t *testing.T) {
	t.Parallel()

	require.NoError(t, report.ValidateFormat("table"))
	require.NoError(t, report.ValidateFormat("json"))
	require.Error(t, report.ValidateFormat("xml"))
}
