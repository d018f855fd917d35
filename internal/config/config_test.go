package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/metaforge/internal/config"
	"github.com/donaldgifford/metaforge/internal/language"
)

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, ".git", cfg.Marker)
	assert.Equal(t, language.DefaultInternalPattern, cfg.InternalPattern)
	assert.Equal(t, []string{".git", "node_modules", "vendor", "target"}, cfg.SkipDirs)
	assert.Equal(t, "abort", cfg.ScanPolicy)
	assert.Equal(t, "test", cfg.Catalog.Owner)
	assert.Equal(t, "experimental", cfg.Catalog.Lifecycle)
	assert.Equal(t, "service", cfg.Catalog.Type)
	assert.Equal(t, "a_system", cfg.Catalog.System)
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	content := `
internal_pattern: 'github\.com/acme/.*'
skip_dirs:
  - .git
  - third_party
scan_policy: continue
catalog:
  owner: platform-team
  system: payments
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	cfg, err := config.Load(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, `github\.com/acme/.*`, cfg.InternalPattern)
	assert.Equal(t, []string{".git", "third_party"}, cfg.SkipDirs)
	assert.Equal(t, "continue", cfg.ScanPolicy)
	assert.Equal(t, "platform-team", cfg.Catalog.Owner)
	assert.Equal(t, "payments", cfg.Catalog.System)
	// Untouched keys keep their defaults.
	assert.Equal(t, "experimental", cfg.Catalog.Lifecycle)
	assert.Equal(t, ".git", cfg.Marker)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("/nonexistent/metaforge/config.yaml", nil)
	require.NoError(t, err)
	assert.Equal(t, "abort", cfg.ScanPolicy)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{{invalid"), 0o644))

	_, err := config.Load(cfgPath, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoad_ValidationError(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("scan_policy: sometimes\n"), 0o644))

	_, err := config.Load(cfgPath, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan_policy")
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("METAFORGE_SCAN_POLICY", "continue")
	t.Setenv("METAFORGE_CATALOG_OWNER", "env-team")

	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "continue", cfg.ScanPolicy)
	assert.Equal(t, "env-team", cfg.Catalog.Owner)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("catalog:\n  owner: file-team\n"), 0o644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("owner", "", "")
	flags.String("scan-policy", "", "")
	require.NoError(t, flags.Parse([]string{"--owner", "flag-team"}))

	cfg, err := config.Load(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, "flag-team", cfg.Catalog.Owner)
	// Unset flags do not shadow defaults.
	assert.Equal(t, "abort", cfg.ScanPolicy)
}

func TestCatalogDefaults(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Catalog: config.CatalogConfig{
		Owner:     "team",
		Lifecycle: "production",
		Type:      "library",
		System:    "core",
	}}

	d := cfg.CatalogDefaults()
	assert.Equal(t, "team", d.Owner)
	assert.Equal(t, "production", d.Lifecycle)
	assert.Equal(t, "library", d.Type)
	assert.Equal(t, "core", d.System)
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	assert.Equal(t, "/custom/config/metaforge", config.DefaultConfigDir())
	assert.Equal(t, "/custom/config/metaforge/config.yaml", config.DefaultConfigPath())
}
