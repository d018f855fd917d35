// Package config loads metaforge settings from a config file, METAFORGE_*
// environment variables, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/donaldgifford/metaforge/internal/catalog"
	"github.com/donaldgifford/metaforge/internal/language"
)

const (
	envPrefix      = "METAFORGE"
	configFileName = "config.yaml"
)

// Config holds the settings used by a metaforge run.
type Config struct {
	// Marker is the directory name that identifies a repository root.
	Marker string `mapstructure:"marker"`
	// InternalPattern matches dependency sources owned by the organisation.
	InternalPattern string `mapstructure:"internal_pattern"`
	// SkipDirs are directory names pruned from the project scan.
	SkipDirs []string `mapstructure:"skip_dirs"`
	// ScanPolicy is "abort" or "continue".
	ScanPolicy string `mapstructure:"scan_policy"`
	// Catalog holds defaults for newly synthesized catalog descriptors.
	Catalog CatalogConfig `mapstructure:"catalog"`
}

// CatalogConfig holds the spec.* fields written into new descriptors.
type CatalogConfig struct {
	Owner     string `mapstructure:"owner"`
	Lifecycle string `mapstructure:"lifecycle"`
	Type      string `mapstructure:"type"`
	System    string `mapstructure:"system"`
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"marker":           "marker",
	"internal-pattern": "internal_pattern",
	"skip-dir":         "skip_dirs",
	"scan-policy":      "scan_policy",
	"owner":            "catalog.owner",
	"system":           "catalog.system",
}

// DefaultConfigDir returns the default configuration directory, respecting XDG_CONFIG_HOME.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "metaforge")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "metaforge")
	}

	return filepath.Join(home, ".config", "metaforge")
}

// DefaultConfigPath returns the path of the user config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), configFileName)
}

// Load builds a Config from defaults, the YAML file at path, the environment,
// and any recognised flags in flags. A missing config file is not an error.
// Either path or flags may be empty/nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}

			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag --%s: %w", name, err)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// CatalogDefaults converts the catalog section into descriptor defaults.
func (c *Config) CatalogDefaults() catalog.Defaults {
	return catalog.Defaults{
		Owner:     c.Catalog.Owner,
		Lifecycle: c.Catalog.Lifecycle,
		Type:      c.Catalog.Type,
		System:    c.Catalog.System,
	}
}

func setDefaults(v *viper.Viper) {
	spec := catalog.DefaultSpec()

	v.SetDefault("marker", ".git")
	v.SetDefault("internal_pattern", language.DefaultInternalPattern)
	v.SetDefault("skip_dirs", []string{".git", "node_modules", "vendor", "target"})
	v.SetDefault("scan_policy", "abort")
	v.SetDefault("catalog.owner", spec.Owner)
	v.SetDefault("catalog.lifecycle", spec.Lifecycle)
	v.SetDefault("catalog.type", spec.Type)
	v.SetDefault("catalog.system", spec.System)
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}

	return errors.Is(err, fs.ErrNotExist)
}
