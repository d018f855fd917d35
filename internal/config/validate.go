package config

import (
	"fmt"
	"regexp"
	"strings"
)

// validScanPolicies are the allowed values for scan_policy.
var validScanPolicies = map[string]bool{
	"abort":    true,
	"continue": true,
}

// Validate checks a Config for required fields and valid values.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Marker) == "" {
		return fmt.Errorf("marker is required")
	}

	if strings.ContainsAny(cfg.Marker, `/\`) {
		return fmt.Errorf("invalid marker %q, must be a single directory name", cfg.Marker)
	}

	if !validScanPolicies[cfg.ScanPolicy] {
		return fmt.Errorf("invalid scan_policy %q, must be one of: abort, continue", cfg.ScanPolicy)
	}

	if _, err := cfg.InternalRegexp(); err != nil {
		return err
	}

	for i, dir := range cfg.SkipDirs {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("skip_dirs[%d]: directory name is required", i)
		}
	}

	return nil
}

// InternalRegexp compiles InternalPattern.
func (c *Config) InternalRegexp() (*regexp.Regexp, error) {
	if strings.TrimSpace(c.InternalPattern) == "" {
		return nil, fmt.Errorf("internal_pattern is required")
	}

	re, err := regexp.Compile(c.InternalPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid internal_pattern %q: %w", c.InternalPattern, err)
	}

	return re, nil
}
