// Package config provides the YAML-backed configuration model for the
// semantic pipeline: per-compiler filter rules, source-directory filters,
// and path-formatting policy. Structured after the teacher's
// internal/scenario model (struct + per-type Validate() returning wrapped
// errors).
package config

import (
	"fmt"
)

// Config is the top-level pipeline configuration loaded from YAML.
type Config struct {
	Compilers  []CompilerRule  `yaml:"compilers,omitempty"`
	SourceDirs SourceFilter    `yaml:"source_filter,omitempty"`
	Format     PathFormat      `yaml:"format,omitempty"`
	Dedup      DedupConfig     `yaml:"dedup,omitempty"`
	Output     OutputConfig    `yaml:"output,omitempty"`
	EnvFilter  EnvFilterConfig `yaml:"env_filter,omitempty"`
}

// Validate checks the whole configuration, delegating to each section.
func (c *Config) Validate() error {
	if err := ValidateCompilerRules(c.Compilers); err != nil {
		return fmt.Errorf("compilers: %w", err)
	}
	if err := c.SourceDirs.Validate(); err != nil {
		return fmt.Errorf("source_filter: %w", err)
	}
	if err := c.Format.Validate(); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	return nil
}

// DedupConfig controls which Entry fields participate in deduplication.
type DedupConfig struct {
	Keys []string `yaml:"keys,omitempty"` // subset of "file","directory","arguments","output"
}

// OutputConfig controls the final compilation-database write.
type OutputConfig struct {
	Path        string `yaml:"path"`
	Append      bool   `yaml:"append,omitempty"`
	CommandForm bool   `yaml:"command_form,omitempty"`
}

// EnvFilterConfig lists environment variable name patterns whose values
// get redacted in captured Events rather than reported verbatim.
type EnvFilterConfig struct {
	Deny []string `yaml:"deny,omitempty"` // path.Match glob patterns, e.g. "AWS_*", "*_TOKEN"
}
