package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load parses a Config from r with strict field validation (unknown YAML
// keys are rejected) and runs Validate() on the result.
func Load(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		if err == io.EOF {
			return &Config{}, nil // an absent/empty config means "use defaults"
		}
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: invalid: %w", err)
	}
	return &cfg, nil
}

// LoadFile loads a Config from path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the CLI flag, expected behavior
	if err != nil {
		return nil, fmt.Errorf("config: open: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file close

	return Load(f)
}
