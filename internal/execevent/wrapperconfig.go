package execevent

import (
	"encoding/json"
	"fmt"
	"os"
)

// WrapperConfigFilename is the fixed name of the wrapper manifest written
// into every wrapper directory, matching the original Bear implementation's
// CONFIG_FILENAME constant exactly.
const WrapperConfigFilename = "wrappers.cfg"

// WrapperConfig maps a shimmed command's basename to the real executable it
// shadows, serialized as {"executables": {...}}. EnvDenyPatterns travels
// alongside it so a shim invoked as a separate process still knows which
// environment variable names to redact before reporting its Event, without
// needing its own copy of the pipeline configuration.
type WrapperConfig struct {
	Executables     map[string]string `json:"executables"`
	EnvDenyPatterns []string          `json:"env_deny_patterns,omitempty"`
}

// WriteWrapperConfig writes cfg to path, pretty-printed, via the standard
// atomic temp-then-rename sequence.
func WriteWrapperConfig(path string, cfg WrapperConfig) error {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("execevent: marshal wrapper config: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0644); err != nil { //nolint:gosec // shim config, not a secret
		return fmt.Errorf("execevent: write wrapper config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) //nolint:errcheck // best effort cleanup
		return fmt.Errorf("execevent: rename wrapper config: %w", err)
	}
	return nil
}

// ReadWrapperConfig loads a wrapper manifest previously written by
// WriteWrapperConfig.
func ReadWrapperConfig(path string) (WrapperConfig, error) {
	b, err := os.ReadFile(path) //nolint:gosec // path supplied by wrapper shim at startup
	if err != nil {
		return WrapperConfig{}, fmt.Errorf("execevent: read wrapper config: %w", err)
	}
	var cfg WrapperConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return WrapperConfig{}, fmt.Errorf("execevent: parse wrapper config: %w", err)
	}
	if cfg.Executables == nil {
		cfg.Executables = map[string]string{}
	}
	return cfg, nil
}
