package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Load reads a TOML configuration file over the defaults and validates the
// result. A failed validation is fatal to startup: the host must not serve
// requests with an invalid policy configuration.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %q: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}
