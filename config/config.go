package config

import (
	"fmt"
	"log/slog"
	"time"
)

// Config is the process-lifetime configuration of the host. It is loaded
// and validated once at startup and never mutated afterwards, so it may be
// read concurrently without synchronization.
type Config struct {
	Server Server `toml:"server"`
	Log    Log    `toml:"log"`

	// Policies is the security header policy configuration. Keys are
	// policy names; each value is false, true, or a policy-specific
	// options table. The shape is validated by policy.Resolve.
	Policies map[string]any `toml:"policies"`
}

type Server struct {
	Addr                    string   `toml:"addr"`
	ReadTimeout             Duration `toml:"read_timeout"`
	ReadHeaderTimeout       Duration `toml:"read_header_timeout"`
	WriteTimeout            Duration `toml:"write_timeout"`
	IdleTimeout             Duration `toml:"idle_timeout"`
	ShutdownGracefulTimeout Duration `toml:"shutdown_graceful_timeout"`
}

type Log struct {
	Level LogLevel `toml:"level"`
}

// Duration wraps time.Duration so TOML fields accept values like "15s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// LogLevel wraps slog.Level; the embedded level already implements
// encoding.TextUnmarshaler for values like "INFO" and "DEBUG".
type LogLevel struct {
	slog.Level
}
