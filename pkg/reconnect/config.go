package reconnect

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the reconnect policy tuning knobs.
type Config struct {
	// MaxAttempts is the consecutive-failure budget before giving up.
	MaxAttempts int `yaml:"max_attempts" env:"MAX_ATTEMPTS"`

	// BaseIntervalMS is the first retry delay in milliseconds; each further
	// attempt doubles it up to the exponent cap.
	BaseIntervalMS int `yaml:"base_interval_ms" env:"BASE_INTERVAL_MS"`
}

// DefaultConfig returns the defaults: 5 attempts from a 3s base interval.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:    5,
		BaseIntervalMS: 3000,
	}
}

// BaseInterval returns the base delay as a duration.
func (c Config) BaseInterval() time.Duration {
	return time.Duration(c.BaseIntervalMS) * time.Millisecond
}

// Validate checks the configured values.
func (c Config) Validate() error {
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1, got %d", c.MaxAttempts)
	}
	if c.BaseIntervalMS <= 0 {
		return fmt.Errorf("base_interval_ms must be > 0, got %d", c.BaseIntervalMS)
	}
	return nil
}

// LoadConfig builds a Config from defaults, an optional YAML file, and
// LATTICE_RECONNECT_* environment variables, in that precedence order.
// An empty path skips the file step.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read reconnect config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse reconnect config: %w", err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "LATTICE_RECONNECT_"}); err != nil {
		return Config{}, fmt.Errorf("failed to apply env overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
