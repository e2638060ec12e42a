package partita

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the configuration for the Planner.
type Config struct {
	// Transitions are the cluster transitions to process, in order. The i-th
	// transition is paired with the i-th cluster of the item source; extra
	// transitions without a matching cluster are skipped.
	Transitions []string `yaml:"transitions"`

	// Concurrency is the maximum number of transitions processed in
	// parallel. Each transition is an independent pure computation, so
	// parallelism only affects wall time, never output.
	Concurrency int `yaml:"concurrency"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Transitions: []string{"1to2", "2to3", "3to4"},
		Concurrency: 4,
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: ErrInvalidConfig (wrapped with detail) if any field is invalid
func (c *Config) Validate() error {
	if len(c.Transitions) == 0 {
		return fmt.Errorf("%w: at least one transition is required", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Transitions))
	for _, tr := range c.Transitions {
		if tr == "" {
			return fmt.Errorf("%w: empty transition name", ErrInvalidConfig)
		}
		if seen[tr] {
			return fmt.Errorf("%w: duplicate transition %q", ErrInvalidConfig, tr)
		}
		seen[tr] = true
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("%w: concurrency must be positive, got %d", ErrInvalidConfig, c.Concurrency)
	}

	return nil
}

// LoadConfig reads a YAML config file into a Config, applying defaults for
// absent fields.
//
// Parameters:
//   - path: YAML file path
//
// Returns:
//   - Config: Parsed configuration
//   - error: Read, parse, or validation error
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
