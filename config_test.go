package partita

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	require.Equal(t, []string{"1to2", "2to3", "3to4"}, cfg.Transitions)
	require.Equal(t, 4, cfg.Concurrency)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{name: "default is valid", modify: func(*Config) {}, valid: true},
		{name: "no transitions", modify: func(c *Config) { c.Transitions = nil }, valid: false},
		{name: "empty transition name", modify: func(c *Config) { c.Transitions = []string{"1to2", ""} }, valid: false},
		{name: "duplicate transition", modify: func(c *Config) { c.Transitions = []string{"1to2", "1to2"} }, valid: false},
		{name: "zero concurrency", modify: func(c *Config) { c.Concurrency = 0 }, valid: false},
		{name: "negative concurrency", modify: func(c *Config) { c.Concurrency = -1 }, valid: false},
		{name: "single transition", modify: func(c *Config) { c.Transitions = []string{"1to2"} }, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("parses yaml and applies defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("transitions: [1to2, 2to3]\n"), 0o644))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		require.Equal(t, []string{"1to2", "2to3"}, cfg.Transitions)
		require.Equal(t, 4, cfg.Concurrency, "unset fields keep defaults")
	})

	t.Run("rejects invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("transitions: [unclosed\n"), 0o644))

		_, err := LoadConfig(path)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("concurrency: -3\n"), 0o644))

		_, err := LoadConfig(path)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

		require.Error(t, err)
	})
}
