package sim

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultSimConfig_IsReferenceClinic(t *testing.T) {
	cfg := DefaultSimConfig()
	assert.Equal(t, DefaultMaxWait, cfg.MaxWaitTicks)
	assert.Equal(t, "uniform", cfg.Capacity.Policy)
	assert.Equal(t, 5, cfg.Capacity.Min)
	assert.Equal(t, 10, cfg.Capacity.Max)
	assert.Equal(t, int64(0), cfg.Horizon)
	assert.NoError(t, cfg.Validate())
}

func TestLoadSimConfig_PartialFile_KeepsDefaults(t *testing.T) {
	// GIVEN a file that only overrides the seed and the capacity range
	path := writeTempYAML(t, `
seed: 7
capacity:
  policy: uniform
  min: 2
  max: 4
`)

	// WHEN loaded
	cfg, err := LoadSimConfig(path)

	// THEN overridden fields change and the rest keep their defaults
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 2, cfg.Capacity.Min)
	assert.Equal(t, 4, cfg.Capacity.Max)
	assert.Equal(t, DefaultMaxWait, cfg.MaxWaitTicks)
	assert.Equal(t, "none", cfg.Trace)
}

func TestLoadSimConfig_UnknownKey_ReturnsError(t *testing.T) {
	path := writeTempYAML(t, "max_wait_tick: 5\n")

	_, err := LoadSimConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing sim config")
}

func TestLoadSimConfig_MissingFile_ReturnsError(t *testing.T) {
	_, err := LoadSimConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading sim config")
}

func TestSimConfig_Validate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SimConfig)
		wantErr string
	}{
		{"negative horizon", func(c *SimConfig) { c.Horizon = -1 }, "horizon"},
		{"negative max wait", func(c *SimConfig) { c.MaxWaitTicks = -1 }, "max_wait_ticks"},
		{"unknown policy", func(c *SimConfig) { c.Capacity.Policy = "burst" }, "unknown capacity policy"},
		{"negative min", func(c *SimConfig) { c.Capacity.Min = -1 }, "capacity.min"},
		{"inverted range", func(c *SimConfig) { c.Capacity.Min, c.Capacity.Max = 8, 3 }, "capacity.max"},
		{"unknown trace", func(c *SimConfig) { c.Trace = "verbose" }, "trace level"},
		{"zero capacity forever", func(c *SimConfig) { c.Capacity.Min, c.Capacity.Max = 0, 0 }, "would not terminate"},
		{"fixed zero forever", func(c *SimConfig) { c.Capacity.Policy, c.Capacity.Min = "fixed", 0 }, "would not terminate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSimConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSimConfig_Validate_ZeroCapacityWithHorizon_OK(t *testing.T) {
	cfg := DefaultSimConfig()
	cfg.Capacity.Policy, cfg.Capacity.Min = "fixed", 0
	cfg.Horizon = 20
	assert.NoError(t, cfg.Validate())
}
