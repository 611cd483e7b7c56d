package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/intake-sim/sim/trace"
)

// SimConfig holds run configuration, loadable from a YAML file.
// Fields absent from the file keep the values from DefaultSimConfig.
type SimConfig struct {
	Seed         int64          `yaml:"seed"`
	Horizon      int64          `yaml:"horizon"`        // 0 = run until drained
	MaxWaitTicks int64          `yaml:"max_wait_ticks"` // expiry threshold
	Capacity     CapacityConfig `yaml:"capacity"`
	Trace        string         `yaml:"trace"`
}

// CapacityConfig selects the per-tick capacity policy.
type CapacityConfig struct {
	Policy string `yaml:"policy"`
	Min    int    `yaml:"min"`
	Max    int    `yaml:"max"`
}

// DefaultSimConfig returns the reference clinic configuration.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Seed:         42,
		MaxWaitTicks: DefaultMaxWait,
		Capacity: CapacityConfig{
			Policy: "uniform",
			Min:    5,
			Max:    10,
		},
		Trace: string(trace.TraceLevelNone),
	}
}

// LoadSimConfig reads a YAML config file layered over DefaultSimConfig.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadSimConfig(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sim config: %w", err)
	}
	cfg := DefaultSimConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing sim config: %w", err)
	}
	return &cfg, nil
}

// Validate checks policy names and parameter ranges.
func (c *SimConfig) Validate() error {
	if c.Horizon < 0 {
		return fmt.Errorf("horizon must be non-negative, got %d", c.Horizon)
	}
	if c.MaxWaitTicks < 0 {
		return fmt.Errorf("max_wait_ticks must be non-negative, got %d", c.MaxWaitTicks)
	}
	if !IsValidCapacityPolicy(c.Capacity.Policy) {
		return fmt.Errorf("unknown capacity policy %q", c.Capacity.Policy)
	}
	if c.Capacity.Min < 0 {
		return fmt.Errorf("capacity.min must be non-negative, got %d", c.Capacity.Min)
	}
	if c.Capacity.Policy != "fixed" && c.Capacity.Max < c.Capacity.Min {
		return fmt.Errorf("capacity.max (%d) must be >= capacity.min (%d)", c.Capacity.Max, c.Capacity.Min)
	}
	if !trace.IsValidTraceLevel(c.Trace) {
		return fmt.Errorf("unknown trace level %q", c.Trace)
	}
	// With zero capacity nothing is ever popped, so queues never drain.
	if c.Horizon == 0 && c.maxSlots() < 1 {
		return fmt.Errorf("capacity never exceeds 0 and no horizon is set; the run would not terminate")
	}
	return nil
}

func (c *SimConfig) maxSlots() int {
	if c.Capacity.Policy == "fixed" {
		return c.Capacity.Min
	}
	return c.Capacity.Max
}
