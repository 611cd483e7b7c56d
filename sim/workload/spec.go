package workload

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// clockLayout is the HH:MM layout used for start_clock and patient arrival clocks.
const clockLayout = "15:04"

// cronParser accepts standard 5-field schedules (minute hour dom month dow).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// WorkloadSpec is the top-level workload configuration.
// Loaded from YAML via LoadWorkloadSpec(path).
type WorkloadSpec struct {
	InitialPatients int        `yaml:"initial_patients"` // admitted at tick 0
	UrgentFraction  float64    `yaml:"urgent_fraction"`  // probability a generated patient is Urgent
	StartClock      string     `yaml:"start_clock"`      // wall clock of tick 0, HH:MM
	ArrivalWindow   int64      `yaml:"arrival_window"`   // ticks during which waves fire; 0 = unbounded
	Waves           []WaveSpec `yaml:"waves,omitempty"`
}

// WaveSpec describes a recurring burst of arrivals. Each tick is one minute
// of wall clock after StartClock; the wave fires on every minute its cron
// schedule matches.
type WaveSpec struct {
	Name           string   `yaml:"name"`
	Schedule       string   `yaml:"schedule"`
	Count          int      `yaml:"count"`
	UrgentFraction *float64 `yaml:"urgent_fraction,omitempty"` // overrides WorkloadSpec.UrgentFraction
}

// DefaultWorkloadSpec returns the reference clinic workload: 100 patients at
// tick 0, each Urgent with probability one half, and no later arrivals.
func DefaultWorkloadSpec() *WorkloadSpec {
	return &WorkloadSpec{
		InitialPatients: 100,
		UrgentFraction:  0.5,
		StartClock:      "08:00",
	}
}

// LoadWorkloadSpec reads a YAML workload file layered over DefaultWorkloadSpec.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	spec := DefaultWorkloadSpec()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	return spec, nil
}

// Validate checks every field and parses each wave schedule.
func (s *WorkloadSpec) Validate() error {
	if s.InitialPatients < 0 {
		return fmt.Errorf("initial_patients must be non-negative, got %d", s.InitialPatients)
	}
	if err := validateFraction("urgent_fraction", s.UrgentFraction); err != nil {
		return err
	}
	if _, err := time.Parse(clockLayout, s.StartClock); err != nil {
		return fmt.Errorf("start_clock must be HH:MM, got %q", s.StartClock)
	}
	if s.ArrivalWindow < 0 {
		return fmt.Errorf("arrival_window must be non-negative, got %d", s.ArrivalWindow)
	}
	for i, w := range s.Waves {
		if err := validateWave(&w, i); err != nil {
			return err
		}
	}
	return nil
}

// Unbounded reports whether waves keep firing forever, in which case the
// run needs a horizon to terminate.
func (s *WorkloadSpec) Unbounded() bool {
	return len(s.Waves) > 0 && s.ArrivalWindow == 0
}

func validateWave(w *WaveSpec, idx int) error {
	prefix := fmt.Sprintf("waves[%d]", idx)
	if w.Name == "" {
		return fmt.Errorf("%s: name is required", prefix)
	}
	if _, err := cronParser.Parse(w.Schedule); err != nil {
		return fmt.Errorf("%s (%s): invalid schedule %q: %w", prefix, w.Name, w.Schedule, err)
	}
	if w.Count <= 0 {
		return fmt.Errorf("%s (%s): count must be positive, got %d", prefix, w.Name, w.Count)
	}
	if w.UrgentFraction != nil {
		if err := validateFraction(prefix+".urgent_fraction", *w.UrgentFraction); err != nil {
			return err
		}
	}
	return nil
}

func validateFraction(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val < 0 || val > 1 {
		return fmt.Errorf("%s must be in [0, 1], got %f", name, val)
	}
	return nil
}
