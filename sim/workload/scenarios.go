package workload

import (
	"fmt"
	"sort"
	"strings"
)

// Built-in scenario presets for common clinic intake patterns.
// Each returns a valid, bounded WorkloadSpec ready for NewGenerator.

// ScenarioQuietMorning creates a small, mostly Normal batch with no later arrivals.
func ScenarioQuietMorning() *WorkloadSpec {
	return &WorkloadSpec{
		InitialPatients: 20,
		UrgentFraction:  0.2,
		StartClock:      "08:00",
	}
}

// ScenarioMorningRush creates the reference batch plus a wave every quarter
// hour for the first two hours.
func ScenarioMorningRush() *WorkloadSpec {
	return &WorkloadSpec{
		InitialPatients: 100,
		UrgentFraction:  0.5,
		StartClock:      "08:00",
		ArrivalWindow:   120,
		Waves: []WaveSpec{
			{Name: "walk-ins", Schedule: "*/15 8-9 * * *", Count: 12},
		},
	}
}

// ScenarioUrgentSurge creates a Normal-heavy batch followed by an hour of
// all-Urgent arrivals every five minutes, which starves the Normal queue.
func ScenarioUrgentSurge() *WorkloadSpec {
	allUrgent := 1.0
	return &WorkloadSpec{
		InitialPatients: 40,
		UrgentFraction:  0.1,
		StartClock:      "08:00",
		ArrivalWindow:   60,
		Waves: []WaveSpec{
			{Name: "ambulance", Schedule: "*/5 8 * * *", Count: 6, UrgentFraction: &allUrgent},
		},
	}
}

var scenarios = map[string]func() *WorkloadSpec{
	"quiet-morning": ScenarioQuietMorning,
	"morning-rush":  ScenarioMorningRush,
	"urgent-surge":  ScenarioUrgentSurge,
}

// ScenarioNames returns the preset names in sorted order.
func ScenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ScenarioByName returns a fresh copy of the named preset.
func ScenarioByName(name string) (*WorkloadSpec, error) {
	build, ok := scenarios[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q; valid options: %s", name, strings.Join(ScenarioNames(), ", "))
	}
	return build(), nil
}
