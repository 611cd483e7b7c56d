package workload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workload.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWorkloadSpec_ValidYAML_LoadsCorrectly(t *testing.T) {
	path := writeSpec(t, `
initial_patients: 20
urgent_fraction: 0.25
start_clock: "07:30"
arrival_window: 120
waves:
  - name: morning-rush
    schedule: "*/15 7-9 * * *"
    count: 4
  - name: ambulance
    schedule: "0 * * * *"
    count: 1
    urgent_fraction: 1.0
`)

	spec, err := LoadWorkloadSpec(path)

	require.NoError(t, err)
	assert.Equal(t, 20, spec.InitialPatients)
	assert.Equal(t, 0.25, spec.UrgentFraction)
	assert.Equal(t, "07:30", spec.StartClock)
	assert.Equal(t, int64(120), spec.ArrivalWindow)
	require.Len(t, spec.Waves, 2)
	assert.Equal(t, "morning-rush", spec.Waves[0].Name)
	require.NotNil(t, spec.Waves[1].UrgentFraction)
	assert.Equal(t, 1.0, *spec.Waves[1].UrgentFraction)
	assert.NoError(t, spec.Validate())
}

func TestLoadWorkloadSpec_OmittedFields_KeepDefaults(t *testing.T) {
	spec, err := LoadWorkloadSpec(writeSpec(t, "initial_patients: 5\n"))

	require.NoError(t, err)
	assert.Equal(t, 5, spec.InitialPatients)
	assert.Equal(t, 0.5, spec.UrgentFraction)
	assert.Equal(t, "08:00", spec.StartClock)
	assert.False(t, spec.Unbounded())
}

func TestLoadWorkloadSpec_UnknownKey_ReturnsError(t *testing.T) {
	_, err := LoadWorkloadSpec(writeSpec(t, "initial_patient: 5\n"))
	if err == nil {
		t.Fatal("expected error for unknown key, got nil")
	}
}

func TestWorkloadSpec_Validate_RejectsBadValues(t *testing.T) {
	half := 0.5
	tooBig := 1.5
	tests := []struct {
		name    string
		mutate  func(*WorkloadSpec)
		wantErr string
	}{
		{"negative initial", func(s *WorkloadSpec) { s.InitialPatients = -1 }, "initial_patients"},
		{"fraction above one", func(s *WorkloadSpec) { s.UrgentFraction = 1.1 }, "urgent_fraction"},
		{"bad clock", func(s *WorkloadSpec) { s.StartClock = "8am" }, "start_clock"},
		{"negative window", func(s *WorkloadSpec) { s.ArrivalWindow = -5 }, "arrival_window"},
		{"unnamed wave", func(s *WorkloadSpec) {
			s.Waves = []WaveSpec{{Schedule: "* * * * *", Count: 1}}
		}, "name is required"},
		{"bad schedule", func(s *WorkloadSpec) {
			s.Waves = []WaveSpec{{Name: "w", Schedule: "every minute", Count: 1}}
		}, "invalid schedule"},
		{"zero count", func(s *WorkloadSpec) {
			s.Waves = []WaveSpec{{Name: "w", Schedule: "* * * * *", Count: 0, UrgentFraction: &half}}
		}, "count must be positive"},
		{"wave fraction", func(s *WorkloadSpec) {
			s.Waves = []WaveSpec{{Name: "w", Schedule: "* * * * *", Count: 1, UrgentFraction: &tooBig}}
		}, "waves[0].urgent_fraction"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := DefaultWorkloadSpec()
			tt.mutate(spec)
			err := spec.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestWorkloadSpec_Unbounded(t *testing.T) {
	spec := DefaultWorkloadSpec()
	spec.Waves = []WaveSpec{{Name: "w", Schedule: "* * * * *", Count: 1}}
	assert.True(t, spec.Unbounded())
	spec.ArrivalWindow = 30
	assert.False(t, spec.Unbounded())
}
