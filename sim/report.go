// sim/report.go
package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/intake-sim/sim/trace"
)

// Results is the JSON document written at the end of a run.
type Results struct {
	RunID        string              `json:"run_id"`
	Seed         int64               `json:"seed"`
	Ticks        int64               `json:"ticks"`
	Drained      bool                `json:"drained"`
	Summary      Summary             `json:"summary"`
	TraceSummary *trace.TraceSummary `json:"trace_summary,omitempty"`
}

// PrintQueues writes the current queue contents, one line per sequence.
func PrintQueues(w io.Writer, snap Snapshot) {
	fmt.Fprintln(w, "\nCurrent State of Queues:")
	fmt.Fprintf(w, "Urgent Queue: %s\n", strings.Join(snap.Urgent, " "))
	fmt.Fprintf(w, "Normal Queue: %s\n", strings.Join(snap.Normal, " "))
	fmt.Fprintf(w, "Currently Served Patients: %s\n", strings.Join(snap.Served, " "))
}

// PrintSummary writes the end-of-run statistics.
func PrintSummary(w io.Writer, s Summary) {
	fmt.Fprintln(w, "\nSimulation Summary:")
	fmt.Fprintf(w, "Total Patients: %d\n", s.TotalAdmitted)
	fmt.Fprintf(w, "Urgent Patients: %d\n", s.UrgentCount)
	fmt.Fprintf(w, "Normal Patients: %d\n", s.NormalCount)
	fmt.Fprintf(w, "Total Served Patients: %d\n", s.TotalServed)
	fmt.Fprintf(w, "Expired Patients: %d (urgent %d, normal %d)\n", s.TotalExpired, s.UrgentExpired, s.NormalExpired)
	if s.AverageWait != nil {
		fmt.Fprintf(w, "Average Waiting Time: %.2f ticks\n", *s.AverageWait)
	} else {
		fmt.Fprintln(w, "Average Waiting Time: N/A (no patients served)")
	}
}

// PrintTraceSummary writes the decision-trace aggregates.
func PrintTraceSummary(w io.Writer, ts *trace.TraceSummary) {
	if ts == nil {
		return
	}
	fmt.Fprintln(w, "\nDecision Trace:")
	fmt.Fprintf(w, "Ticks: %d\n", ts.TickCount)
	fmt.Fprintf(w, "Capacity Used: %d / %d\n", ts.CapacityUsed, ts.CapacityOffered)
	fmt.Fprintf(w, "Served: urgent %d, normal %d\n", ts.ServedByClass[string(ClassUrgent)], ts.ServedByClass[string(ClassNormal)])
	fmt.Fprintf(w, "Expired: urgent %d, normal %d\n", ts.ExpiredByClass[string(ClassUrgent)], ts.ExpiredByClass[string(ClassNormal)])
	fmt.Fprintf(w, "Max Wait: %d ticks\n", ts.MaxWait)
	fmt.Fprintf(w, "Peak Queue Depth: urgent %d, normal %d\n", ts.PeakUrgentDepth, ts.PeakNormalDepth)
}

// SaveResults writes res as indented JSON to path.
func SaveResults(path string, res Results) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing results to %s: %w", path, err)
	}
	logrus.Debugf("Successfully wrote results to '%s'", path)
	return nil
}
