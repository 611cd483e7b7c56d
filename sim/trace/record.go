// Package trace provides decision-trace recording for intake scheduling analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// ServiceRecord captures a single patient leaving a queue through service.
type ServiceRecord struct {
	PatientID string
	Class     string
	Tick      int64
	Wait      int64 // Tick - arrival tick
	Slot      int   // 1-based position within the tick's capacity
}

// ExpiryRecord captures a patient dropped from the head of its queue because
// its wait exceeded the threshold.
type ExpiryRecord struct {
	PatientID string
	Class     string
	Tick      int64
	Wait      int64
}

// TickRecord captures the outcome of one advance call.
type TickRecord struct {
	Tick        int64
	Capacity    int
	Served      int
	Expired     int
	UrgentDepth int // Urgent queue length after the tick
	NormalDepth int // Normal queue length after the tick
}
