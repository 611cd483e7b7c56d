// Tracks run-wide intake statistics: admissions per class, services, expiries and wait.

package sim

// Metrics aggregates running totals maintained by the Scheduler on each
// admission and service event. Every field is derivable by replaying the
// served and expired sequences; the totals exist for O(1) queries.
type Metrics struct {
	TotalAdmitted  int // Number of patients admitted
	UrgentAdmitted int // Number of Urgent patients admitted
	NormalAdmitted int // Number of Normal patients admitted

	TotalServed  int // Number of patients served
	UrgentServed int
	NormalServed int

	TotalExpired  int // Number of patients dropped for waiting past the threshold
	UrgentExpired int
	NormalExpired int

	CumulativeWait int64 // Sum of (service tick - arrival tick) over served patients
	MaxServedWait  int64 // Longest wait among served patients
}

// NewMetrics returns a zeroed Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordAdmission counts one admitted patient.
func (m *Metrics) RecordAdmission(class PriorityClass) {
	m.TotalAdmitted++
	if class == ClassUrgent {
		m.UrgentAdmitted++
	} else {
		m.NormalAdmitted++
	}
}

// RecordService counts one served patient and its wait.
func (m *Metrics) RecordService(class PriorityClass, wait int64) {
	m.TotalServed++
	if class == ClassUrgent {
		m.UrgentServed++
	} else {
		m.NormalServed++
	}
	m.CumulativeWait += wait
	if m.TotalServed == 1 || wait > m.MaxServedWait {
		m.MaxServedWait = wait
	}
}

// RecordExpiry counts one patient dropped from the head of its queue.
func (m *Metrics) RecordExpiry(class PriorityClass) {
	m.TotalExpired++
	if class == ClassUrgent {
		m.UrgentExpired++
	} else {
		m.NormalExpired++
	}
}

// AverageWait returns the mean wait of served patients.
// ok is false when nothing has been served.
func (m *Metrics) AverageWait() (avg float64, ok bool) {
	if m.TotalServed == 0 {
		return 0, false
	}
	return float64(m.CumulativeWait) / float64(m.TotalServed), true
}

// Summary is the read-only view of Metrics handed to drivers and reports.
// AverageWait is nil when no patient has been served.
type Summary struct {
	TotalAdmitted int      `json:"total_admitted"`
	UrgentCount   int      `json:"urgent_count"`
	NormalCount   int      `json:"normal_count"`
	TotalServed   int      `json:"total_served"`
	AverageWait   *float64 `json:"average_wait"`

	UrgentServed  int   `json:"urgent_served"`
	NormalServed  int   `json:"normal_served"`
	TotalExpired  int   `json:"total_expired"`
	UrgentExpired int   `json:"urgent_expired"`
	NormalExpired int   `json:"normal_expired"`
	MaxServedWait int64 `json:"max_served_wait"`
}

// Summary snapshots the current totals.
func (m *Metrics) Summary() Summary {
	s := Summary{
		TotalAdmitted: m.TotalAdmitted,
		UrgentCount:   m.UrgentAdmitted,
		NormalCount:   m.NormalAdmitted,
		TotalServed:   m.TotalServed,
		UrgentServed:  m.UrgentServed,
		NormalServed:  m.NormalServed,
		TotalExpired:  m.TotalExpired,
		UrgentExpired: m.UrgentExpired,
		NormalExpired: m.NormalExpired,
		MaxServedWait: m.MaxServedWait,
	}
	if avg, ok := m.AverageWait(); ok {
		s.AverageWait = &avg
	}
	return s
}
