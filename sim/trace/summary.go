package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalServices   int            `json:"total_services"`
	TotalExpiries   int            `json:"total_expiries"`
	ServedByClass   map[string]int `json:"served_by_class"`
	ExpiredByClass  map[string]int `json:"expired_by_class"`
	MeanWait        float64        `json:"mean_wait"`
	MaxWait         int64          `json:"max_wait"`
	TickCount       int            `json:"tick_count"`
	CapacityOffered int            `json:"capacity_offered"`
	CapacityUsed    int            `json:"capacity_used"`
	PeakUrgentDepth int            `json:"peak_urgent_depth"`
	PeakNormalDepth int            `json:"peak_normal_depth"`
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		ServedByClass:  make(map[string]int),
		ExpiredByClass: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalServices = len(st.Services)
	if len(st.Services) > 0 {
		var totalWait int64
		for _, s := range st.Services {
			summary.ServedByClass[s.Class]++
			totalWait += s.Wait
			if s.Wait > summary.MaxWait {
				summary.MaxWait = s.Wait
			}
		}
		summary.MeanWait = float64(totalWait) / float64(len(st.Services))
	}

	summary.TotalExpiries = len(st.Expiries)
	for _, e := range st.Expiries {
		summary.ExpiredByClass[e.Class]++
	}

	summary.TickCount = len(st.Ticks)
	for _, tk := range st.Ticks {
		if tk.Capacity > 0 {
			summary.CapacityOffered += tk.Capacity
		}
		summary.CapacityUsed += tk.Served
		summary.PeakUrgentDepth = max(summary.PeakUrgentDepth, tk.UrgentDepth)
		summary.PeakNormalDepth = max(summary.PeakNormalDepth, tk.NormalDepth)
	}

	return summary
}
