// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/intake-sim/sim/trace"
)

// ArrivalSource produces the patients arriving at each tick.
// Implementations live outside this package (see sim/workload).
type ArrivalSource interface {
	// ArrivalsAt returns patients arriving at tick, with ArrivalTick set.
	ArrivalsAt(tick int64) []*Patient
	// Done reports that no arrivals remain at or after tick.
	Done(tick int64) bool
}

// Simulator is the tick driver: it owns the clock, draws capacity each tick
// and feeds arrivals to the Scheduler. The scheduling policy itself lives in
// Scheduler; Simulator only decides when to call it.
type Simulator struct {
	RunID     string
	Clock     int64 // next tick to be advanced
	Horizon   int64 // 0 = no limit
	Scheduler *Scheduler
	Capacity  CapacityPolicy
	Trace     *trace.SimulationTrace // nil unless trace level is "decisions"
	Ticks     []TickResult
	OnTick    func(TickResult) // called after every Step; optional

	arrivals ArrivalSource
}

// NewSimulator validates cfg and builds a Simulator. arrivals may be nil, in
// which case patients are only added through Admit.
func NewSimulator(cfg SimConfig, arrivals ArrivalSource) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sim config: %w", err)
	}
	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	s := &Simulator{
		RunID:     uuid.NewString(),
		Horizon:   cfg.Horizon,
		Scheduler: NewScheduler(cfg.MaxWaitTicks),
		Capacity:  NewCapacityPolicy(cfg.Capacity.Policy, cfg.Capacity.Min, cfg.Capacity.Max, rng.ForSubsystem(SubsystemCapacity)),
		arrivals:  arrivals,
	}
	if trace.TraceLevel(cfg.Trace) == trace.TraceLevelDecisions {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelDecisions})
		s.Scheduler.SetTrace(s.Trace)
	}
	return s, nil
}

// Admit hands p to the scheduler. The caller sets p.ArrivalTick, normally to Clock.
func (s *Simulator) Admit(p *Patient) {
	logrus.Debugf("[tick %07d] admitted %s patient %s", s.Clock, p.Class, p.ID)
	s.Scheduler.Admit(p)
}

// Step draws this tick's capacity, advances the scheduler at the current
// clock and moves the clock forward by one.
func (s *Simulator) Step() TickResult {
	capacity := s.Capacity.Next(s.Clock)
	res := s.Scheduler.Advance(capacity, s.Clock)
	s.Ticks = append(s.Ticks, res)
	urgent, normal := s.Scheduler.QueueDepths()
	logrus.Debugf("[tick %07d] capacity=%d served=%d expired=%d urgent=%d normal=%d",
		s.Clock, capacity, len(res.Served), len(res.Expired), urgent, normal)
	s.Clock++
	if s.OnTick != nil {
		s.OnTick(res)
	}
	return res
}

// AdmitArrivals admits whatever the arrival source produces for the current
// clock. A nil source admits nothing.
func (s *Simulator) AdmitArrivals() int {
	if s.arrivals == nil {
		return 0
	}
	ps := s.arrivals.ArrivalsAt(s.Clock)
	for _, p := range ps {
		s.Admit(p)
	}
	return len(ps)
}

// Finished reports whether the run is over: both queues drained with no
// arrivals left, or the horizon reached.
func (s *Simulator) Finished() bool {
	if s.Horizon > 0 && s.Clock >= s.Horizon {
		return true
	}
	return s.Scheduler.IsDrained() && (s.arrivals == nil || s.arrivals.Done(s.Clock))
}

// Run admits arrivals and steps until both queues are drained and the arrival
// source is exhausted, or until the horizon is reached.
func (s *Simulator) Run() {
	logrus.Infof("Starting run %s (horizon=%d, max wait=%d ticks)", s.RunID, s.Horizon, s.Scheduler.MaxWait())
	for s.Horizon == 0 || s.Clock < s.Horizon {
		s.AdmitArrivals()
		s.Step()
		if s.Finished() {
			break
		}
	}
	logrus.Infof("[tick %07d] Simulation ended", s.Clock)
}

// Results bundles everything a report needs about the run.
func (s *Simulator) Results(seed int64) Results {
	res := Results{
		RunID:   s.RunID,
		Seed:    seed,
		Ticks:   s.Clock,
		Drained: s.Scheduler.IsDrained(),
		Summary: s.Scheduler.Summary(),
	}
	if s.Trace != nil {
		res.TraceSummary = trace.Summarize(s.Trace)
	}
	return res
}
