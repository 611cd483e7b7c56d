package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/intake-sim/sim/trace"
)

// DefaultMaxWait is the expiry threshold in ticks. A patient whose wait
// exceeds it when reaching the head of its queue is dropped instead of served.
const DefaultMaxWait int64 = 10

// Scheduler owns the Urgent and Normal wait queues, the served and expired
// sequences, and the Metrics derived from them.
//
// Not safe for concurrent use; callers serialize Admit, Advance and queries.
type Scheduler struct {
	urgent WaitQueue
	normal WaitQueue

	served  []*Patient // append-only, service order
	expired []*Patient // append-only, expiry order

	metrics *Metrics
	maxWait int64
	trace   *trace.SimulationTrace // nil when tracing is disabled
}

// NewScheduler creates a Scheduler that expires patients waiting longer than maxWait ticks.
func NewScheduler(maxWait int64) *Scheduler {
	return &Scheduler{
		metrics: NewMetrics(),
		maxWait: maxWait,
	}
}

// SetTrace attaches a decision trace. Pass nil to disable tracing.
func (s *Scheduler) SetTrace(st *trace.SimulationTrace) {
	s.trace = st
}

// MaxWait returns the expiry threshold in ticks.
func (s *Scheduler) MaxWait() int64 {
	return s.maxWait
}

// Admit appends p to the tail of its class queue. It never fails: class
// resolution happens before the patient reaches the scheduler, and anything
// that is not Urgent joins the Normal queue.
func (s *Scheduler) Admit(p *Patient) {
	if p.Class == ClassUrgent {
		s.urgent.Enqueue(p)
	} else {
		s.normal.Enqueue(p)
	}
	s.metrics.RecordAdmission(p.Class)
}

// TickResult reports what one Advance call did.
type TickResult struct {
	Tick     int64
	Capacity int
	Served   []string // IDs in service order
	Expired  []string // IDs in expiry order
}

// Advance serves up to capacity patients at tick now, Urgent first, then
// Normal with whatever capacity remains. Heads that waited longer than the
// threshold are dropped without using capacity, so one call may pop more
// patients than capacity. Bounded by the combined queue length.
func (s *Scheduler) Advance(capacity int, now int64) TickResult {
	res := TickResult{Tick: now, Capacity: capacity}
	s.serveFrom(&s.urgent, capacity, now, &res)
	s.serveFrom(&s.normal, capacity, now, &res)

	if s.trace != nil {
		s.trace.RecordTick(trace.TickRecord{
			Tick:        now,
			Capacity:    capacity,
			Served:      len(res.Served),
			Expired:     len(res.Expired),
			UrgentDepth: s.urgent.Len(),
			NormalDepth: s.normal.Len(),
		})
	}
	return res
}

// serveFrom drains wq until the tick's capacity is used or wq is empty.
func (s *Scheduler) serveFrom(wq *WaitQueue, capacity int, now int64, res *TickResult) {
	for len(res.Served) < capacity && !wq.Empty() {
		p := wq.Dequeue()
		wait := now - p.ArrivalTick

		if wait > s.maxWait {
			s.expired = append(s.expired, p)
			s.metrics.RecordExpiry(p.Class)
			res.Expired = append(res.Expired, p.ID)
			logrus.Infof("[tick %07d] %s patient %s expired after waiting %d ticks", now, p.Class, p.ID, wait)
			if s.trace != nil {
				s.trace.RecordExpiry(trace.ExpiryRecord{
					PatientID: p.ID,
					Class:     string(p.Class),
					Tick:      now,
					Wait:      wait,
				})
			}
			continue
		}

		s.served = append(s.served, p)
		s.metrics.RecordService(p.Class, wait)
		res.Served = append(res.Served, p.ID)
		logrus.Debugf("[tick %07d] served %s patient %s (wait=%d)", now, p.Class, p.ID, wait)
		if s.trace != nil {
			s.trace.RecordService(trace.ServiceRecord{
				PatientID: p.ID,
				Class:     string(p.Class),
				Tick:      now,
				Wait:      wait,
				Slot:      len(res.Served),
			})
		}
	}
}

// Snapshot lists patient IDs in queue order at the time of Inspect.
type Snapshot struct {
	Urgent  []string `json:"urgent"`
	Normal  []string `json:"normal"`
	Served  []string `json:"served"`
	Expired []string `json:"expired"`
}

// Inspect returns the current queue contents and the cumulative served and
// expired sequences. The slices are copies; Inspect does not mutate state.
func (s *Scheduler) Inspect() Snapshot {
	return Snapshot{
		Urgent:  s.urgent.IDs(),
		Normal:  s.normal.IDs(),
		Served:  patientIDs(s.served),
		Expired: patientIDs(s.expired),
	}
}

// Summary returns the aggregate counters.
func (s *Scheduler) Summary() Summary {
	return s.metrics.Summary()
}

// IsDrained reports whether both queues are empty. The scheduler has no
// terminal state of its own; drivers use this to decide when to stop.
func (s *Scheduler) IsDrained() bool {
	return s.urgent.Empty() && s.normal.Empty()
}

// QueueDepths returns the current Urgent and Normal queue lengths.
func (s *Scheduler) QueueDepths() (urgent, normal int) {
	return s.urgent.Len(), s.normal.Len()
}

// Served returns a copy of the served sequence.
func (s *Scheduler) Served() []*Patient {
	out := make([]*Patient, len(s.served))
	copy(out, s.served)
	return out
}

func patientIDs(ps []*Patient) []string {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	return ids
}
