package workload

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/intake-sim/sim"
)

// idDigits is the length of a generated patient ID.
const idDigits = 14

// GeneratePatient creates one random patient arriving at tick: a 14-digit ID
// whose first digit is 2 or 3, a random gender, a random HH:MM arrival clock,
// and the Urgent class with probability urgentFraction.
func GeneratePatient(rng *rand.Rand, tick int64, urgentFraction float64) *sim.Patient {
	var id strings.Builder
	id.Grow(idDigits)
	id.WriteString(strconv.Itoa(rng.Intn(2) + 2))
	for i := 1; i < idDigits; i++ {
		id.WriteString(strconv.Itoa(rng.Intn(10)))
	}

	gender := sim.GenderMale
	if rng.Intn(2) == 1 {
		gender = sim.GenderFemale
	}
	clock := fmt.Sprintf("%02d:%02d", rng.Intn(24), rng.Intn(60))

	class := sim.ClassNormal
	if rng.Float64() < urgentFraction {
		class = sim.ClassUrgent
	}

	p := sim.NewPatient(id.String(), class, tick)
	p.Gender = gender
	p.ArrivalClock = clock
	return p
}

// GeneratePatients creates count random patients all arriving at tick.
func GeneratePatients(rng *rand.Rand, count int, tick int64, urgentFraction float64) []*sim.Patient {
	patients := make([]*sim.Patient, 0, count)
	for i := 0; i < count; i++ {
		patients = append(patients, GeneratePatient(rng, tick, urgentFraction))
	}
	return patients
}

// wave is a parsed WaveSpec.
type wave struct {
	name           string
	schedule       cron.Schedule
	count          int
	urgentFraction float64
}

var _ sim.ArrivalSource = (*Generator)(nil)

// Generator produces arrivals from a WorkloadSpec. It implements sim.ArrivalSource.
// Deterministic given the same spec and RNG seed.
type Generator struct {
	spec  *WorkloadSpec
	rng   *rand.Rand
	start time.Time // wall clock of tick 0
	waves []wave
}

// referenceDay anchors tick 0 so day-of-week schedules are reproducible (a Monday).
var referenceDay = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// NewGenerator validates spec and compiles its wave schedules.
func NewGenerator(spec *WorkloadSpec, rng *rand.Rand) (*Generator, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec: %w", err)
	}
	clock, _ := time.Parse(clockLayout, spec.StartClock)
	g := &Generator{
		spec:  spec,
		rng:   rng,
		start: referenceDay.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute),
	}
	for _, ws := range spec.Waves {
		schedule, err := cronParser.Parse(ws.Schedule)
		if err != nil {
			return nil, fmt.Errorf("wave %s: %w", ws.Name, err)
		}
		frac := spec.UrgentFraction
		if ws.UrgentFraction != nil {
			frac = *ws.UrgentFraction
		}
		g.waves = append(g.waves, wave{name: ws.Name, schedule: schedule, count: ws.Count, urgentFraction: frac})
	}
	return g, nil
}

// ClockAt returns the wall clock corresponding to tick.
func (g *Generator) ClockAt(tick int64) time.Time {
	return g.start.Add(time.Duration(tick) * time.Minute)
}

// ArrivalsAt returns the initial batch at tick 0 plus every wave whose
// schedule matches the tick's wall-clock minute.
func (g *Generator) ArrivalsAt(tick int64) []*sim.Patient {
	var out []*sim.Patient
	if tick == 0 && g.spec.InitialPatients > 0 {
		out = append(out, GeneratePatients(g.rng, g.spec.InitialPatients, 0, g.spec.UrgentFraction)...)
	}
	if !g.inWindow(tick) {
		return out
	}
	now := g.ClockAt(tick)
	for _, w := range g.waves {
		if !w.schedule.Next(now.Add(-time.Minute)).Equal(now) {
			continue
		}
		logrus.Debugf("[tick %07d] wave %q fires at %s with %d patients", tick, w.name, now.Format(clockLayout), w.count)
		for _, p := range GeneratePatients(g.rng, w.count, tick, w.urgentFraction) {
			p.ArrivalClock = now.Format(clockLayout)
			out = append(out, p)
		}
	}
	return out
}

// Done reports that no arrivals remain at or after tick.
func (g *Generator) Done(tick int64) bool {
	if tick <= 0 && g.spec.InitialPatients > 0 {
		return false
	}
	if len(g.waves) == 0 {
		return true
	}
	return g.spec.ArrivalWindow > 0 && tick >= g.spec.ArrivalWindow
}

func (g *Generator) inWindow(tick int64) bool {
	return tick >= 0 && (g.spec.ArrivalWindow == 0 || tick < g.spec.ArrivalWindow)
}
