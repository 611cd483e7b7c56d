package sim

import (
	"hash/fnv"
	"math/rand"
)

// Random streams used by a run. Each stream is seeded independently, so
// adding patients to the workload never changes the capacity a tick gets.
const (
	SubsystemWorkload = "workload" // patient generation; seeded with the run seed itself
	SubsystemCapacity = "capacity" // per-tick capacity draws
)

// SimulationKey is the run seed. Equal keys with equal configs give equal
// served and expired sequences.
type SimulationKey int64

// NewSimulationKey wraps seed.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// PartitionedRNG hands out one *rand.Rand per named stream, all derived from
// a single SimulationKey. Not safe for concurrent use.
type PartitionedRNG struct {
	key     SimulationKey
	streams map[string]*rand.Rand
}

// NewPartitionedRNG creates an empty set of streams for key.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{key: key, streams: map[string]*rand.Rand{}}
}

// ForSubsystem returns the stream for name, creating it on first use.
// Repeated calls return the same instance.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	r, ok := p.streams[name]
	if !ok {
		r = rand.New(rand.NewSource(p.seedFor(name)))
		p.streams[name] = r
	}
	return r
}

// Key returns the run seed the streams derive from.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// seedFor keeps the workload stream on the raw seed, so a generator built
// directly from rand.NewSource(seed) reproduces it, and mixes every other
// stream name into the seed with FNV-1a.
func (p *PartitionedRNG) seedFor(name string) int64 {
	if name == SubsystemWorkload {
		return int64(p.key)
	}
	h := fnv.New64a()
	h.Write([]byte(name))
	return int64(p.key) ^ int64(h.Sum64())
}
