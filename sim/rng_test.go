package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func drawInts(r *rand.Rand, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = r.Intn(1000)
	}
	return out
}

func TestPartitionedRNG_SameKeySameStreams(t *testing.T) {
	for _, seed := range []int64{0, 42, -7} {
		a := NewPartitionedRNG(NewSimulationKey(seed))
		b := NewPartitionedRNG(NewSimulationKey(seed))

		assert.Equal(t, drawInts(a.ForSubsystem(SubsystemCapacity), 5), drawInts(b.ForSubsystem(SubsystemCapacity), 5), "seed %d", seed)
		assert.Equal(t, drawInts(a.ForSubsystem(SubsystemWorkload), 5), drawInts(b.ForSubsystem(SubsystemWorkload), 5), "seed %d", seed)
	}
}

func TestPartitionedRNG_WorkloadDrawsDoNotShiftCapacity(t *testing.T) {
	// GIVEN one RNG that generates many patients before the first capacity draw
	busy := NewPartitionedRNG(NewSimulationKey(42))
	drawInts(busy.ForSubsystem(SubsystemWorkload), 500)

	// WHEN capacity is drawn from it and from a fresh RNG
	fresh := NewPartitionedRNG(NewSimulationKey(42))

	// THEN both capacity sequences match
	assert.Equal(t, drawInts(fresh.ForSubsystem(SubsystemCapacity), 10), drawInts(busy.ForSubsystem(SubsystemCapacity), 10))
}

func TestPartitionedRNG_WorkloadStreamIsRawSeed(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(1234))

	want := drawInts(rand.New(rand.NewSource(1234)), 8)

	assert.Equal(t, want, drawInts(p.ForSubsystem(SubsystemWorkload), 8))
}

func TestPartitionedRNG_StreamsDiffer(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(42))

	assert.NotEqual(t, drawInts(p.ForSubsystem(SubsystemWorkload), 8), drawInts(p.ForSubsystem(SubsystemCapacity), 8))
	assert.NotEqual(t, p.seedFor(SubsystemCapacity), p.seedFor("other"))
}

func TestPartitionedRNG_ReusesStream(t *testing.T) {
	p := NewPartitionedRNG(NewSimulationKey(9))

	assert.Same(t, p.ForSubsystem(SubsystemCapacity), p.ForSubsystem(SubsystemCapacity))
	assert.Len(t, p.streams, 1)
	assert.Equal(t, SimulationKey(9), p.Key())
}
