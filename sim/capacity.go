package sim

import (
	"fmt"
	"math/rand"
)

// CapacityPolicy decides how many patients may be served in a tick.
// Called once per Simulator.Step, before the scheduler advances.
type CapacityPolicy interface {
	Next(tick int64) int
}

// FixedCapacity offers the same number of slots every tick.
type FixedCapacity struct {
	Slots int
}

func (f *FixedCapacity) Next(_ int64) int {
	return f.Slots
}

// UniformCapacity draws a slot count uniformly from [Min, Max] each tick.
// The reference clinic draws from [5, 10].
type UniformCapacity struct {
	Min int
	Max int
	rng *rand.Rand
}

// NewUniformCapacity creates a UniformCapacity backed by rng.
func NewUniformCapacity(lo, hi int, rng *rand.Rand) *UniformCapacity {
	return &UniformCapacity{Min: lo, Max: hi, rng: rng}
}

func (u *UniformCapacity) Next(_ int64) int {
	if u.Max <= u.Min {
		return u.Min
	}
	return u.Min + u.rng.Intn(u.Max-u.Min+1)
}

// validCapacityPolicies is the set of recognized capacity policy names.
var validCapacityPolicies = map[string]bool{"": true, "uniform": true, "fixed": true}

// IsValidCapacityPolicy reports whether name is a recognized capacity policy.
func IsValidCapacityPolicy(name string) bool {
	return validCapacityPolicies[name]
}

// NewCapacityPolicy creates a capacity policy by name.
// An empty string defaults to uniform (for CLI flag default compatibility).
// For fixed, lo is the slot count and hi is ignored.
// Panics on unrecognized names.
func NewCapacityPolicy(name string, lo, hi int, rng *rand.Rand) CapacityPolicy {
	if !IsValidCapacityPolicy(name) {
		panic(fmt.Sprintf("unknown capacity policy %q", name))
	}
	switch name {
	case "", "uniform":
		return NewUniformCapacity(lo, hi, rng)
	case "fixed":
		return &FixedCapacity{Slots: lo}
	default:
		panic(fmt.Sprintf("unhandled capacity policy %q", name))
	}
}
