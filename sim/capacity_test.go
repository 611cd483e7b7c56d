package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformCapacity_StaysWithinBounds_AndCoversRange(t *testing.T) {
	// GIVEN the reference [5, 10] policy
	c := NewUniformCapacity(5, 10, rand.New(rand.NewSource(7)))

	// WHEN many draws are taken
	seen := map[int]bool{}
	for tick := int64(0); tick < 2000; tick++ {
		v := c.Next(tick)
		if v < 5 || v > 10 {
			t.Fatalf("draw %d out of [5, 10]", v)
		}
		seen[v] = true
	}

	// THEN both ends of the inclusive range occur
	assert.Len(t, seen, 6)
}

func TestUniformCapacity_DegenerateRange_ReturnsMin(t *testing.T) {
	c := NewUniformCapacity(4, 4, rand.New(rand.NewSource(1)))
	assert.Equal(t, 4, c.Next(0))
	c = NewUniformCapacity(4, 2, rand.New(rand.NewSource(1)))
	assert.Equal(t, 4, c.Next(0))
}

func TestFixedCapacity_ConstantEveryTick(t *testing.T) {
	c := &FixedCapacity{Slots: 3}
	for tick := int64(0); tick < 5; tick++ {
		assert.Equal(t, 3, c.Next(tick))
	}
}

func TestNewCapacityPolicy_ByName(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.IsType(t, &UniformCapacity{}, NewCapacityPolicy("", 5, 10, rng))
	assert.IsType(t, &UniformCapacity{}, NewCapacityPolicy("uniform", 5, 10, rng))
	fixed := NewCapacityPolicy("fixed", 6, 0, rng)
	assert.IsType(t, &FixedCapacity{}, fixed)
	assert.Equal(t, 6, fixed.Next(0))
}

func TestNewCapacityPolicy_UnknownName_Panics(t *testing.T) {
	assert.False(t, IsValidCapacityPolicy("burst"))
	assert.Panics(t, func() {
		NewCapacityPolicy("burst", 1, 2, nil)
	})
}
