package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_AverageWait_NothingServed_Undefined(t *testing.T) {
	// GIVEN metrics with admissions but no services
	m := NewMetrics()
	m.RecordAdmission(ClassUrgent)
	m.RecordExpiry(ClassUrgent)

	// WHEN the average is requested
	_, ok := m.AverageWait()

	// THEN it is undefined and the summary carries a nil average
	assert.False(t, ok)
	assert.Nil(t, m.Summary().AverageWait)
}

func TestMetrics_AverageWait_IsCumulativeOverServed(t *testing.T) {
	m := NewMetrics()
	m.RecordService(ClassUrgent, 1)
	m.RecordService(ClassNormal, 2)
	m.RecordService(ClassNormal, 4)

	avg, ok := m.AverageWait()
	require.True(t, ok)
	assert.InDelta(t, 7.0/3.0, avg, 1e-12)

	s := m.Summary()
	require.NotNil(t, s.AverageWait)
	assert.InDelta(t, 7.0/3.0, *s.AverageWait, 1e-12)
	assert.Equal(t, 3, s.TotalServed)
	assert.Equal(t, 1, s.UrgentServed)
	assert.Equal(t, 2, s.NormalServed)
	assert.Equal(t, int64(4), s.MaxServedWait)
}

func TestMetrics_RecordAdmission_CountsPerClass(t *testing.T) {
	m := NewMetrics()
	m.RecordAdmission(ClassUrgent)
	m.RecordAdmission(ClassNormal)
	m.RecordAdmission(ClassNormal)

	s := m.Summary()
	assert.Equal(t, 3, s.TotalAdmitted)
	assert.Equal(t, 1, s.UrgentCount)
	assert.Equal(t, 2, s.NormalCount)
}

func TestMetrics_RecordExpiry_CountsPerClass(t *testing.T) {
	m := NewMetrics()
	m.RecordExpiry(ClassNormal)
	m.RecordExpiry(ClassUrgent)
	m.RecordExpiry(ClassNormal)

	s := m.Summary()
	assert.Equal(t, 3, s.TotalExpired)
	assert.Equal(t, 1, s.UrgentExpired)
	assert.Equal(t, 2, s.NormalExpired)
	assert.Equal(t, 0, s.TotalServed)
}

func TestMetrics_MaxServedWait_ZeroWaitFirst(t *testing.T) {
	// GIVEN a first service with zero wait and a later one with wait 3
	m := NewMetrics()
	m.RecordService(ClassUrgent, 0)
	assert.Equal(t, int64(0), m.MaxServedWait)
	m.RecordService(ClassUrgent, 3)

	// THEN the maximum tracks the larger wait
	assert.Equal(t, int64(3), m.MaxServedWait)
}
