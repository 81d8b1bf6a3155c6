package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turbine-backtest/internal/model"
)

func TestScheduled_RejectsOutOfRangeDates(t *testing.T) {
	for _, tc := range []struct{ day, month int }{
		{0, 6}, {32, 6}, {-1, 6}, {15, 0}, {15, 13},
	} {
		_, err := NewScheduled(tc.day, tc.month)
		assert.ErrorIs(t, err, model.ErrConfig, "day=%d month=%d", tc.day, tc.month)
	}
}

func TestScheduled_FiresOnConfiguredDate(t *testing.T) {
	p, err := NewScheduled(15, 6)
	require.NoError(t, err)
	assert.Equal(t, "scheduled", p.Name())

	on := Context{Timestamp: time.Date(2023, 6, 15, 9, 0, 0, 0, time.UTC)}
	assert.True(t, p.Decide(on))

	// Fires for every record of that day, not just the first.
	later := Context{Timestamp: time.Date(2023, 6, 15, 23, 30, 0, 0, time.UTC)}
	assert.True(t, p.Decide(later))

	wrongDay := Context{Timestamp: time.Date(2023, 6, 14, 9, 0, 0, 0, time.UTC)}
	assert.False(t, p.Decide(wrongDay))

	wrongMonth := Context{Timestamp: time.Date(2023, 7, 15, 9, 0, 0, 0, time.UTC)}
	assert.False(t, p.Decide(wrongMonth))

	// Same date next year fires again.
	nextYear := Context{Timestamp: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)}
	assert.True(t, p.Decide(nextYear))
}

func TestConditionMonitoring_RejectsNonPositiveThreshold(t *testing.T) {
	_, err := NewConditionMonitoring(0)
	assert.ErrorIs(t, err, model.ErrConfig)
	_, err = NewConditionMonitoring(-0.5)
	assert.ErrorIs(t, err, model.ErrConfig)
}

func TestConditionMonitoring_FiresAtOrBelowThreshold(t *testing.T) {
	p, err := NewConditionMonitoring(1.5)
	require.NoError(t, err)
	assert.Equal(t, "condition", p.Name())

	assert.False(t, p.Decide(Context{PressureBar: 1.6}))
	assert.True(t, p.Decide(Context{PressureBar: 1.5}))
	assert.True(t, p.Decide(Context{PressureBar: 0.2}))
}
