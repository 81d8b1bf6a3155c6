package runs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turbine-backtest/internal/sim"
)

func TestStorePutGet(t *testing.T) {
	s := NewStore(time.Hour)
	res := &sim.Result{Policy: "condition", VisitCount: 2}

	id := s.Put(res)
	require.NotEmpty(t, id)

	got, ok := s.Get(id)
	require.True(t, ok)
	assert.Same(t, res, got)

	_, ok = s.Get("no-such-run")
	assert.False(t, ok)
}

func TestStoreIDsAreUnique(t *testing.T) {
	s := NewStore(time.Hour)
	a := s.Put(&sim.Result{})
	b := s.Put(&sim.Result{})
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, s.Len())
}

func TestStoreExpiry(t *testing.T) {
	s := NewStore(10 * time.Millisecond)
	id := s.Put(&sim.Result{})

	time.Sleep(20 * time.Millisecond)

	_, ok := s.Get(id)
	assert.False(t, ok)

	// The background cleanup runs on a slow ticker; sweep directly.
	s.sweep(time.Now())
	assert.Equal(t, 0, s.Len())
}

func TestStoreDefaultTTL(t *testing.T) {
	s := NewStore(0)
	assert.Equal(t, time.Hour, s.ttl)
}
