package runs

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"turbine-backtest/internal/sim"
)

// Store keeps finished simulation results in memory, keyed by run ID, so the
// API can serve a run's ledger after the simulate response has been sent.
// Entries expire after a TTL; this is an ephemeral cache, not persistence.
type Store struct {
	mu    sync.RWMutex
	store map[string]*entry
	ttl   time.Duration
}

type entry struct {
	result    *sim.Result
	expiresAt time.Time
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	s := &Store{
		store: make(map[string]*entry),
		ttl:   ttl,
	}
	go s.cleanup()
	return s
}

// Put stores a result and returns its run ID.
func (s *Store) Put(res *sim.Result) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store[id] = &entry{
		result:    res,
		expiresAt: time.Now().Add(s.ttl),
	}
	return id
}

// Get retrieves a stored result if present and not expired.
func (s *Store) Get(id string) (*sim.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.store[id]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.result, true
}

// Len returns the number of stored entries, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.store)
}

func (s *Store) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		s.sweep(time.Now())
	}
}

func (s *Store) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.store {
		if now.After(e.expiresAt) {
			delete(s.store, id)
		}
	}
}
