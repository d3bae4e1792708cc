// Package history owns per-session emotional state sequences. The assessor
// only ever reads a trailing window; appends happen on the message path
// before assessment.
package history

import (
	"sync"
	"time"

	"github.com/havenbridge/crisis-sentinel/backend/internal/analyzer"
)

// maxSessionStates bounds the per-session ring. Matches the window any
// reader could reasonably ask for with room to spare.
const maxSessionStates = 50

// maxSessions bounds the number of tracked sessions. Once full, the
// longest-idle session is evicted to make room; durable retention belongs
// to an external store, not this process.
const maxSessions = 4096

// Store is the session history interface consumed by the pipeline. Append
// is called by the upstream message handler; the assessor uses ReadRecent
// only.
type Store interface {
	Append(sessionID string, state analyzer.EmotionalState)
	ReadRecent(sessionID string, n int) ([]analyzer.EmotionalState, error)
}

// MemoryStore is the in-process Store. Safe for concurrent sessions; each
// session's sequence is append-only and bounded.
type MemoryStore struct {
	mu        sync.RWMutex
	sessions  map[string][]analyzer.EmotionalState
	lastTouch map[string]time.Time
	now       func() time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions:  make(map[string][]analyzer.EmotionalState),
		lastTouch: make(map[string]time.Time),
		now:       time.Now,
	}
}

// Append records a state for the session, evicting the oldest entry once
// the ring is full. A new session arriving at capacity evicts the
// longest-idle session.
func (s *MemoryStore) Append(sessionID string, state analyzer.EmotionalState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok && len(s.sessions) >= maxSessions {
		s.evictIdlest()
	}

	states := append(s.sessions[sessionID], state)
	if len(states) > maxSessionStates {
		states = states[len(states)-maxSessionStates:]
	}
	s.sessions[sessionID] = states
	s.lastTouch[sessionID] = s.now()
}

// evictIdlest drops the session with the oldest last append. Caller holds
// the write lock.
func (s *MemoryStore) evictIdlest() {
	var victim string
	var oldest time.Time

	for id, touched := range s.lastTouch {
		if victim == "" || touched.Before(oldest) {
			victim = id
			oldest = touched
		}
	}
	if victim != "" {
		delete(s.sessions, victim)
		delete(s.lastTouch, victim)
	}
}

// ReadRecent returns a copy of the last n states for the session, oldest
// first. Fewer than n states is not an error; the caller sees whatever
// exists.
func (s *MemoryStore) ReadRecent(sessionID string, n int) ([]analyzer.EmotionalState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	states := s.sessions[sessionID]
	if n > 0 && len(states) > n {
		states = states[len(states)-n:]
	}

	out := make([]analyzer.EmotionalState, len(states))
	copy(out, states)
	return out, nil
}

// Len reports how many states a session currently holds.
func (s *MemoryStore) Len(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions[sessionID])
}

// SessionSummary condenses the session's full recorded sequence for
// response-tone callers.
func (s *MemoryStore) SessionSummary(sessionID string) Summary {
	states, _ := s.ReadRecent(sessionID, 0)
	return Summarize(states)
}

// SessionView is a read-only view of one session, shaped for the assessor.
type SessionView struct {
	Store     Store
	SessionID string
}

// Recent reads the trailing n states for the session.
func (v SessionView) Recent(n int) ([]analyzer.EmotionalState, error) {
	return v.Store.ReadRecent(v.SessionID, n)
}
