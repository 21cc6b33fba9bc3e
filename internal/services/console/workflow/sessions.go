package workflow

import (
	"strings"
	"sync"
	"time"
)

const defaultSessionIdleTTL = 2 * time.Hour

type sessionEntry struct {
	store    *Store
	lastSeen time.Time
}

// Sessions maps console session ids to their workflow stores.
type Sessions struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
	idleTTL time.Duration
	now     func() time.Time
}

// NewSessions builds a registry evicting stores idle for longer than idleTTL.
// A non-positive idleTTL uses the default.
func NewSessions(idleTTL time.Duration) *Sessions {
	if idleTTL <= 0 {
		idleTTL = defaultSessionIdleTTL
	}
	return &Sessions{
		entries: make(map[string]*sessionEntry),
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

// Store returns the store of sessionID, creating it on first use.
func (s *Sessions) Store(sessionID string) *Store {
	sessionID = strings.TrimSpace(sessionID)
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictLocked(now)
	entry, ok := s.entries[sessionID]
	if !ok {
		entry = &sessionEntry{store: NewStore()}
		s.entries[sessionID] = entry
	}
	entry.lastSeen = now
	return entry.store
}

// Lookup returns the store of sessionID without creating one.
func (s *Sessions) Lookup(sessionID string) (*Store, bool) {
	sessionID = strings.TrimSpace(sessionID)
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[sessionID]
	if !ok || now.Sub(entry.lastSeen) > s.idleTTL {
		return nil, false
	}
	entry.lastSeen = now
	return entry.store, true
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Evict drops idle sessions and returns how many were removed.
func (s *Sessions) Evict() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evictLocked(s.now())
}

func (s *Sessions) evictLocked(now time.Time) int {
	removed := 0
	for id, entry := range s.entries {
		if now.Sub(entry.lastSeen) > s.idleTTL {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}
