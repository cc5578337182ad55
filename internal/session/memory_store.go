package session

import "sync"

// MemoryStore is an in-process Store. Controller tests use it directly,
// and it backs any embedding that has no cookie jar to write to.
type MemoryStore struct {
	mu  sync.RWMutex
	rec Record
	set bool
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// IsAuthenticated implements Store.
func (s *MemoryStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set && s.rec.Authenticated
}

// Current implements Store.
func (s *MemoryStore) Current() (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return Record{}, false
	}
	return s.rec, true
}

// SetSession implements Store.
func (s *MemoryStore) SetSession(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = rec
	s.set = true
	return nil
}

// Clear implements Store.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = Record{}
	s.set = false
	return nil
}
