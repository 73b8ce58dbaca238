package assessment

import (
	"sync"
)

// Store holds live sessions keyed by attempt id. Operations against one key
// are serialized by a per-entry mutex; different keys run fully in parallel.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*storeEntry
}

type storeEntry struct {
	mu      sync.Mutex
	session *Session
	removed bool
}

func NewStore() *Store {
	return &Store{entries: make(map[string]*storeEntry)}
}

// Put registers a new live session. A second session for the same attempt id
// is an error.
func (st *Store) Put(s *Session) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if e, ok := st.entries[s.AttemptID]; ok && !e.removed {
		return ErrSessionExists
	}
	st.entries[s.AttemptID] = &storeEntry{session: s}
	return nil
}

// Acquire locks the session for the attempt id and returns it together with a
// release func. The caller must call release exactly once. Removal can race
// with a waiting caller, so presence is re-checked after the lock is won.
func (st *Store) Acquire(id string) (*Session, func(), error) {
	st.mu.RLock()
	e, ok := st.entries[id]
	st.mu.RUnlock()
	if !ok {
		return nil, nil, ErrSessionNotFound
	}
	e.mu.Lock()
	if e.removed {
		e.mu.Unlock()
		return nil, nil, ErrSessionNotFound
	}
	return e.session, func() { e.mu.Unlock() }, nil
}

// Remove discards a finalized session. Must be called while holding the
// entry's lock via Acquire.
func (st *Store) Remove(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if e, ok := st.entries[id]; ok {
		e.removed = true
		delete(st.entries, id)
	}
}

// Len reports how many sessions are live.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.entries)
}
