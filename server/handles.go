package server

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chazu/objectwire/bridge"
)

// handle is a server-side reference to a live bridge.Object. Keeping the
// object alive here, rather than in the caller's frame, is what lets a
// handle ID cross the network and be reused across multiple RPCs.
type handle struct {
	id       string
	obj      *bridge.Object
	created  time.Time
	lastUsed time.Time
}

// HandleStore maps opaque string IDs to live bridge.Object handles, scoped
// to a single session's Bridge, so that network clients never see a
// RemoteIndex directly.
type HandleStore struct {
	mu      sync.RWMutex
	handles map[string]*handle
	nextID  atomic.Uint64
}

// NewHandleStore creates an empty HandleStore.
func NewHandleStore() *HandleStore {
	return &HandleStore{handles: make(map[string]*handle)}
}

// Create registers obj under a new opaque ID and takes ownership of it: the
// caller must not also Close obj.
func (s *HandleStore) Create(obj *bridge.Object) string {
	id := fmt.Sprintf("h-%d", s.nextID.Add(1))

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.handles[id] = &handle{id: id, obj: obj, created: now, lastUsed: now}
	return id
}

// Lookup retrieves the object for a handle ID without transferring
// ownership; the returned *bridge.Object must not be Closed by the caller.
func (s *HandleStore) Lookup(id string) (*bridge.Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.handles[id]
	if !ok {
		return nil, false
	}
	h.lastUsed = time.Now()
	return h.obj, true
}

// Release removes a handle and returns its object so the caller can Close
// it. Closing a bridge.Object talks to the subprocess, so it must run on
// the owning BridgeWorker's goroutine, not here under HandleStore's lock;
// that's why Release, unlike Create/Lookup, hands ownership back instead of
// closing directly.
func (s *HandleStore) Release(id string) (*bridge.Object, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.handles[id]
	if !ok {
		return nil, false
	}
	delete(s.handles, id)
	return h.obj, true
}

// Sweep removes handles that haven't been accessed within ttl and returns
// their objects for the caller to Close on the worker goroutine.
func (s *HandleStore) Sweep(ttl time.Duration) []*bridge.Object {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-ttl)
	var removed []*bridge.Object
	for id, h := range s.handles {
		if h.lastUsed.Before(cutoff) {
			removed = append(removed, h.obj)
			delete(s.handles, id)
		}
	}
	return removed
}
