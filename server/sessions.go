package server

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chazu/objectwire/audit"
	"github.com/chazu/objectwire/bridge"
)

// BridgeSession pairs one running Bridge (via its worker) with the handles
// created against it, plus a background sweeper reclaiming handles a
// client forgot to Drop.
type BridgeSession struct {
	ID          string
	Worker      *BridgeWorker
	Handles     *HandleStore
	stopSweeper func()
}

// closeHandles runs obj.Close() for every handle in objs on the worker
// goroutine, since Close talks to the subprocess.
func (s *BridgeSession) closeHandles(objs []*bridge.Object) {
	if len(objs) == 0 {
		return
	}
	s.Worker.Do(func(b *bridge.Bridge) (any, error) {
		for _, o := range objs {
			o.Close()
		}
		return nil, nil
	})
}

// Drop releases a single handle by ID.
func (s *BridgeSession) Drop(id string) {
	if obj, ok := s.Handles.Release(id); ok {
		s.closeHandles([]*bridge.Object{obj})
	}
}

// Close terminates the underlying bridge and stops the sweeper.
func (s *BridgeSession) Close() {
	if s.stopSweeper != nil {
		s.stopSweeper()
	}
	s.Worker.Stop()
}

func (s *BridgeSession) startSweeper(interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				s.closeHandles(s.Handles.Sweep(ttl))
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()
	s.stopSweeper = func() { close(done) }
}

// SessionStore manages one BridgeSession per client, each with its own
// Bridge subprocess.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*BridgeSession
	nextID   atomic.Uint64

	// newBridge constructs the Bridge for a new session; overridable in
	// tests to substitute a fake remote for a real interpreter subprocess.
	newBridge func(bridge.Options) (*bridge.Bridge, error)

	// auditStore, if set, gets an audit.Recorder attached to every session's
	// Bridge so handle/command/exception events are persisted for later
	// analysis (cmd/objectwire-audit). Optional.
	auditStore *audit.Store
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*BridgeSession), newBridge: bridge.New}
}

// NewSessionStoreWithAudit creates a SessionStore whose sessions are each
// observed by an audit.Recorder writing into store.
func NewSessionStoreWithAudit(store *audit.Store) *SessionStore {
	s := NewSessionStore()
	s.auditStore = store
	return s
}

// Create launches a new Bridge and registers a session owning it.
func (s *SessionStore) Create(opts bridge.Options) (*BridgeSession, error) {
	id := fmt.Sprintf("s-%d", s.nextID.Add(1))
	if s.auditStore != nil && opts.Recorder == nil {
		opts.Recorder = audit.NewRecorder(id, s.auditStore)
	}

	b, err := s.newBridge(opts)
	if err != nil {
		return nil, err
	}

	session := &BridgeSession{
		ID:      id,
		Worker:  NewBridgeWorker(b),
		Handles: NewHandleStore(),
	}
	session.startSweeper(5*time.Minute, 30*time.Minute)

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	return session, nil
}

// Get retrieves a session by ID.
func (s *SessionStore) Get(id string) (*BridgeSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// Destroy closes a session's bridge and removes it.
func (s *SessionStore) Destroy(id string) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		session.Close()
	}
}
