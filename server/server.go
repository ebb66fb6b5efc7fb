package server

import (
	"fmt"
	"net/http"

	"github.com/chazu/objectwire/audit"
	"github.com/chazu/objectwire/gen/objectwire/v1/objectwirev1connect"
)

// BridgeServer serves the BridgeService over both gRPC (binary protobuf)
// and Connect (HTTP/JSON) on the same port. Unlike a server fronting one
// shared interpreter, each session here owns its own subprocess, so the
// server itself holds no Bridge directly, only the SessionStore that
// creates and tracks them.
type BridgeServer struct {
	sessions *SessionStore
	mux      *http.ServeMux
}

// New creates a BridgeServer with a fresh SessionStore.
func New() *BridgeServer {
	return newServer(NewSessionStore())
}

// NewWithAudit creates a BridgeServer whose sessions are each observed by
// an audit.Recorder writing into store.
func NewWithAudit(store *audit.Store) *BridgeServer {
	return newServer(NewSessionStoreWithAudit(store))
}

func newServer(sessions *SessionStore) *BridgeServer {
	svc := NewBridgeService(sessions)

	mux := http.NewServeMux()
	path, handler := objectwirev1connect.NewBridgeServiceHandler(svc)
	mux.Handle(path, handler)

	return &BridgeServer{sessions: sessions, mux: mux}
}

// ListenAndServe starts the HTTP server on the given address. The address
// should be in the form "host:port" or ":port".
func (s *BridgeServer) ListenAndServe(addr string) error {
	fmt.Printf("objectwire bridge server listening on %s\n", addr)
	fmt.Printf("  Connect (HTTP/JSON): http://%s/objectwire.v1.BridgeService/NewSession\n", addr)
	fmt.Printf("  gRPC (binary):       grpc://%s\n", addr)
	// gRPC needs HTTP/2; without TLS that means serving h2c next to HTTP/1.1.
	var protocols http.Protocols
	protocols.SetHTTP1(true)
	protocols.SetUnencryptedHTTP2(true)
	srv := &http.Server{Addr: addr, Handler: s.mux, Protocols: &protocols}
	return srv.ListenAndServe()
}

// Stop closes every outstanding session and its subprocess.
func (s *BridgeServer) Stop() {
	s.sessions.mu.Lock()
	ids := make([]string, 0, len(s.sessions.sessions))
	for id := range s.sessions.sessions {
		ids = append(ids, id)
	}
	s.sessions.mu.Unlock()

	for _, id := range ids {
		s.sessions.Destroy(id)
	}
}
