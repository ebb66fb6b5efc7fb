package server

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	objectwirev1 "github.com/chazu/objectwire/gen/objectwire/v1"
)

func bg() context.Context { return context.Background() }

func connectReq[T any](msg *T) *connect.Request[T] { return connect.NewRequest(msg) }

func newTestBridgeService(t *testing.T) (*BridgeService, *SessionStore) {
	t.Helper()
	sessions := newTestSessionStore()
	return NewBridgeService(sessions), sessions
}

func TestBridgeServiceNewSessionAndClose(t *testing.T) {
	svc, sessions := newTestBridgeService(t)

	resp, err := svc.NewSession(bg(), connectReq(&objectwirev1.NewSessionRequest{}))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	id := resp.Msg.SessionId
	if id == "" {
		t.Fatal("expected a non-empty session ID")
	}
	if _, ok := sessions.Get(id); !ok {
		t.Fatal("expected the session to be registered")
	}

	if _, err := svc.CloseSession(bg(), connectReq(&objectwirev1.CloseSessionRequest{SessionId: id})); err != nil {
		t.Fatalf("CloseSession: %v", err)
	}
	if _, ok := sessions.Get(id); ok {
		t.Fatal("expected the session to be gone after CloseSession")
	}
}

func TestBridgeServiceGlobalAndCall(t *testing.T) {
	svc, sessions := newTestBridgeService(t)

	newResp, err := svc.NewSession(bg(), connectReq(&objectwirev1.NewSessionRequest{}))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	sessionID := newResp.Msg.SessionId
	defer sessions.Destroy(sessionID)

	globalResp, err := svc.Global(bg(), connectReq(&objectwirev1.GlobalRequest{
		SessionId:     sessionID,
		QualifiedName: "builtins.len",
	}))
	if err != nil {
		t.Fatalf("Global: %v", err)
	}
	fnHandle := globalResp.Msg.Handle
	if fnHandle == "" {
		t.Fatal("expected a non-empty function handle")
	}

	argResp, err := svc.Global(bg(), connectReq(&objectwirev1.GlobalRequest{
		SessionId:     sessionID,
		QualifiedName: "some.arg",
	}))
	if err != nil {
		t.Fatalf("Global (arg): %v", err)
	}

	callResp, err := svc.Call(bg(), connectReq(&objectwirev1.CallRequest{
		SessionId:  sessionID,
		FnHandle:   fnHandle,
		ArgHandles: []string{argResp.Msg.Handle},
	}))
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if callResp.Msg.Handle == "" {
		t.Fatal("expected a non-empty result handle")
	}
}

func TestBridgeServiceGetInt(t *testing.T) {
	svc, sessions := newTestBridgeService(t)

	newResp, err := svc.NewSession(bg(), connectReq(&objectwirev1.NewSessionRequest{}))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	sessionID := newResp.Msg.SessionId
	defer sessions.Destroy(sessionID)

	globalResp, err := svc.Global(bg(), connectReq(&objectwirev1.GlobalRequest{
		SessionId:     sessionID,
		QualifiedName: "some.int",
	}))
	if err != nil {
		t.Fatalf("Global: %v", err)
	}

	intResp, err := svc.GetInt(bg(), connectReq(&objectwirev1.GetIntRequest{
		SessionId: sessionID,
		Handle:    globalResp.Msg.Handle,
	}))
	if err != nil {
		t.Fatalf("GetInt: %v", err)
	}
	// The fake remote answers GetInt with whatever was seeded for that
	// RemoteIndex, defaulting to zero when nothing was seeded.
	if intResp.Msg.Value != 0 {
		t.Fatalf("expected the default canned int 0, got %d", intResp.Msg.Value)
	}
}

func TestBridgeServiceUnknownSessionIsNotFound(t *testing.T) {
	svc, _ := newTestBridgeService(t)

	_, err := svc.Global(bg(), connectReq(&objectwirev1.GlobalRequest{
		SessionId:     "no-such-session",
		QualifiedName: "x",
	}))
	if err == nil {
		t.Fatal("expected an error for an unknown session")
	}
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Fatalf("expected CodeNotFound, got %v", connect.CodeOf(err))
	}
}

func TestBridgeServiceUnknownHandleIsNotFound(t *testing.T) {
	svc, sessions := newTestBridgeService(t)

	newResp, err := svc.NewSession(bg(), connectReq(&objectwirev1.NewSessionRequest{}))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	sessionID := newResp.Msg.SessionId
	defer sessions.Destroy(sessionID)

	_, err = svc.GetInt(bg(), connectReq(&objectwirev1.GetIntRequest{
		SessionId: sessionID,
		Handle:    "no-such-handle",
	}))
	if err == nil {
		t.Fatal("expected an error for an unknown handle")
	}
	if connect.CodeOf(err) != connect.CodeNotFound {
		t.Fatalf("expected CodeNotFound, got %v", connect.CodeOf(err))
	}
}

func TestBridgeServiceDrop(t *testing.T) {
	svc, sessions := newTestBridgeService(t)

	newResp, err := svc.NewSession(bg(), connectReq(&objectwirev1.NewSessionRequest{}))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	sessionID := newResp.Msg.SessionId
	defer sessions.Destroy(sessionID)

	globalResp, err := svc.Global(bg(), connectReq(&objectwirev1.GlobalRequest{
		SessionId:     sessionID,
		QualifiedName: "x",
	}))
	if err != nil {
		t.Fatalf("Global: %v", err)
	}

	if _, err := svc.Drop(bg(), connectReq(&objectwirev1.DropRequest{
		SessionId: sessionID,
		Handle:    globalResp.Msg.Handle,
	})); err != nil {
		t.Fatalf("Drop: %v", err)
	}

	session, _ := sessions.Get(sessionID)
	if _, ok := session.Handles.Lookup(globalResp.Msg.Handle); ok {
		t.Fatal("expected the handle to be gone after Drop")
	}
}
