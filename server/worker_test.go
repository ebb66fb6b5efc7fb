package server

import (
	"errors"
	"testing"

	"github.com/chazu/objectwire/bridge"
)

func TestBridgeWorkerDoRunsOnWorkerGoroutine(t *testing.T) {
	b, _, err := newTestBridge()
	if err != nil {
		t.Fatalf("newTestBridge: %v", err)
	}
	w := NewBridgeWorker(b)
	defer w.Stop()

	obj, err := w.Do(func(b *bridge.Bridge) (any, error) {
		return b.Global("some.name")
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if _, ok := obj.(*bridge.Object); !ok {
		t.Fatalf("expected *bridge.Object, got %T", obj)
	}
}

func TestBridgeWorkerRecoversPanics(t *testing.T) {
	b, _, err := newTestBridge()
	if err != nil {
		t.Fatalf("newTestBridge: %v", err)
	}
	w := NewBridgeWorker(b)
	defer w.Stop()

	_, err = w.Do(func(b *bridge.Bridge) (any, error) {
		panic("boom")
	})
	if err == nil {
		t.Fatal("expected an error from a panicking task")
	}

	// The worker must still be alive for the next request.
	_, err = w.Do(func(b *bridge.Bridge) (any, error) {
		return b.Global("still.alive")
	})
	if err != nil {
		t.Fatalf("worker did not survive a panic: %v", err)
	}
}

func TestBridgeWorkerStopClosesBridge(t *testing.T) {
	b, _, err := newTestBridge()
	if err != nil {
		t.Fatalf("newTestBridge: %v", err)
	}
	w := NewBridgeWorker(b)
	w.Stop()

	if !b.Terminated() {
		t.Fatal("expected bridge to be terminated after Stop")
	}
}

func TestBridgeWorkerPropagatesError(t *testing.T) {
	b, _, err := newTestBridge()
	if err != nil {
		t.Fatalf("newTestBridge: %v", err)
	}
	w := NewBridgeWorker(b)
	defer w.Stop()

	sentinel := errors.New("task failure")
	_, err = w.Do(func(b *bridge.Bridge) (any, error) {
		return nil, sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
}
