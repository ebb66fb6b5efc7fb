// Package server puts a supervisory layer in front of the single-threaded,
// non-reentrant bridge.Bridge: one BridgeWorker goroutine owns exactly one
// Bridge and serializes concurrent external requests onto it, so multiple
// network clients can share a session without violating the core's
// single-goroutine contract.
package server

import (
	"fmt"

	"github.com/chazu/objectwire/bridge"
)

// bridgeRequest is a unit of work to run on the worker goroutine.
type bridgeRequest struct {
	fn   func(*bridge.Bridge) (any, error)
	done chan bridgeResult
}

type bridgeResult struct {
	value any
	err   error
}

// BridgeWorker serializes all access to one Bridge through a single
// goroutine, exactly as vmRequest/VMWorker does for a single VM.
type BridgeWorker struct {
	b        *bridge.Bridge
	requests chan bridgeRequest
	quit     chan struct{}
}

// NewBridgeWorker starts the worker goroutine over an already-constructed
// Bridge.
func NewBridgeWorker(b *bridge.Bridge) *BridgeWorker {
	w := &BridgeWorker{
		b:        b,
		requests: make(chan bridgeRequest, 64),
		quit:     make(chan struct{}),
	}
	go w.loop()
	return w
}

func (w *BridgeWorker) loop() {
	for {
		select {
		case req := <-w.requests:
			req.done <- w.execute(req.fn)
		case <-w.quit:
			return
		}
	}
}

// execute runs fn against the bridge, recovering panics into an error the
// way a broken RPC handler must not be allowed to crash the process.
func (w *BridgeWorker) execute(fn func(*bridge.Bridge) (any, error)) bridgeResult {
	var result bridgeResult
	func() {
		defer func() {
			if r := recover(); r != nil {
				result.err = fmt.Errorf("bridge worker: %v", r)
			}
		}()
		result.value, result.err = fn(w.b)
	}()
	return result
}

// Do submits fn for execution on the worker goroutine and blocks until it
// completes.
func (w *BridgeWorker) Do(fn func(*bridge.Bridge) (any, error)) (any, error) {
	req := bridgeRequest{fn: fn, done: make(chan bridgeResult, 1)}
	w.requests <- req
	result := <-req.done
	return result.value, result.err
}

// Stop terminates the underlying bridge on the worker goroutine, then shuts
// down the worker goroutine.
func (w *BridgeWorker) Stop() {
	w.Do(func(b *bridge.Bridge) (any, error) {
		b.Close()
		return nil, nil
	})
	close(w.quit)
}

// Bridge returns the underlying Bridge, for callers that need read-only
// metadata (e.g. Terminated) without going through Do.
func (w *BridgeWorker) Bridge() *bridge.Bridge { return w.b }
