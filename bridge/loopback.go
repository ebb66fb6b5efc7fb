package bridge

import (
	"bufio"
	"fmt"
	"io"
)

// loopbackWaiter adapts a caller-supplied exit channel to closeWaiter, for
// a fake remote that isn't a real *exec.Cmd.
type loopbackWaiter struct{ done <-chan error }

func (w loopbackWaiter) wait() error {
	if w.done == nil {
		return nil
	}
	return <-w.done
}

func (w loopbackWaiter) kill() {}

// NewLoopback builds a Bridge over an already-connected pair of pipes
// instead of spawning a subprocess, performing the same handshake and
// wrapper-type setup New does. done, if non-nil, is consulted by Terminate
// to learn the fake remote's exit status; a nil channel makes Terminate
// always succeed. This exists for packages embedding a Bridge that want to
// test against a fake wire-protocol peer without a real interpreter.
func NewLoopback(hostReadsFrom io.Reader, hostWritesTo io.WriteCloser, done <-chan error) (*Bridge, error) {
	t := &transport{
		stdin:   hostWritesTo,
		stdinW:  bufio.NewWriter(hostWritesTo),
		stdout:  bufio.NewReader(hostReadsFrom),
		proc:    loopbackWaiter{done: done},
		started: true,
	}

	handshake, err := t.recv(1)
	if err != nil {
		t.kill()
		return nil, err
	}
	if handshake[0] != '+' {
		t.kill()
		return nil, &TransportError{Op: "handshake", Err: fmt.Errorf("unexpected startup byte %q", handshake[0])}
	}

	b := &Bridge{
		t:         t,
		table:     newRemoteTable(),
		operators: make(map[string]*Object),
	}

	wrapperType, err := b.createWrapperType()
	if err != nil {
		t.kill()
		return nil, err
	}
	b.wrapperType = wrapperType

	return b, nil
}
