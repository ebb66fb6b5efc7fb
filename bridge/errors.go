// Package bridge implements a cross-language object bridge: a host process
// drives a scripting interpreter subprocess over two pipes, treating values
// that live in the subprocess as if they were native handles.
package bridge

import "fmt"

// TransportError reports a pipe I/O or subprocess-exit failure. It is fatal:
// once observed, the Bridge latches it and every later operation fails with
// the same error.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("bridge: transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError reports a received frame that is not one of the permitted
// opcodes, or that carries an impossible payload size. Treated like a
// TransportError: fatal and latched.
type ProtocolError struct {
	Msg string
}

func (e *ProtocolError) Error() string { return "bridge: protocol error: " + e.Msg }

// RemoteError surfaces a well-formed exception reply from the remote side.
// It carries the exception proxy and its eagerly captured description, so
// callers can inspect it even after the proxy's originating Bridge is gone.
type RemoteError struct {
	Exception *ExceptionObject
	Desc      string
}

func (e *RemoteError) Error() string { return "bridge: remote exception: " + e.Desc }

// MisuseError reports an API-level usage mistake caught before any bytes hit
// the wire, e.g. passing a proxy produced by a different Bridge.
type MisuseError struct {
	Msg string
}

func (e *MisuseError) Error() string { return "bridge: misuse: " + e.Msg }

// isFatal reports whether err is a TransportError or ProtocolError, either of
// which permanently disables a Bridge.
func isFatal(err error) bool {
	switch err.(type) {
	case *TransportError, *ProtocolError:
		return true
	default:
		return false
	}
}
