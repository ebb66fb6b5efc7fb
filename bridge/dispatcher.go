package bridge

import "github.com/tliron/commonlog"

var dispatchLog = commonlog.GetLogger("objectwire.bridge.dispatcher")

// reply is the terminal frame a waitForReply call is looking for: either a
// returned int-arg (a RemoteIndex, a plain integer, or a byte length
// depending on the opcode that triggered the wait) or an exception.
type reply struct {
	value RemoteIndex
	err   error
}

// waitForReply is the heart of the bridge: flush, block for one frame, and
// either return the awaited reply or recurse to service an inbound call or
// drop first. It is not reentrant across host goroutines, but it is
// reentrant across host↔remote stack frames — a host callable invoked
// during a dispatch may itself drive further commands, each nested call
// observing the reply meant for it rather than an outer frame, because the
// int-arg it reads comes from its own recv, not shared state.
func (b *Bridge) waitForReply() (RemoteIndex, error) {
	for {
		if err := b.t.flush(); err != nil {
			return 0, err
		}
		op, arg, err := b.readFrame()
		if err != nil {
			return 0, err
		}
		switch op {
		case OpInboundCall:
			if err := b.serviceCall(HostIndex(arg)); err != nil {
				return 0, err
			}
		case OpDrop:
			b.table.release(HostIndex(arg))
		case OpReturn:
			return RemoteIndex(arg), nil
		case OpException:
			return 0, b.raiseRemote(RemoteIndex(arg))
		default:
			// Latch it like a TransportError so every later operation fails
			// fast instead of reading from a desynchronized stream.
			perr := &ProtocolError{Msg: "unexpected opcode while awaiting reply: " + string(op)}
			b.t.mu.Lock()
			if b.t.fatal == nil {
				b.t.fatal = perr
			}
			b.t.mu.Unlock()
			return 0, perr
		}
	}
}

// readFrame reads one opcode byte and its packed int argument.
func (b *Bridge) readFrame() (Opcode, int64, error) {
	head, err := b.t.recv(1 + intWidth)
	if err != nil {
		return 0, 0, err
	}
	return Opcode(head[0]), unpackInt(head[1:]), nil
}

// serviceCall reads the argument count and that many RemoteIndex values,
// cooks each into an owning *Object (mirroring the original's handle_call),
// looks up the Callable at idx, and runs it. Exactly one of a return or
// exception frame is sent before this returns, matching the wire contract
// even when the callable itself fails.
func (b *Bridge) serviceCall(idx HostIndex) error {
	argc, err := b.readInt()
	if err != nil {
		return err
	}
	args := make([]*Object, argc)
	for i := range args {
		v, err := b.readInt()
		if err != nil {
			return err
		}
		args[i] = newObject(b, RemoteIndex(v))
	}

	ret, callErr := b.table.invoke(b, idx, args)
	if callErr == nil {
		// The remote allocates a fresh slot for ret (it is never the same
		// slot as one of args); the 'r' frame only lets the remote read it,
		// it doesn't free it. Drop it ourselves once sent, the same way the
		// original's cmd_ret temporary is dropped right after constructing
		// the reply (snaketongs.hpp:705,1136).
		if err := b.sendReturn(ret); err != nil {
			return err
		}
		return b.drop(ret)
	}

	if isFatal(callErr) {
		return callErr
	}

	var remoteErr *RemoteError
	if asRemoteError(callErr, &remoteErr) {
		return b.sendException(remoteErr.Exception.ri)
	}

	// Any other host error is forwarded: register it as a ForwardedException
	// and wrap it as a designated remote type so re-raising it back on the
	// host later restores the original value by identity.
	wrapperRI, err := b.wrapHostException(callErr)
	if err != nil {
		return err
	}
	// Same leak as the return path above: wrapperRI owns a fresh slot of
	// its own that nothing else will ever drop.
	if err := b.sendException(wrapperRI); err != nil {
		return err
	}
	return b.drop(wrapperRI)
}

// asRemoteError is a small typed-error helper (errors.As without importing
// errors here, since RemoteError is always the concrete top-level type
// produced by raiseRemote).
func asRemoteError(err error, target **RemoteError) bool {
	if re, ok := err.(*RemoteError); ok {
		*target = re
		return true
	}
	return false
}

// readInt reads one packed integer with no leading opcode, used for
// opcode-specific payload fields (argument counts, RemoteIndex lists).
func (b *Bridge) readInt() (int64, error) {
	buf, err := b.t.recv(intWidth)
	if err != nil {
		return 0, err
	}
	return unpackInt(buf), nil
}

// sendReturn issues the reply frame for a serviced inbound call.
func (b *Bridge) sendReturn(ri RemoteIndex) error {
	frame := append([]byte{byte(OpReturn)}, packInt(int64(ri))...)
	return b.t.send(frame)
}

// sendException issues the exception reply frame for a serviced inbound
// call, carrying the RemoteIndex of the exception wrapper.
func (b *Bridge) sendException(ri RemoteIndex) error {
	frame := append([]byte{byte(OpException)}, packInt(int64(ri))...)
	return b.t.send(frame)
}
