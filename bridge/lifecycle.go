package bridge

import (
	"fmt"
	"time"

	"github.com/tliron/commonlog"

	"github.com/chazu/objectwire/audit"
)

var lifecycleLog = commonlog.GetLogger("objectwire.bridge.lifecycle")

// Bridge owns the subprocess, its two pipes, and the host-side tables. It is
// strictly single-threaded and cooperative: at any moment exactly one side
// is running while the other blocks on its pipe (spec.md §5). A Bridge must
// never be used from more than one goroutine at a time.
type Bridge struct {
	t     *transport
	table *remoteTable

	terminated bool

	// wrapperType is the designated remote exception type, created once at
	// startup, whose sole purpose is to tunnel a host exception across a
	// remote try/except and back by identity.
	wrapperType *Object

	// operators caches the remote function object for each operator name in
	// operatorTable, resolved lazily on first use.
	operators map[string]*Object

	// stopIteration lazily caches the remote StopIteration class.
	stopIteration *Object

	// Options recorded at construction time, for diagnostics.
	interpreterPath string
	interpreterArgs []string

	// recorder observes handle creation/drop, outbound commands, and
	// exceptions crossing the boundary, without altering bridge semantics.
	// A nil recorder (the default) records nothing: emit checks it first
	// and returns at once.
	recorder *audit.Recorder
}

// Options configures a new Bridge.
type Options struct {
	// InterpreterPath is the executable to launch, overridden by
	// $OBJECTWIRE_INTERPRETER if set.
	InterpreterPath string
	// InterpreterArgs are extra CLI arguments prepended before the
	// mandatory integer-width argument.
	InterpreterArgs []string
	// Recorder, if set, observes this Bridge's lifecycle events for
	// post-hoc debugging of drop-balance and free-list-soundness. Optional.
	Recorder *audit.Recorder
}

// emit records one lifecycle event if a Recorder is attached; a no-op
// otherwise. The timestamp is read here, at the call site, rather than
// inside package audit, so audit itself stays free of wall-clock reads.
func (b *Bridge) emit(kind audit.Kind, opcode byte, arg int64, detail string) {
	if b.recorder == nil {
		return
	}
	_ = b.recorder.Emit(time.Now().UnixNano(), audit.Record{
		Kind:   kind,
		Opcode: opcode,
		Arg:    arg,
		Detail: detail,
	})
}

// New launches the subprocess, negotiates the integer width, waits for the
// single '+' liveness byte, and creates the designated exception wrapper
// type. It returns a running Bridge or a TransportError.
func New(opts Options) (*Bridge, error) {
	t, err := startTransport(opts.InterpreterPath, opts.InterpreterArgs)
	if err != nil {
		return nil, err
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
		t:               t,
		table:           newRemoteTable(),
		operators:       make(map[string]*Object),
		interpreterPath: opts.InterpreterPath,
		interpreterArgs: opts.InterpreterArgs,
		recorder:        opts.Recorder,
	}

	wrapperType, err := b.createWrapperType()
	if err != nil {
		t.kill()
		return nil, err
	}
	b.wrapperType = wrapperType

	lifecycleLog.Debugf("bridge running, interpreter=%s", opts.InterpreterPath)
	return b, nil
}

// isTerminated reports whether the Bridge has completed clean termination.
// Exception proxies inspect this in their destructor to skip a drop that
// would otherwise write to a closed pipe.
func (b *Bridge) isTerminated() bool { return b.terminated }

// Terminated reports whether this Bridge has completed clean termination.
func (b *Bridge) Terminated() bool { return b.isTerminated() }

// Terminate sends the designated final return frame, closes the write end,
// waits for the child, and marks the Bridge terminated. Post-termination,
// proxy destructors are no-ops and the RemoteTable is cleared. Per spec.md
// §9's open question, the host never reads again after sending this frame:
// any `r` the remote receives outside of an active command is treated by
// convention as the termination signal regardless of payload, so racing a
// stray buffered reply against this frame cannot occur if the host holds up
// its end of that contract.
func (b *Bridge) Terminate() error {
	if b.terminated {
		return nil
	}
	frame := append([]byte{byte(OpReturn)}, packInt(terminationSentinel)...)
	sendErr := b.t.send(frame)
	quitErr := b.t.quit()
	b.terminated = true
	b.table.clear()
	if sendErr != nil {
		return sendErr
	}
	return quitErr
}

// Close is the destructor path: it must not raise, so it attempts a
// best-effort clean termination and only logs a failure. Terminate's quit
// has already closed stdin and waited for the child either way, so the
// fallback kill finds nothing left to stop and the Bridge ends terminated.
func (b *Bridge) Close() {
	if b.terminated {
		return
	}
	if err := b.Terminate(); err != nil {
		lifecycleLog.Debugf("best-effort terminate failed, killing: %v", err)
		b.t.kill()
		b.terminated = true
		b.table.clear()
	}
}

// createWrapperType builds the designated remote exception type via the
// builtin `type(name, (BaseException,), {})` idiom, using only the core
// wire ops (Global lookup + Call), exactly as spec.md §4.7 specifies.
func (b *Bridge) createWrapperType() (*Object, error) {
	typeFn, err := b.global("builtins.type")
	if err != nil {
		return nil, err
	}
	defer typeFn.Close()

	name, err := b.makeStr("HostException")
	if err != nil {
		return nil, err
	}
	defer name.Close()

	baseExc, err := b.global("builtins.BaseException")
	if err != nil {
		return nil, err
	}
	defer baseExc.Close()

	bases, err := b.makeTuple([]*Object{baseExc})
	if err != nil {
		return nil, err
	}
	defer bases.Close()

	// The three-argument form of type() needs an explicit empty mapping;
	// builtins.dict called with no arguments produces one directly.
	dictFn, err := b.global("builtins.dict")
	if err != nil {
		return nil, err
	}
	defer dictFn.Close()
	ns, err := b.call(dictFn)
	if err != nil {
		return nil, err
	}
	defer ns.Close()

	return b.call(typeFn, name, bases, ns)
}
