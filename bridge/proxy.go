package bridge

import (
	"runtime"

	"github.com/chazu/objectwire/audit"
)

// Object is a host reference to exactly one live value on the remote side.
// It is move-only: copying an Object would double-drop its RemoteIndex, so
// the zero value and Take are the only supported ways to transfer ownership.
// A finalizer backstops callers who forget to Close, mirroring a destructor
// in a language with deterministic destruction.
type Object struct {
	bridge *Bridge
	ri     RemoteIndex
	live   bool
}

// newObject wraps ri as a live, owned proxy produced by b.
func newObject(b *Bridge, ri RemoteIndex) *Object {
	o := &Object{bridge: b, ri: ri, live: true}
	runtime.SetFinalizer(o, (*Object).finalize)
	b.emit(audit.KindHandleCreated, 0, int64(ri), "")
	return o
}

// IsNull reports whether this proxy has been transferred out (via Take) or
// already closed.
func (o *Object) IsNull() bool { return o == nil || !o.live }

// Bridge returns the Bridge that produced this proxy.
func (o *Object) Bridge() *Bridge { return o.bridge }

func (o *Object) checkOwner(b *Bridge) error {
	if o.IsNull() {
		return &MisuseError{Msg: "use of a null proxy"}
	}
	if o.bridge != b {
		return &MisuseError{Msg: "proxy used with a different bridge than the one that produced it"}
	}
	return nil
}

// Take transfers ownership out of o, leaving it null, and returns the
// RemoteIndex for the caller to consume (e.g. bind into a command payload).
func (o *Object) Take() (RemoteIndex, error) {
	if o.IsNull() {
		return 0, &MisuseError{Msg: "Take on a null proxy"}
	}
	ri := o.ri
	o.live = false
	runtime.SetFinalizer(o, nil)
	return ri, nil
}

// Dup asks the remote side to duplicate this handle, returning an
// independently-owned new proxy.
func (o *Object) Dup() (*Object, error) {
	if o.IsNull() {
		return nil, &MisuseError{Msg: "Dup on a null proxy"}
	}
	return o.bridge.dup(o)
}

// Close releases the proxy, sending a drop message unless the Bridge has
// already terminated. Safe to call more than once.
func (o *Object) Close() error {
	if o.IsNull() {
		return nil
	}
	o.live = false
	runtime.SetFinalizer(o, nil)
	o.bridge.emit(audit.KindHandleDropped, 0, int64(o.ri), "")
	return o.bridge.drop(o.ri)
}

// finalize is the SetFinalizer callback: it must not panic or block, so it
// swallows any error from the drop.
func (o *Object) finalize() {
	if o.IsNull() {
		return
	}
	o.live = false
	o.bridge.emit(audit.KindHandleDropped, 0, int64(o.ri), "")
	_ = o.bridge.drop(o.ri)
}

// ExceptionObject is a proxy subtype permitted to outlive its Bridge's
// termination or destruction. Its description is captured eagerly at
// construction so it remains valid post-termination; calling any
// remote-interacting method on it after termination is undefined.
type ExceptionObject struct {
	Object
	desc string
}

func newExceptionObject(b *Bridge, ri RemoteIndex, desc string) *ExceptionObject {
	e := &ExceptionObject{Object: Object{bridge: b, ri: ri, live: true}, desc: desc}
	runtime.SetFinalizer(e, (*ExceptionObject).finalize)
	return e
}

// Description returns the eagerly captured what()-style text.
func (e *ExceptionObject) Description() string { return e.desc }

// finalize skips the drop entirely once the owning Bridge has published its
// terminated flag, per the "proxies outliving the bridge" weak-reference
// discipline.
func (e *ExceptionObject) finalize() {
	if e.IsNull() {
		return
	}
	e.live = false
	if e.bridge.isTerminated() {
		return
	}
	_ = e.bridge.drop(e.ri)
}
