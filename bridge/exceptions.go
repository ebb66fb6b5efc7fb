package bridge

import (
	"fmt"

	"github.com/chazu/objectwire/audit"
)

// wrapHostException registers err as a ForwardedException in the
// RemoteTable, allocates a remote wrapper for its HostIndex, and raises it
// as an instance of the designated wrapper type. The returned RemoteIndex
// is what serviceCall sends back as the exception reply; later, if the
// remote side re-raises that same exception and it comes back to
// raiseRemote, the original err is recovered by identity.
func (b *Bridge) wrapHostException(err error) (RemoteIndex, error) {
	b.emit(audit.KindHostException, 0, 0, err.Error())
	idx := b.table.registerException(err)

	wrapperValue, regErr := b.registerRemote(idx)
	if regErr != nil {
		b.table.release(idx)
		return 0, regErr
	}
	defer wrapperValue.Close()

	instance, callErr := b.call(b.wrapperType, wrapperValue)
	if callErr != nil {
		b.table.release(idx)
		return 0, callErr
	}
	ri, takeErr := instance.Take()
	if takeErr != nil {
		return 0, takeErr
	}
	return ri, nil
}

// raiseRemote is invoked when an 'e' reply frame arrives. It peeks at the
// exception's type: if it is the designated wrapped-host-exception type, it
// extracts the HostIndex, fetches the stored ForwardedException, and
// returns the *original* host error value; otherwise it wraps the remote
// exception as a RemoteError carrying an ExceptionObject proxy with its
// description captured eagerly.
func (b *Bridge) raiseRemote(ri RemoteIndex) error {
	exc := newObject(b, ri)

	isWrapped, err := b.isInstance(exc, b.wrapperType)
	if err != nil {
		exc.Close()
		return err
	}

	if isWrapped {
		defer exc.Close()
		return b.unwrapHostException(exc)
	}

	desc, err := b.repr(exc)
	if err != nil {
		exc.Close()
		return err
	}
	b.emit(audit.KindRemoteException, 0, 0, desc)
	return &RemoteError{
		Exception: newExceptionObject(b, exc.mustTakeRI(), desc),
		Desc:      desc,
	}
}

// mustTakeRI takes ownership out of o without erroring; used only on
// freshly constructed, definitely-live objects inside this package.
func (o *Object) mustTakeRI() RemoteIndex {
	ri, err := o.Take()
	if err != nil {
		panic(fmt.Sprintf("bridge: internal invariant violated: %v", err))
	}
	return ri
}

// unwrapHostException extracts the wrapper's HostIndex via
// `exc.args[0].remote_idx` and recovers the ForwardedException stored at
// that slot. The wrapper (the `R`-opcode result) is a remote-side object
// whose `remote_idx` attribute carries the HostIndex as a plain int; the
// wrapper itself is not directly convertible to an int, so it must not be
// passed to getInt. The RemoteTable slot is released later, when the
// remote side drops its wrapper via an inbound '~' (that object's
// __del__), not here — the wrapper may still be referenced remotely.
func (b *Bridge) unwrapHostException(exc *Object) error {
	args, err := b.GetAttr(exc, "args")
	if err != nil {
		return err
	}
	defer args.Close()

	zero, err := b.makeInt(0)
	if err != nil {
		return err
	}
	defer zero.Close()

	wrapper, err := b.GetItem(args, zero)
	if err != nil {
		return err
	}
	defer wrapper.Close()

	remoteIdx, err := b.GetAttr(wrapper, "remote_idx")
	if err != nil {
		return err
	}
	defer remoteIdx.Close()

	hostIdx, err := b.getInt(remoteIdx)
	if err != nil {
		return err
	}

	forwarded, ok := b.table.exceptionAt(HostIndex(hostIdx))
	if !ok {
		return &ProtocolError{Msg: "wrapped host exception references an unknown host index"}
	}
	return forwarded
}
