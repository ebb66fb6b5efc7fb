package bridge

import "github.com/chazu/objectwire/audit"

// ProxyOps binds the primitive wire operations of §4.2 onto the Dispatcher,
// Codec, and Transport. All arguments that are RemoteIndexes are borrowed:
// ownership on the remote side is unchanged by issuing a command. The
// returned Object (if any) is a new, independently-owned handle.

// sendFrame writes the opcode + packed int-arg header and an optional
// payload, all as one buffered send.
func (b *Bridge) sendFrame(op Opcode, arg int64, payload []byte) error {
	frame := make([]byte, 0, 1+intWidth+len(payload))
	frame = append(frame, byte(op))
	frame = append(frame, packInt(arg)...)
	frame = append(frame, payload...)
	b.emit(audit.KindCommand, byte(op), arg, "")
	return b.t.send(frame)
}

// command issues op/arg/payload and blocks for the terminal reply,
// re-entering the dispatcher to service any inbound calls or drops that
// arrive first.
func (b *Bridge) command(op Opcode, arg int64, payload []byte) (RemoteIndex, error) {
	if err := b.sendFrame(op, arg, payload); err != nil {
		return 0, err
	}
	return b.waitForReply()
}

// makeInt creates a remote integer from v.
func (b *Bridge) makeInt(v int64) (*Object, error) {
	ri, err := b.command(OpMakeInt, v, nil)
	if err != nil {
		return nil, err
	}
	return newObject(b, ri), nil
}

// MakeInt creates a remote integer from v.
func (b *Bridge) MakeInt(v int64) (*Object, error) { return b.makeInt(v) }

// makeBytes creates a remote bytes object.
func (b *Bridge) makeBytes(data []byte) (*Object, error) {
	ri, err := b.command(OpMakeBytes, int64(len(data)), data)
	if err != nil {
		return nil, err
	}
	return newObject(b, ri), nil
}

// MakeBytes creates a remote bytes object.
func (b *Bridge) MakeBytes(data []byte) (*Object, error) { return b.makeBytes(data) }

// makeStr creates a remote string from UTF-8 text.
func (b *Bridge) makeStr(s string) (*Object, error) {
	ri, err := b.command(OpMakeStr, int64(len(s)), []byte(s))
	if err != nil {
		return nil, err
	}
	return newObject(b, ri), nil
}

// MakeStr creates a remote string from UTF-8 text.
func (b *Bridge) MakeStr(s string) (*Object, error) { return b.makeStr(s) }

// makeTuple creates a remote tuple from the given borrowed handles.
func (b *Bridge) makeTuple(items []*Object) (*Object, error) {
	payload := make([]byte, 0, len(items)*intWidth)
	for _, it := range items {
		if err := it.checkOwner(b); err != nil {
			return nil, err
		}
		payload = append(payload, packInt(int64(it.ri))...)
	}
	ri, err := b.command(OpMakeTuple, int64(len(items)), payload)
	if err != nil {
		return nil, err
	}
	return newObject(b, ri), nil
}

// MakeTuple creates a remote tuple from the given borrowed handles.
func (b *Bridge) MakeTuple(items ...*Object) (*Object, error) { return b.makeTuple(items) }

// global looks up a qualified name in the remote namespace.
func (b *Bridge) global(name string) (*Object, error) {
	ri, err := b.command(OpGlobal, int64(len(name)), []byte(name))
	if err != nil {
		return nil, err
	}
	return newObject(b, ri), nil
}

// Global looks up a qualified name in the remote namespace, e.g.
// "sys.argv" or "builtins.len".
func (b *Bridge) Global(name string) (*Object, error) { return b.global(name) }

// registerRemote allocates a remote wrapper object for a host-exposed
// HostIndex, used both to expose host callables (via Lambda) and to tunnel
// host exceptions (via ExceptionBridge).
func (b *Bridge) registerRemote(idx HostIndex) (*Object, error) {
	ri, err := b.command(OpRegister, int64(idx), nil)
	if err != nil {
		return nil, err
	}
	return newObject(b, ri), nil
}

// call invokes fn with the given borrowed positional arguments.
func (b *Bridge) call(fn *Object, args ...*Object) (*Object, error) {
	if err := fn.checkOwner(b); err != nil {
		return nil, err
	}
	payload := make([]byte, 0, intWidth*(1+len(args)))
	payload = append(payload, packInt(int64(fn.ri))...)
	for _, a := range args {
		if err := a.checkOwner(b); err != nil {
			return nil, err
		}
		payload = append(payload, packInt(int64(a.ri))...)
	}
	ri, err := b.command(OpCall, int64(len(args)), payload)
	if err != nil {
		return nil, err
	}
	return newObject(b, ri), nil
}

// Call invokes fn with the given borrowed positional arguments.
func (b *Bridge) Call(fn *Object, args ...*Object) (*Object, error) { return b.call(fn, args...) }

// starcall invokes fn with a positional-args tuple and a kwargs mapping,
// both expanded on the remote side. The int-arg is ignored by convention.
func (b *Bridge) starcall(fn, posArgs, kwargs *Object) (*Object, error) {
	for _, o := range []*Object{fn, posArgs, kwargs} {
		if err := o.checkOwner(b); err != nil {
			return nil, err
		}
	}
	payload := make([]byte, 0, intWidth*3)
	payload = append(payload, packInt(int64(fn.ri))...)
	payload = append(payload, packInt(int64(posArgs.ri))...)
	payload = append(payload, packInt(int64(kwargs.ri))...)
	ri, err := b.command(OpStarcall, -1, payload)
	if err != nil {
		return nil, err
	}
	return newObject(b, ri), nil
}

// Starcall invokes fn with a positional-args tuple and a keyword mapping.
func (b *Bridge) Starcall(fn, posArgs, kwargs *Object) (*Object, error) {
	return b.starcall(fn, posArgs, kwargs)
}

// lambda turns a remote callable-wrapper (produced by registerRemote) into
// a first-class remote function object. The wrapper's HostIndex lifetime is
// tied to the returned function's lifetime.
func (b *Bridge) lambda(wrapper *Object) (*Object, error) {
	if err := wrapper.checkOwner(b); err != nil {
		return nil, err
	}
	ri, err := b.command(OpLambda, int64(wrapper.ri), nil)
	if err != nil {
		return nil, err
	}
	return newObject(b, ri), nil
}

// ExposeCallable registers fn as a host-exposed callable and returns a
// first-class remote function object that invokes it.
func (b *Bridge) ExposeCallable(fn Callable) (*Object, error) {
	idx := b.table.registerCallable(fn)
	wrapper, err := b.registerRemote(idx)
	if err != nil {
		b.table.release(idx)
		return nil, err
	}
	defer wrapper.Close()
	return b.lambda(wrapper)
}

// dup asks the remote side to duplicate handle o, yielding a new,
// independently-owned proxy for the same value.
func (b *Bridge) dup(o *Object) (*Object, error) {
	if err := o.checkOwner(b); err != nil {
		return nil, err
	}
	ri, err := b.command(OpDup, int64(o.ri), nil)
	if err != nil {
		return nil, err
	}
	return newObject(b, ri), nil
}

// getInt reads the integer value of o.
func (b *Bridge) getInt(o *Object) (int64, error) {
	if err := o.checkOwner(b); err != nil {
		return 0, err
	}
	ri, err := b.command(OpGetInt, int64(o.ri), nil)
	if err != nil {
		return 0, err
	}
	return int64(ri), nil
}

// GetInt reads the integer value of o.
func (b *Bridge) GetInt(o *Object) (int64, error) { return b.getInt(o) }

// getBytes reads the byte content of o: the reply carries the length as the
// return int-arg, followed by that many raw bytes.
func (b *Bridge) getBytes(o *Object) ([]byte, error) {
	if err := o.checkOwner(b); err != nil {
		return nil, err
	}
	if err := b.sendFrame(OpGetBytes, int64(o.ri), nil); err != nil {
		return nil, err
	}
	n, err := b.waitForReply()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []byte{}, nil
	}
	data, err := b.t.recv(int(n))
	if err != nil {
		return nil, err
	}
	return data, nil
}

// GetBytes reads the byte content of o.
func (b *Bridge) GetBytes(o *Object) ([]byte, error) { return b.getBytes(o) }

// GetStr reads the UTF-8 text content of o (a remote string coerced to
// bytes and decoded).
func (b *Bridge) GetStr(o *Object) (string, error) {
	data, err := b.getBytes(o)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// drop sends the fire-and-forget release message for ri. It is buffered
// into the outbound stream and flushed opportunistically with the next
// command, per §4.4's ordering rule: drops never interleave mid-frame
// because they are only ever issued between whole frames (proxy
// destructors run outside of command construction).
func (b *Bridge) drop(ri RemoteIndex) error {
	if b.terminated {
		return nil
	}
	return b.sendFrame(OpDrop, int64(ri), nil)
}

// MakeFloat creates a remote float from x, transferred as its canonical
// hexadecimal text representation to preserve bit pattern round-trip for
// all finite values, both signed zeros, both infinities, and NaN.
func (b *Bridge) MakeFloat(x float64) (*Object, error) {
	floatType, err := b.global("builtins.float")
	if err != nil {
		return nil, err
	}
	defer floatType.Close()

	fromHex, err := b.GetAttr(floatType, "fromhex")
	if err != nil {
		return nil, err
	}
	defer fromHex.Close()

	hexStr, err := b.makeStr(hexFloat(x))
	if err != nil {
		return nil, err
	}
	defer hexStr.Close()

	return b.call(fromHex, hexStr)
}

// GetFloat reads o via its canonical hexadecimal text representation and
// parses it back to a float64, preserving bit pattern.
func (b *Bridge) GetFloat(o *Object) (float64, error) {
	floatType, err := b.global("builtins.float")
	if err != nil {
		return 0, err
	}
	defer floatType.Close()

	hexFn, err := b.GetAttr(floatType, "hex")
	if err != nil {
		return 0, err
	}
	defer hexFn.Close()

	textObj, err := b.call(hexFn, o)
	if err != nil {
		return 0, err
	}
	defer textObj.Close()

	strFn, err := b.global("builtins.str")
	if err != nil {
		return 0, err
	}
	defer strFn.Close()

	encoded, err := b.call(strFn, textObj)
	if err != nil {
		return 0, err
	}
	defer encoded.Close()

	s, err := b.GetStr(encoded)
	if err != nil {
		return 0, err
	}
	return parseHexFloat(s)
}
