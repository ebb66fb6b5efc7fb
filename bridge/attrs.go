package bridge

// Attribute and item access are not core wire opcodes: per §6's host surface
// contract they are realized on top of Global lookup and Call, the same way
// operator overloads are (operators.go). These are the small building
// blocks ExceptionBridge and the ergonomic surface share.

func (b *Bridge) builtin(name string) (*Object, error) { return b.global("builtins." + name) }

// GetAttr fetches obj.name.
func (b *Bridge) GetAttr(obj *Object, name string) (*Object, error) {
	fn, err := b.builtin("getattr")
	if err != nil {
		return nil, err
	}
	defer fn.Close()
	nameObj, err := b.makeStr(name)
	if err != nil {
		return nil, err
	}
	defer nameObj.Close()
	return b.call(fn, obj, nameObj)
}

// SetAttr sets obj.name = value.
func (b *Bridge) SetAttr(obj *Object, name string, value *Object) error {
	fn, err := b.builtin("setattr")
	if err != nil {
		return err
	}
	defer fn.Close()
	nameObj, err := b.makeStr(name)
	if err != nil {
		return err
	}
	defer nameObj.Close()
	res, err := b.call(fn, obj, nameObj, value)
	if err != nil {
		return err
	}
	res.Close()
	return nil
}

// HasAttr reports whether obj has an attribute named name.
func (b *Bridge) HasAttr(obj *Object, name string) (bool, error) {
	fn, err := b.builtin("hasattr")
	if err != nil {
		return false, err
	}
	defer fn.Close()
	nameObj, err := b.makeStr(name)
	if err != nil {
		return false, err
	}
	defer nameObj.Close()
	res, err := b.call(fn, obj, nameObj)
	if err != nil {
		return false, err
	}
	defer res.Close()
	v, err := b.getInt(res)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// DelAttr deletes obj.name.
func (b *Bridge) DelAttr(obj *Object, name string) error {
	fn, err := b.builtin("delattr")
	if err != nil {
		return err
	}
	defer fn.Close()
	nameObj, err := b.makeStr(name)
	if err != nil {
		return err
	}
	defer nameObj.Close()
	res, err := b.call(fn, obj, nameObj)
	if err != nil {
		return err
	}
	res.Close()
	return nil
}

// GetItem fetches obj[key].
func (b *Bridge) GetItem(obj, key *Object) (*Object, error) {
	fn, err := b.operatorFn("getitem")
	if err != nil {
		return nil, err
	}
	return b.call(fn, obj, key)
}

// SetItem sets obj[key] = value.
func (b *Bridge) SetItem(obj, key, value *Object) error {
	fn, err := b.operatorFn("setitem")
	if err != nil {
		return err
	}
	res, err := b.call(fn, obj, key, value)
	if err != nil {
		return err
	}
	res.Close()
	return nil
}

// DelItem deletes obj[key].
func (b *Bridge) DelItem(obj, key *Object) error {
	fn, err := b.operatorFn("delitem")
	if err != nil {
		return err
	}
	res, err := b.call(fn, obj, key)
	if err != nil {
		return err
	}
	res.Close()
	return nil
}

// HasItem reports whether key is present in obj (via `operator.contains`).
func (b *Bridge) HasItem(obj, key *Object) (bool, error) {
	fn, err := b.operatorFn("contains")
	if err != nil {
		return false, err
	}
	res, err := b.call(fn, obj, key)
	if err != nil {
		return false, err
	}
	defer res.Close()
	v, err := b.getInt(res)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// isInstance reports whether obj is an instance of class.
func (b *Bridge) isInstance(obj, class *Object) (bool, error) {
	fn, err := b.builtin("isinstance")
	if err != nil {
		return false, err
	}
	defer fn.Close()
	res, err := b.call(fn, obj, class)
	if err != nil {
		return false, err
	}
	defer res.Close()
	v, err := b.getInt(res)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// repr computes Python-style repr(obj) as a Go string.
func (b *Bridge) repr(obj *Object) (string, error) {
	fn, err := b.builtin("repr")
	if err != nil {
		return "", err
	}
	defer fn.Close()
	res, err := b.call(fn, obj)
	if err != nil {
		return "", err
	}
	defer res.Close()
	return b.GetStr(res)
}
