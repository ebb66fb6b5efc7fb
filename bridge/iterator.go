package bridge

// Iterator adapts the remote value's iterator protocol into a finite lazy
// Go sequence, terminating on the designated stop-iteration exception
// (Python's StopIteration).
type Iterator struct {
	b      *Bridge
	nextFn *Object
	iter   *Object
	done   bool
}

// stopIterationClass lazily resolves and caches the remote StopIteration
// type, the same way operators.go caches operator functions.
func (b *Bridge) stopIterationClass() (*Object, error) {
	if b.stopIteration == nil {
		cls, err := b.global("builtins.StopIteration")
		if err != nil {
			return nil, err
		}
		b.stopIteration = cls
	}
	return b.stopIteration, nil
}

// Iterate starts iterating obj, calling `builtins.iter` on it once.
func (b *Bridge) Iterate(obj *Object) (*Iterator, error) {
	iterFn, err := b.builtin("iter")
	if err != nil {
		return nil, err
	}
	defer iterFn.Close()

	nextFn, err := b.builtin("next")
	if err != nil {
		return nil, err
	}

	iter, err := b.call(iterFn, obj)
	if err != nil {
		nextFn.Close()
		return nil, err
	}

	return &Iterator{b: b, nextFn: nextFn, iter: iter}, nil
}

// Next advances the iterator. ok is false exactly when the sequence is
// exhausted (StopIteration was raised remotely); any other error is
// returned as-is.
func (it *Iterator) Next() (value *Object, ok bool, err error) {
	if it.done {
		return nil, false, nil
	}

	value, err = it.b.call(it.nextFn, it.iter)
	if err == nil {
		return value, true, nil
	}

	stopCls, clsErr := it.b.stopIterationClass()
	if clsErr != nil {
		return nil, false, clsErr
	}

	if re, isRemote := err.(*RemoteError); isRemote {
		isStop, checkErr := it.b.isInstance(&re.Exception.Object, stopCls)
		if checkErr == nil && isStop {
			it.done = true
			re.Exception.Close()
			return nil, false, nil
		}
	}
	return nil, false, err
}

// Close releases the iterator's remote-side resources.
func (it *Iterator) Close() {
	it.nextFn.Close()
	it.iter.Close()
}
