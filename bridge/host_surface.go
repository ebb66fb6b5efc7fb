package bridge

// The remaining pieces of the host surface contract (§6) — booleans, lists,
// and keyword-argument construction — are not core wire opcodes either;
// like attribute/item access and operators, they are built from Global
// lookup and Call.

// MakeBool creates a remote boolean.
func (b *Bridge) MakeBool(v bool) (*Object, error) {
	if v {
		return b.global("builtins.True")
	}
	return b.global("builtins.False")
}

// MakeList creates a remote list from the given borrowed handles.
func (b *Bridge) MakeList(items []*Object) (*Object, error) {
	tup, err := b.makeTuple(items)
	if err != nil {
		return nil, err
	}
	defer tup.Close()

	listCtor, err := b.builtin("list")
	if err != nil {
		return nil, err
	}
	defer listCtor.Close()

	return b.call(listCtor, tup)
}

// MakeKwargs builds a remote dict suitable for use as the kwargs argument
// of Starcall, from a Go map of already-created remote values. Map
// iteration order is undefined, matching the fact that keyword-argument
// order is rarely semantically significant; use MakeKwargsOrdered when it
// is (e.g. reproducing a specific remote dict's repr).
func (b *Bridge) MakeKwargs(kwargs map[string]*Object) (*Object, error) {
	pairs := make([]KV, 0, len(kwargs))
	for k, v := range kwargs {
		pairs = append(pairs, KV{Key: k, Value: v})
	}
	return b.MakeKwargsOrdered(pairs)
}

// KV is one keyword-argument pair for MakeKwargsOrdered.
type KV struct {
	Key   string
	Value *Object
}

// MakeKwargsOrdered builds a remote dict by inserting pairs in the given
// order, preserving remote-side dict insertion order.
func (b *Bridge) MakeKwargsOrdered(pairs []KV) (*Object, error) {
	dictCtor, err := b.builtin("dict")
	if err != nil {
		return nil, err
	}
	defer dictCtor.Close()

	dict, err := b.call(dictCtor)
	if err != nil {
		return nil, err
	}

	for _, kv := range pairs {
		key, err := b.makeStr(kv.Key)
		if err != nil {
			dict.Close()
			return nil, err
		}
		if err := b.SetItem(dict, key, kv.Value); err != nil {
			key.Close()
			dict.Close()
			return nil, err
		}
		key.Close()
	}
	return dict, nil
}
