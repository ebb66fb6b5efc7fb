package bridge

// noNext marks the end of the free list, the bitwise complement of 0 (all
// bits set), matching the sentinel spec.md's free-list invariant describes.
const noNext HostIndex = ^HostIndex(0)

// Callable is a host closure exposed to the remote side. Each argument
// arrives as an owning *Object (serviceCall cooks the raw argument
// RemoteIndexes before invoking), so the callable is responsible for
// Close-ing every arg it receives. serviceCall turns its result into
// exactly one reply: a return frame carrying the RemoteIndex, or an
// exception frame when it returns an error.
type Callable func(b *Bridge, args []*Object) (RemoteIndex, error)

// slotState tags which of the three RemoteSlot states a cell occupies.
type slotState int

const (
	slotFree slotState = iota
	slotCallable
	slotException
)

// remoteSlot is a tagged union: Free (participates in the free list),
// Callable (a host closure), or ForwardedException (a captured host
// exception awaiting identity-preserving re-raise).
type remoteSlot struct {
	state    slotState
	next     HostIndex // valid when state == slotFree
	callable Callable  // valid when state == slotCallable
	forward  error     // valid when state == slotException
}

// remoteTable is the host-side registry of callables/exceptions exposed to
// the remote side, keyed by a dense HostIndex reused via a free list. It is
// mutated only from the Bridge's single dispatcher thread of control; no
// locking is required (spec.md §5).
type remoteTable struct {
	slots    []remoteSlot
	freeHead HostIndex
}

func newRemoteTable() *remoteTable {
	return &remoteTable{freeHead: noNext}
}

// registerCallable pops a free slot (or appends) and stores fn, returning
// its HostIndex. O(1).
func (t *remoteTable) registerCallable(fn Callable) HostIndex {
	return t.register(remoteSlot{state: slotCallable, callable: fn})
}

// registerException pops a free slot (or appends) and stores err as a
// ForwardedException, returning its HostIndex. O(1).
func (t *remoteTable) registerException(err error) HostIndex {
	return t.register(remoteSlot{state: slotException, forward: err})
}

func (t *remoteTable) register(s remoteSlot) HostIndex {
	if t.freeHead != noNext {
		idx := t.freeHead
		t.freeHead = t.slots[idx].next
		t.slots[idx] = s
		return idx
	}
	t.slots = append(t.slots, s)
	return HostIndex(len(t.slots) - 1)
}

// invoke looks up the Callable at idx and runs it. Must only be called while
// dispatching (i.e. while servicing an inbound 'c' frame).
func (t *remoteTable) invoke(b *Bridge, idx HostIndex, args []*Object) (RemoteIndex, error) {
	if int(idx) < 0 || int(idx) >= len(t.slots) || t.slots[idx].state != slotCallable {
		return 0, &ProtocolError{Msg: "inbound call to unknown or non-callable host index"}
	}
	return t.slots[idx].callable(b, args)
}

// exceptionAt returns the ForwardedException stored at idx.
func (t *remoteTable) exceptionAt(idx HostIndex) (error, bool) {
	if int(idx) < 0 || int(idx) >= len(t.slots) || t.slots[idx].state != slotException {
		return nil, false
	}
	return t.slots[idx].forward, true
}

// release transitions idx back to Free and pushes it onto the head of the
// free list.
func (t *remoteTable) release(idx HostIndex) {
	if int(idx) < 0 || int(idx) >= len(t.slots) {
		return
	}
	t.slots[idx] = remoteSlot{state: slotFree, next: t.freeHead}
	t.freeHead = idx
}

// any reports whether the free list is nonempty.
func (t *remoteTable) any() bool { return t.freeHead != noNext }

// count returns the number of slots ever allocated (free + live).
func (t *remoteTable) count() int { return len(t.slots) }

// clear drops every slot, used once a Bridge has terminated.
func (t *remoteTable) clear() {
	t.slots = nil
	t.freeHead = noNext
}
