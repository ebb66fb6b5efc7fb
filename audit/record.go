// Package audit observes a bridge session without altering its semantics:
// handle creation and drop, outbound commands, and exceptions crossing the
// boundary in either direction are recorded for post-hoc debugging of the
// drop-balance and free-list-soundness properties a bridge is expected to
// maintain.
package audit

// Kind enumerates the events a Recorder observes.
type Kind string

const (
	KindHandleCreated Kind = "handle_created"
	KindHandleDropped Kind = "handle_dropped"
	KindCommand       Kind = "command"
	KindHostException Kind = "host_exception"
	KindRemoteException Kind = "remote_exception"
)

// Record is one observed event, CBOR-encoded for storage.
type Record struct {
	Session string `cbor:"session"`
	Seq     int64  `cbor:"seq"`
	Kind    Kind   `cbor:"kind"`

	// Opcode/Arg are populated for KindCommand; a single byte and its
	// packed integer argument, mirroring the wire frame verbatim. For
	// handle creation/drop events Arg carries the handle's RemoteIndex.
	Opcode byte  `cbor:"opcode,omitempty"`
	Arg    int64 `cbor:"arg,omitempty"`

	// Detail carries a short human-readable description, such as the
	// description of an exception crossing the boundary.
	Detail string `cbor:"detail,omitempty"`

	// UnixNano is stamped by the caller, not this package, since this
	// package must stay free of wall-clock reads to remain deterministic
	// under test.
	UnixNano int64 `cbor:"ts"`
}

// Recorder observes bridge lifecycle events. A nil *Recorder is valid and
// discards everything, so instrumentation call sites never need a presence
// check.
type Recorder struct {
	session string
	seq     int64
	store   *Store
}

// NewRecorder returns a Recorder that appends every event to store under
// the given session ID.
func NewRecorder(session string, store *Store) *Recorder {
	return &Recorder{session: session, store: store}
}

// Emit appends one event, stamping it with the next sequence number for
// this session. The caller supplies the timestamp so tests stay
// deterministic.
func (r *Recorder) Emit(unixNano int64, rec Record) error {
	if r == nil || r.store == nil {
		return nil
	}
	r.seq++
	rec.Session = r.session
	rec.Seq = r.seq
	rec.UnixNano = unixNano
	return r.store.Append(rec)
}
