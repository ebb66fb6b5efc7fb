package server

import (
	"encoding/binary"
	"io"

	"github.com/chazu/objectwire/bridge"
)

// fakeRemote is a minimal wire-protocol peer for exercising BridgeService
// and its supervisory plumbing without a real interpreter subprocess. It
// tracks only enough state to answer Global/Call with fresh handles and
// GetInt/GetBytes with values the test pre-seeded, unlike bridge's own
// fuller fixture that models an entire object system.
type fakeRemote struct {
	in  io.Reader
	out io.Writer

	nextRI  int64
	ints    map[int64]int64
	byteses map[int64]byte // index into byteVal
	byteVal [][]byte
}

func newFakeRemote(in io.Reader, out io.Writer) *fakeRemote {
	return &fakeRemote{
		in:      in,
		out:     out,
		ints:    make(map[int64]int64),
		byteses: make(map[int64]byte),
	}
}

func (f *fakeRemote) alloc() int64 {
	f.nextRI++
	return f.nextRI
}

// seedInt pre-registers the canned int GetInt answers for RemoteIndex ri;
// pair it with nextRIWillBe to seed a handle before it is minted.
func (f *fakeRemote) seedInt(ri int64, v int64) { f.ints[ri] = v }

func (f *fakeRemote) seedBytes(ri int64, v []byte) {
	idx := byte(len(f.byteVal))
	f.byteVal = append(f.byteVal, v)
	f.byteses[ri] = idx
}

// nextRIWillBe returns the RemoteIndex the next allocation will assign, so
// a test can seed a canned value before triggering the call that mints it.
func (f *fakeRemote) nextRIWillBe() int64 { return f.nextRI + 1 }

// run drives the fake remote until the host sends the termination frame or
// the pipe closes.
func (f *fakeRemote) run() error {
	// startup handshake byte, mirroring a real interpreter's liveness signal.
	if _, err := io.WriteString(f.out, "+"); err != nil {
		return err
	}
	for {
		op, arg, err := f.readFrame()
		if err != nil {
			return nil
		}
		if op == bridge.OpReturn {
			return nil
		}
		if err := f.handle(op, arg); err != nil {
			return err
		}
	}
}

func (f *fakeRemote) handle(op bridge.Opcode, arg int64) error {
	switch op {
	case bridge.OpMakeStr:
		if _, err := f.readBytes(int(arg)); err != nil {
			return err
		}
		return f.replyReturn(f.alloc())
	case bridge.OpMakeTuple:
		for i := int64(0); i < arg; i++ {
			if _, err := f.readInt(); err != nil {
				return err
			}
		}
		return f.replyReturn(f.alloc())
	case bridge.OpGlobal:
		if _, err := f.readBytes(int(arg)); err != nil {
			return err
		}
		return f.replyReturn(f.alloc())
	case bridge.OpCall:
		if _, err := f.readInt(); err != nil { // fn RI
			return err
		}
		for i := int64(0); i < arg; i++ {
			if _, err := f.readInt(); err != nil {
				return err
			}
		}
		return f.replyReturn(f.alloc())
	case bridge.OpGetInt:
		return f.replyReturn(f.ints[arg])
	case bridge.OpGetBytes:
		data := f.byteVal[f.byteses[arg]]
		if err := f.writeFrame(bridge.OpReturn, int64(len(data)), nil); err != nil {
			return err
		}
		if len(data) == 0 {
			return nil
		}
		_, err := f.out.Write(data)
		return err
	case bridge.OpDrop:
		return nil
	default:
		return f.replyReturn(f.alloc())
	}
}

func (f *fakeRemote) replyReturn(v int64) error {
	return f.writeFrame(bridge.OpReturn, v, nil)
}

func (f *fakeRemote) readFrame() (bridge.Opcode, int64, error) {
	head := make([]byte, 9)
	if _, err := io.ReadFull(f.in, head); err != nil {
		return 0, 0, err
	}
	return bridge.Opcode(head[0]), int64(binary.LittleEndian.Uint64(head[1:])), nil
}

func (f *fakeRemote) readInt() (int64, error) {
	buf := make([]byte, 8)
	if _, err := io.ReadFull(f.in, buf); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(buf)), nil
}

func (f *fakeRemote) readBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	if _, err := io.ReadFull(f.in, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (f *fakeRemote) writeFrame(op bridge.Opcode, arg int64, payload []byte) error {
	buf := make([]byte, 9, 9+len(payload))
	buf[0] = byte(op)
	binary.LittleEndian.PutUint64(buf[1:], uint64(arg))
	buf = append(buf, payload...)
	_, err := f.out.Write(buf)
	return err
}

// newTestBridge spins up a Bridge wired to a fresh fakeRemote over a pair
// of in-process pipes, in place of a real interpreter subprocess.
func newTestBridge() (*bridge.Bridge, *fakeRemote, error) {
	hostReadsR, hostReadsW := io.Pipe()
	hostWritesR, hostWritesW := io.Pipe()

	fake := newFakeRemote(hostWritesR, hostReadsW)
	done := make(chan error, 1)
	go func() {
		done <- fake.run()
		hostReadsW.Close()
	}()

	b, err := bridge.NewLoopback(hostReadsR, hostWritesW, done)
	if err != nil {
		return nil, nil, err
	}
	return b, fake, nil
}
