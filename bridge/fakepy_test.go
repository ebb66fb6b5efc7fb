package bridge

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeRemote plays the role of the interpreter subprocess in tests: it
// speaks the wire protocol over a pair of OS pipes, servicing commands from
// the host and issuing inbound calls into host-exposed callables, without
// spawning a real interpreter. It intentionally implements only the
// vocabulary these tests exercise, not a general Python object model.
type fakeRemote struct {
	in  io.Reader
	out io.Writer

	objects []any
	globals map[string]int

	// dropCount tallies every '~' received from the host, regardless of
	// which read loop observes it (handleCommand's or awaitReply's own).
	// Tests use it to assert remote-slot balance across a serviced inbound
	// call, since this fake otherwise never frees a slot itself.
	dropCount int
}

type pyTuple struct{ items []int }
type pyDict struct {
	keys []int
	vals []int
}
type pyType struct {
	name  string
	bases []int
}
type pyInstance struct {
	class int
	args  []int
}
type pyIterator struct {
	seq []int
	pos int
}
// pyBoundFunc is what 'L' (OpLambda) produces; it keeps its wrapper alive.
type pyBoundFunc struct{ wrapper *pyHostWrapper }

// pyHostWrapper is what 'R' (OpRegister) produces: a remote-side object
// exposing the wrapped HostIndex through a remote_idx attribute, exactly as
// a real interpreter's RemoteObj does. refs counts its live references: the
// host's handle from 'R' plus every function 'L' made from it. Releasing the
// last one (handleCommand's OpDrop case) stands in for that object's
// __del__ firing, which is what actually releases the HostIndex slot
// (Invariant 2).
type pyHostWrapper struct {
	hostIndex int64
	refs      int
}
type pyFunc func(f *fakeRemote, args []int) (int, error)

// pyRaise signals a Python-style exception carrying the object at idx.
type pyRaise struct{ idx int }

func (r *pyRaise) Error() string { return fmt.Sprintf("remote exception at %d", r.idx) }

// pyExit signals the fake crashing mid-command, simulating os._exit().
type pyExit struct{}

func (pyExit) Error() string { return "remote exited" }

func newFakeRemote(in io.Reader, out io.Writer) *fakeRemote {
	f := &fakeRemote{in: in, out: out}
	baseExc := f.newObject(&pyType{name: "BaseException"})
	f.newObject(&pyType{name: "StopIteration", bases: []int{baseExc}})
	f.globals = map[string]int{}
	f.installBuiltins(baseExc)
	return f
}

// newObject appends v to the fake's object table and returns its index.
func (f *fakeRemote) newObject(v any) int {
	f.objects = append(f.objects, v)
	return len(f.objects) - 1
}

// installBuiltins wires up the fixed vocabulary of qualified names these
// tests resolve via the Global opcode.
func (f *fakeRemote) installBuiltins(baseExcIdx int) {
	stopIterIdx := 1 // installed right after baseException in newFakeRemote

	f.globals["builtins.BaseException"] = baseExcIdx
	f.globals["builtins.StopIteration"] = stopIterIdx

	f.globals["builtins.type"] = f.newObject(pyFunc(func(f *fakeRemote, args []int) (int, error) {
		name, _ := f.objects[args[0]].(string)
		bases := f.tupleItems(args[1])
		return f.newObject(&pyType{name: name, bases: bases}), nil
	}))

	f.globals["builtins.dict"] = f.newObject(pyFunc(func(f *fakeRemote, args []int) (int, error) {
		return f.newObject(&pyDict{}), nil
	}))

	f.globals["builtins.True"] = f.newObject(true)
	f.globals["builtins.False"] = f.newObject(false)

	f.globals["builtins.list"] = f.newObject(pyFunc(func(f *fakeRemote, args []int) (int, error) {
		items := append([]int{}, f.tupleItems(args[0])...)
		return f.newObject(&pyTuple{items: items}), nil
	}))

	f.globals["builtins.iter"] = f.newObject(pyFunc(func(f *fakeRemote, args []int) (int, error) {
		return f.newObject(&pyIterator{seq: append([]int{}, f.tupleItems(args[0])...)}), nil
	}))

	f.globals["builtins.next"] = f.newObject(pyFunc(func(f *fakeRemote, args []int) (int, error) {
		it, ok := f.objects[args[0]].(*pyIterator)
		if !ok {
			return 0, fmt.Errorf("next() of non-iterator")
		}
		if it.pos >= len(it.seq) {
			excIdx := f.newObject(&pyInstance{class: stopIterIdx})
			return 0, &pyRaise{idx: excIdx}
		}
		v := it.seq[it.pos]
		it.pos++
		return v, nil
	}))

	f.globals["builtins.getattr"] = f.newObject(pyFunc(func(f *fakeRemote, args []int) (int, error) {
		name, _ := f.objects[args[1]].(string)
		switch obj := f.objects[args[0]].(type) {
		case *pyInstance:
			if name == "args" {
				return f.newObject(&pyTuple{items: obj.args}), nil
			}
		case *pyHostWrapper:
			if name == "remote_idx" {
				return f.newObject(obj.hostIndex), nil
			}
		case *pyType:
			if obj.name == "float" {
				if idx, ok := f.globals["float."+name]; ok {
					return idx, nil
				}
			}
		}
		return 0, fmt.Errorf("no attribute %q", name)
	}))

	f.globals["builtins.isinstance"] = f.newObject(pyFunc(func(f *fakeRemote, args []int) (int, error) {
		inst, ok := f.objects[args[0]].(*pyInstance)
		if !ok {
			return f.newObject(false), nil
		}
		return f.newObject(f.isSubclass(inst.class, args[1])), nil
	}))

	f.globals["builtins.repr"] = f.newObject(pyFunc(func(f *fakeRemote, args []int) (int, error) {
		return f.newObject(f.repr(args[0])), nil
	}))

	f.globals["builtins.str"] = f.newObject(pyFunc(func(f *fakeRemote, args []int) (int, error) {
		if s, ok := f.objects[args[0]].(string); ok {
			return f.newObject(s), nil
		}
		return f.newObject(f.repr(args[0])), nil
	}))

	floatType := f.newObject(&pyType{name: "float"})
	f.globals["builtins.float"] = floatType
	f.globals["float.hex"] = f.newObject(pyFunc(func(f *fakeRemote, args []int) (int, error) {
		x, _ := f.objects[args[0]].(float64)
		return f.newObject(hexFloat(x)), nil
	}))
	f.globals["float.fromhex"] = f.newObject(pyFunc(func(f *fakeRemote, args []int) (int, error) {
		s, _ := f.objects[args[0]].(string)
		v, err := parseHexFloat(s)
		if err != nil {
			return 0, err
		}
		return f.newObject(v), nil
	}))

	argv := f.newObject(&pyTuple{items: []int{f.newObject("<objectwire>")}})
	f.globals["sys.argv"] = argv

	f.globals["test.reraise_call"] = f.newObject(pyFunc(func(f *fakeRemote, args []int) (int, error) {
		return f.callObject(args[0], args[1:])
	}))
	f.globals["test.starcall_echo"] = f.newObject(pyFunc(func(f *fakeRemote, args []int) (int, error) {
		return f.newObject(f.repr(args[0]) + f.repr(args[1])), nil
	}))
	f.globals["os._exit"] = f.newObject(pyFunc(func(f *fakeRemote, args []int) (int, error) {
		return 0, pyExit{}
	}))

	binOp := func(op func(a, b int64) int64) pyFunc {
		return func(f *fakeRemote, args []int) (int, error) {
			a, _ := f.objects[args[0]].(int64)
			b, _ := f.objects[args[1]].(int64)
			return f.newObject(op(a, b)), nil
		}
	}
	f.globals["operator.add"] = f.newObject(binOp(func(a, b int64) int64 { return a + b }))
	f.globals["operator.sub"] = f.newObject(binOp(func(a, b int64) int64 { return a - b }))
	f.globals["operator.mul"] = f.newObject(binOp(func(a, b int64) int64 { return a * b }))
	f.globals["operator.pow"] = f.newObject(binOp(func(a, b int64) int64 {
		r := int64(1)
		for i := int64(0); i < b; i++ {
			r *= a
		}
		return r
	}))
	f.globals["operator.getitem"] = f.newObject(pyFunc(func(f *fakeRemote, args []int) (int, error) {
		switch container := f.objects[args[0]].(type) {
		case *pyTuple:
			i, _ := f.objects[args[1]].(int64)
			return container.items[i], nil
		case *pyDict:
			for i, k := range container.keys {
				if f.valueEqual(k, args[1]) {
					return container.vals[i], nil
				}
			}
			return 0, fmt.Errorf("key not found")
		default:
			return 0, fmt.Errorf("not subscriptable")
		}
	}))
	f.globals["operator.setitem"] = f.newObject(pyFunc(func(f *fakeRemote, args []int) (int, error) {
		d, ok := f.objects[args[0]].(*pyDict)
		if !ok {
			return 0, fmt.Errorf("setitem on non-dict")
		}
		for i, k := range d.keys {
			if f.valueEqual(k, args[1]) {
				d.vals[i] = args[2]
				return f.newObject(true), nil
			}
		}
		d.keys = append(d.keys, args[1])
		d.vals = append(d.vals, args[2])
		return f.newObject(true), nil
	}))
	f.globals["operator.contains"] = f.newObject(pyFunc(func(f *fakeRemote, args []int) (int, error) {
		d, ok := f.objects[args[0]].(*pyDict)
		if !ok {
			return f.newObject(false), nil
		}
		for _, k := range d.keys {
			if f.valueEqual(k, args[1]) {
				return f.newObject(true), nil
			}
		}
		return f.newObject(false), nil
	}))
}

func (f *fakeRemote) tupleItems(idx int) []int {
	if t, ok := f.objects[idx].(*pyTuple); ok {
		return t.items
	}
	return nil
}

func (f *fakeRemote) isSubclass(class, target int) bool {
	for class >= 0 {
		if class == target {
			return true
		}
		t, ok := f.objects[class].(*pyType)
		if !ok || len(t.bases) == 0 {
			return false
		}
		class = t.bases[0]
	}
	return false
}

func (f *fakeRemote) valueEqual(a, b int) bool {
	av, bv := f.objects[a], f.objects[b]
	switch x := av.(type) {
	case int64:
		y, ok := bv.(int64)
		return ok && x == y
	case string:
		y, ok := bv.(string)
		return ok && x == y
	default:
		return a == b
	}
}

func (f *fakeRemote) repr(idx int) string {
	switch v := f.objects[idx].(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		if v {
			return "True"
		}
		return "False"
	case string:
		return "'" + v + "'"
	case *pyTuple:
		parts := make([]string, len(v.items))
		for i, it := range v.items {
			parts[i] = f.repr(it)
		}
		joined := strings.Join(parts, ", ")
		if len(v.items) == 1 {
			joined += ","
		}
		return "(" + joined + ")"
	case *pyDict:
		parts := make([]string, len(v.keys))
		for i := range v.keys {
			parts[i] = f.repr(v.keys[i]) + ": " + f.repr(v.vals[i])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// callObject invokes the object at fnIdx with the given argument indices,
// dispatching to a builtin pyFunc, a type constructor, or a host-exposed
// callable (recursively driving the wire protocol for the latter).
func (f *fakeRemote) callObject(fnIdx int, args []int) (int, error) {
	switch fn := f.objects[fnIdx].(type) {
	case pyFunc:
		return fn(f, args)
	case *pyType:
		return f.newObject(&pyInstance{class: fnIdx, args: args}), nil
	case *pyBoundFunc:
		return f.callHostFn(fn.wrapper.hostIndex, args)
	default:
		return 0, fmt.Errorf("object at %d is not callable", fnIdx)
	}
}

// callHostFn issues an inbound 'c' frame for hostIndex and waits for the
// host's terminal reply, servicing any nested commands the host issues
// while building its response.
func (f *fakeRemote) callHostFn(hostIndex int64, args []int) (int, error) {
	if err := f.writeFrame(OpInboundCall, hostIndex, nil); err != nil {
		return 0, err
	}
	if err := f.writeInt(int64(len(args))); err != nil {
		return 0, err
	}
	for _, a := range args {
		if err := f.writeInt(int64(a)); err != nil {
			return 0, err
		}
	}
	return f.awaitReply()
}

// awaitReply reads frames until the terminal r/e for the frame currently
// being awaited arrives, recursively servicing any interleaved commands.
func (f *fakeRemote) awaitReply() (int, error) {
	for {
		op, arg, err := f.readFrame()
		if err != nil {
			return 0, err
		}
		switch op {
		case OpDrop:
			// A live fake keeps no free list; drops are simply tallied.
			f.dropCount++
			continue
		case OpReturn:
			return int(arg), nil
		case OpException:
			return 0, &pyRaise{idx: int(arg)}
		default:
			if err := f.handleCommand(op, arg); err != nil {
				return 0, err
			}
		}
	}
}

// run is the fake's main loop: it services commands until the host sends
// the termination frame (any bare 'r' outside of an active command, per
// the supplemented behavior this bridge relies on) or the pipe breaks.
func (f *fakeRemote) run() error {
	for {
		op, arg, err := f.readFrame()
		if err != nil {
			return nil // pipe closed, treat as a clean exit for the test harness
		}
		if op == OpReturn {
			_ = arg
			return nil
		}
		if err := f.handleCommand(op, arg); err != nil {
			if _, ok := err.(pyExit); ok {
				return nil
			}
			return err
		}
	}
}

// handleCommand executes one host->remote command and sends its reply.
func (f *fakeRemote) handleCommand(op Opcode, arg int64) error {
	switch op {
	case OpMakeInt:
		return f.reply(f.newObject(arg), nil)
	case OpMakeBytes:
		data, err := f.readBytes(int(arg))
		if err != nil {
			return err
		}
		return f.reply(f.newObject(data), nil)
	case OpMakeStr:
		data, err := f.readBytes(int(arg))
		if err != nil {
			return err
		}
		return f.reply(f.newObject(string(data)), nil)
	case OpMakeTuple:
		items := make([]int, arg)
		for i := range items {
			v, err := f.readIntArg()
			if err != nil {
				return err
			}
			items[i] = int(v)
		}
		return f.reply(f.newObject(&pyTuple{items: items}), nil)
	case OpGlobal:
		name, err := f.readBytes(int(arg))
		if err != nil {
			return err
		}
		idx, ok := f.globals[string(name)]
		if !ok {
			return fmt.Errorf("unknown global %q", name)
		}
		return f.reply(idx, nil)
	case OpRegister:
		return f.reply(f.newObject(&pyHostWrapper{hostIndex: arg, refs: 1}), nil)
	case OpCall:
		fnIdx, err := f.readIntArg()
		if err != nil {
			return err
		}
		args := make([]int, arg)
		for i := range args {
			v, err := f.readIntArg()
			if err != nil {
				return err
			}
			args[i] = int(v)
		}
		res, callErr := f.callObject(int(fnIdx), args)
		return f.reply(res, callErr)
	case OpStarcall:
		fnIdx, err := f.readIntArg()
		if err != nil {
			return err
		}
		posIdx, err := f.readIntArg()
		if err != nil {
			return err
		}
		kwIdx, err := f.readIntArg()
		if err != nil {
			return err
		}
		res, callErr := f.callObject(int(fnIdx), []int{int(posIdx), int(kwIdx)})
		return f.reply(res, callErr)
	case OpLambda:
		wrapper, ok := f.objects[int(arg)].(*pyHostWrapper)
		if !ok {
			return fmt.Errorf("Lambda of non-wrapper object")
		}
		wrapper.refs++
		return f.reply(f.newObject(&pyBoundFunc{wrapper: wrapper}), nil)
	case OpDup:
		return f.reply(f.newObject(f.objects[int(arg)]), nil)
	case OpGetInt:
		var v int64
		switch x := f.objects[int(arg)].(type) {
		case int64:
			v = x
		case bool:
			// bool is a subtype of int on the remote side, same as Python.
			if x {
				v = 1
			}
		}
		return f.reply(int(v), nil)
	case OpGetBytes:
		var data []byte
		switch v := f.objects[int(arg)].(type) {
		case []byte:
			data = v
		case string:
			data = []byte(v)
		}
		if err := f.writeFrame(OpReturn, int64(len(data)), nil); err != nil {
			return err
		}
		_, err := f.out.Write(data)
		return err
	case OpDrop:
		f.dropCount++
		// Dropping the last reference to a pyHostWrapper (its own handle or
		// a function made from it) stands in for its remote __del__ firing:
		// echo an inbound drop for the HostIndex it carried so the host's
		// free list reclaims the slot, matching Invariant 2.
		var w *pyHostWrapper
		switch obj := f.objects[int(arg)].(type) {
		case *pyHostWrapper:
			w = obj
		case *pyBoundFunc:
			w = obj.wrapper
		}
		if w != nil {
			w.refs--
			if w.refs == 0 {
				return f.writeFrame(OpDrop, w.hostIndex, nil)
			}
		}
		return nil
	default:
		return fmt.Errorf("unhandled opcode %q", op)
	}
}

func (f *fakeRemote) reply(idx int, err error) error {
	if err != nil {
		if raise, ok := err.(*pyRaise); ok {
			return f.writeFrame(OpException, int64(raise.idx), nil)
		}
		if _, ok := err.(pyExit); ok {
			return err
		}
		excIdx := f.newObject(err.Error())
		return f.writeFrame(OpException, int64(excIdx), nil)
	}
	return f.writeFrame(OpReturn, int64(idx), nil)
}

func (f *fakeRemote) readFrame() (Opcode, int64, error) {
	head := make([]byte, 1+intWidth)
	if _, err := io.ReadFull(f.in, head); err != nil {
		return 0, 0, err
	}
	return Opcode(head[0]), unpackInt(head[1:]), nil
}

func (f *fakeRemote) readIntArg() (int64, error) {
	buf := make([]byte, intWidth)
	if _, err := io.ReadFull(f.in, buf); err != nil {
		return 0, err
	}
	return unpackInt(buf), nil
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

func (f *fakeRemote) writeFrame(op Opcode, arg int64, payload []byte) error {
	buf := make([]byte, 1+intWidth, 1+intWidth+len(payload))
	buf[0] = byte(op)
	binary.LittleEndian.PutUint64(buf[1:], uint64(arg))
	buf = append(buf, payload...)
	_, err := f.out.Write(buf)
	return err
}

func (f *fakeRemote) writeInt(v int64) error {
	buf := make([]byte, intWidth)
	binary.LittleEndian.PutUint64(buf, uint64(v))
	_, err := f.out.Write(buf)
	return err
}

// fakeProc adapts a fakeRemote goroutine's completion to the closeWaiter
// interface transport expects from a real *exec.Cmd.
type fakeProc struct {
	done chan struct{}
	err  error
	once sync.Once
}

func (p *fakeProc) finish(err error) {
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}

func (p *fakeProc) wait() error { <-p.done; return p.err }
func (p *fakeProc) kill()       { p.finish(nil) }

// newTestBridge wires a Bridge to a fakeRemote over two OS pipes and
// returns both. OS pipes buffer like a real subprocess's pipes do, so the
// fake may write a frame while the host is still flushing its own.
func newTestBridge(t *testing.T) (*Bridge, *fakeRemote) {
	t.Helper()

	hostToRemoteR, hostToRemoteW, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	remoteToHostR, remoteToHostW, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}

	fake := newFakeRemote(hostToRemoteR, remoteToHostW)
	proc := &fakeProc{done: make(chan struct{})}

	go func() {
		if _, err := remoteToHostW.Write([]byte{'+'}); err != nil {
			proc.finish(err)
			return
		}
		runErr := fake.run()
		// A real subprocess exiting closes its stdout fd, which is what
		// turns a blocked host read into an EOF instead of a permanent
		// hang; a pipe written by a goroutine needs that closed explicitly.
		remoteToHostW.Close()
		proc.finish(runErr)
	}()

	tr := &transport{
		stdin:   hostToRemoteW,
		stdinW:  bufio.NewWriter(hostToRemoteW),
		stdout:  bufio.NewReader(remoteToHostR),
		proc:    proc,
		started: true,
	}

	handshake, err := tr.recv(1)
	if err != nil {
		t.Fatalf("handshake: %v", err)
	}
	if handshake[0] != '+' {
		t.Fatalf("unexpected handshake byte %q", handshake[0])
	}

	b := &Bridge{
		t:         tr,
		table:     newRemoteTable(),
		operators: make(map[string]*Object),
	}
	wrapperType, err := b.createWrapperType()
	if err != nil {
		t.Fatalf("createWrapperType: %v", err)
	}
	b.wrapperType = wrapperType

	return b, fake
}
