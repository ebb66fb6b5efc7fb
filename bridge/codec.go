package bridge

import "encoding/binary"

// Opcode is a single wire protocol command byte.
type Opcode byte

// Outbound opcodes, issued by the host.
const (
	OpMakeInt     Opcode = 'I' // make int:      arg=value                    -> return(RI)
	OpMakeBytes   Opcode = 'B' // make bytes:     arg=length, payload=bytes    -> return(RI)
	OpMakeStr     Opcode = 'S' // make str:       arg=length, payload=utf8     -> return(RI)
	OpMakeTuple   Opcode = 'T' // make tuple:     arg=count,  payload=RIs      -> return(RI)
	OpGlobal      Opcode = 'G' // global lookup:  arg=name-length, payload=ascii -> return(RI)
	OpRegister    Opcode = 'R' // wrap HostIndex: arg=HostIndex                -> return(RI)
	OpCall        Opcode = 'C' // call:           arg=argcount, payload=fnRI+argRIs -> return(RI)
	OpStarcall    Opcode = 'X' // starcall:       arg=-1 (ignored), payload=fnRI,argsRI,kwargsRI -> return(RI)
	OpLambda      Opcode = 'L' // wrapper->fn:    arg=RI                       -> return(RI)
	OpDup         Opcode = 'D' // duplicate:      arg=RI                       -> return(RI)
	OpGetInt      Opcode = 'i' // read int:       arg=RI                       -> return(int)
	OpGetBytes    Opcode = 'b' // read bytes:     arg=RI                       -> return(length), then bytes
	OpDrop        Opcode = '~' // drop remote ref: arg=RI, no reply
	OpReturn      Opcode = 'r' // reply: return
	OpException   Opcode = 'e' // reply: exception
	OpInboundCall Opcode = 'c' // inbound: call into host
)

// terminationSentinel is the magic int-arg of the final "r" frame the host
// sends to request clean subprocess exit.
const terminationSentinel int64 = 0xD1E_A112EAD1

// intWidth is the negotiated fixed integer width in bytes, shared by both
// sides of the pipe. This implementation fixes it at 8 (a 64-bit int64),
// matching a 64-bit host build, and passes it to the subprocess as its last
// argument. packInt and unpackInt always use 8 bytes; a narrower remote is
// not supported.
const intWidth = 8

// packInt encodes v as a fixed-width little-endian two's-complement integer.
func packInt(v int64) []byte {
	buf := make([]byte, intWidth)
	binary.LittleEndian.PutUint64(buf, uint64(v))
	return buf
}

// unpackInt decodes a fixed-width little-endian two's-complement integer.
// buf must be exactly intWidth bytes.
func unpackInt(buf []byte) int64 {
	return int64(binary.LittleEndian.Uint64(buf))
}

// RemoteIndex is the wire-level token identifying a value living in the
// remote object table. The sign carries no meaning; it is an opaque handle.
type RemoteIndex int64

// HostIndex is a dense nonnegative slot id into a Bridge's RemoteTable,
// recycled via free list.
type HostIndex int64
