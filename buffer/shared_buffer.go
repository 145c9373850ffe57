package buffer

import (
	"sync/atomic"

	webidl "github.com/wippyai/webidl-runtime"
)

// SharedArrayBuffer is byte storage shared between goroutines.
//
// Bytes are packed little-endian into 32-bit words so that single-byte
// reads and writes can use word-sized atomics: a read never observes a
// partially written byte, but reads are not ordered against writers.
type SharedArrayBuffer struct {
	words  []uint32
	length uint32
}

// NewSharedArrayBuffer allocates a zero-filled shared buffer.
func NewSharedArrayBuffer(length uint32) *SharedArrayBuffer {
	return &SharedArrayBuffer{
		words:  make([]uint32, (uint64(length)+3)/4),
		length: length,
	}
}

// NewSharedArrayBufferFrom returns a shared buffer holding a copy of data.
func NewSharedArrayBufferFrom(data []byte) *SharedArrayBuffer {
	s := NewSharedArrayBuffer(uint32(len(data)))
	for i, v := range data {
		s.words[i>>2] |= uint32(v) << (8 * (uint(i) & 3))
	}
	return s
}

func (s *SharedArrayBuffer) ByteLength() uint32 {
	return s.length
}

// Detached is always false; shared buffers cannot be detached.
func (s *SharedArrayBuffer) Detached() bool {
	return false
}

func (s *SharedArrayBuffer) LoadUint8Unordered(index uint32) uint8 {
	if index >= s.length {
		panic("buffer: shared buffer index out of range")
	}
	w := atomic.LoadUint32(&s.words[index>>2])
	return uint8(w >> (8 * (index & 3)))
}

// StoreUint8 writes v at index without disturbing neighbouring bytes.
func (s *SharedArrayBuffer) StoreUint8(index uint32, v uint8) {
	if index >= s.length {
		panic("buffer: shared buffer index out of range")
	}
	shift := 8 * (index & 3)
	mask := uint32(0xff) << shift
	p := &s.words[index>>2]
	for {
		old := atomic.LoadUint32(p)
		next := (old &^ mask) | uint32(v)<<shift
		if atomic.CompareAndSwapUint32(p, old, next) {
			return
		}
	}
}

// BufferSource implements webidl.Viewer.
func (s *SharedArrayBuffer) BufferSource() (webidl.Source, error) {
	return webidl.RawBuffer{Buffer: s}, nil
}

var (
	_ webidl.Buffer = (*SharedArrayBuffer)(nil)
	_ webidl.Viewer = (*SharedArrayBuffer)(nil)
)
