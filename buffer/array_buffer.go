package buffer

import (
	webidl "github.com/wippyai/webidl-runtime"
)

// ArrayBuffer is exclusive, detachable byte storage.
// It is not safe for concurrent use.
type ArrayBuffer struct {
	data     []byte
	detached bool
}

// NewArrayBuffer allocates a zero-filled buffer of the given length.
func NewArrayBuffer(length uint32) *ArrayBuffer {
	return &ArrayBuffer{data: make([]byte, length)}
}

// NewArrayBufferFrom returns a buffer holding a copy of data.
func NewArrayBufferFrom(data []byte) *ArrayBuffer {
	b := make([]byte, len(data))
	copy(b, data)
	return &ArrayBuffer{data: b}
}

// ByteLength returns the buffer length, or 0 once detached.
func (b *ArrayBuffer) ByteLength() uint32 {
	return uint32(len(b.data))
}

func (b *ArrayBuffer) Detached() bool {
	return b.detached
}

// LoadUint8Unordered reads the byte at index. Exclusive buffers have no
// concurrent writers, so a plain load is enough.
func (b *ArrayBuffer) LoadUint8Unordered(index uint32) uint8 {
	return b.data[index]
}

// StoreUint8 writes v at index.
func (b *ArrayBuffer) StoreUint8(index uint32, v uint8) {
	b.data[index] = v
}

// Bytes exposes the live storage. It is nil after Detach.
func (b *ArrayBuffer) Bytes() []byte {
	return b.data
}

// Detach releases the storage. Every view over the buffer observes the
// detachment. Detaching twice is a no-op.
func (b *ArrayBuffer) Detach() {
	b.data = nil
	b.detached = true
}

// BufferSource implements webidl.Viewer.
func (b *ArrayBuffer) BufferSource() (webidl.Source, error) {
	return webidl.RawBuffer{Buffer: b}, nil
}

var (
	_ webidl.Buffer = (*ArrayBuffer)(nil)
	_ webidl.Viewer = (*ArrayBuffer)(nil)
)
