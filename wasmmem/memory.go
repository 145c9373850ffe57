package wasmmem

import (
	"sync"
	"sync/atomic"

	"github.com/tetratelabs/wazero/api"

	webidl "github.com/wippyai/webidl-runtime"
)

// Buffer is a fixed-length ArrayBuffer over linear memory. A nil *Buffer
// behaves as a detached buffer.
type Buffer struct {
	mem      api.Memory
	length   uint32
	detached atomic.Bool
}

// NewBuffer returns a buffer covering mem as it is now.
func NewBuffer(mem api.Memory) *Buffer {
	if mem == nil {
		return nil
	}
	return &Buffer{mem: mem, length: mem.Size()}
}

// ByteLength returns the length the buffer was created with, or 0 once
// detached.
func (b *Buffer) ByteLength() uint32 {
	if b == nil || b.Detached() {
		return 0
	}
	return b.length
}

// Detached reports true after Detach or once the memory has been resized.
func (b *Buffer) Detached() bool {
	if b == nil {
		return true
	}
	return b.detached.Load() || b.mem.Size() != b.length
}

// LoadUint8Unordered reads one byte of linear memory. Out-of-range reads
// return 0.
func (b *Buffer) LoadUint8Unordered(index uint32) uint8 {
	if b == nil {
		return 0
	}
	v, ok := b.mem.ReadByte(index)
	if !ok {
		return 0
	}
	return v
}

// Detach marks the buffer detached without touching the memory.
func (b *Buffer) Detach() {
	if b == nil {
		return
	}
	b.detached.Store(true)
}

// BufferSource implements webidl.Viewer.
func (b *Buffer) BufferSource() (webidl.Source, error) {
	return webidl.RawBuffer{Buffer: b}, nil
}

// Memory hands out buffers for a linear memory the way WebAssembly.Memory
// does. It is safe for concurrent use.
type Memory struct {
	mem     api.Memory
	current *Buffer
	mu      sync.Mutex
}

// Wrap returns a Memory for mem, or nil if mem is nil.
func Wrap(mem api.Memory) *Memory {
	if mem == nil {
		return nil
	}
	return &Memory{mem: mem}
}

// Buffer returns the buffer for the current memory size. Repeated calls
// return the same buffer until the memory grows.
func (m *Memory) Buffer() *Buffer {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil || m.current.Detached() {
		m.current = NewBuffer(m.mem)
	}
	return m.current
}

// Grow adds deltaPages pages and detaches the current buffer on success.
// It returns the previous size in pages.
func (m *Memory) Grow(deltaPages uint32) (uint32, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev, ok := m.mem.Grow(deltaPages)
	if !ok {
		return prev, false
	}
	if m.current != nil {
		m.current.Detach()
		m.current = nil
	}
	return prev, true
}

// Size returns the memory size in bytes.
func (m *Memory) Size() uint32 {
	return m.mem.Size()
}

var (
	_ webidl.Buffer = (*Buffer)(nil)
	_ webidl.Viewer = (*Buffer)(nil)
)
