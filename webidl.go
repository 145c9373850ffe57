package webidl

// Buffer is the raw byte storage behind an ArrayBuffer or SharedArrayBuffer.
type Buffer interface {
	// ByteLength is the live length of the storage in bytes. A detached
	// buffer reports 0.
	ByteLength() uint32
	// Detached reports whether the backing storage has been released.
	Detached() bool
	// LoadUint8Unordered reads one byte without ordering guarantees
	// relative to concurrent writers. The read never tears.
	LoadUint8Unordered(index uint32) uint8
}

// Allocator hands out zero-filled byte sequences owned by the caller.
type Allocator interface {
	AllocZeroed(length uint32) ([]byte, error)
}

// NumericIndexer converts a property key to its canonical numeric index.
// ok is false when the key has no canonical numeric form (undefined).
type NumericIndexer interface {
	CanonicalNumericIndex(key PropertyKey) (index float64, ok bool)
}

// Viewer is implemented by binary objects that can describe themselves as a
// buffer source: typed arrays, data views and raw buffers.
type Viewer interface {
	BufferSource() (Source, error)
}
