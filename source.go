package webidl

// Source is a buffer source: one of TypedView, DataView or RawBuffer.
// Types that embed a variant also satisfy Source; Window rejects them.
type Source interface {
	isSource()
}

// TypedView is a fixed-element-width view (Uint8Array, Float64Array, ...).
// ByteOffset and ByteLength are the view's own snapshot values.
type TypedView struct {
	Buffer     Buffer
	ByteOffset uint32
	ByteLength uint32
}

// DataView is a byte-addressable view with explicit encoding.
type DataView struct {
	Buffer     Buffer
	ByteOffset uint32
	ByteLength uint32
}

// RawBuffer is an ArrayBuffer or SharedArrayBuffer passed directly.
type RawBuffer struct {
	Buffer Buffer
}

func (TypedView) isSource() {}
func (DataView) isSource()  {}
func (RawBuffer) isSource() {}

// Window resolves a source to the buffer it reads from and the byte range
// it covers. A RawBuffer covers its whole declared length. ok is false for
// types other than the three variants and their pointers; a nil source
// resolves to a nil buffer.
func Window(src Source) (buf Buffer, offset, length uint32, ok bool) {
	switch s := src.(type) {
	case TypedView:
		return s.Buffer, s.ByteOffset, s.ByteLength, true
	case *TypedView:
		if s == nil {
			return nil, 0, 0, true
		}
		return s.Buffer, s.ByteOffset, s.ByteLength, true
	case DataView:
		return s.Buffer, s.ByteOffset, s.ByteLength, true
	case *DataView:
		if s == nil {
			return nil, 0, 0, true
		}
		return s.Buffer, s.ByteOffset, s.ByteLength, true
	case RawBuffer:
		return s.Buffer, 0, rawLength(s.Buffer), true
	case *RawBuffer:
		if s == nil {
			return nil, 0, 0, true
		}
		return s.Buffer, 0, rawLength(s.Buffer), true
	case nil:
		return nil, 0, 0, true
	default:
		return nil, 0, 0, false
	}
}

func rawLength(b Buffer) uint32 {
	if b == nil {
		return 0
	}
	return b.ByteLength()
}

// SourceName returns the variant name, used in logs and errors.
func SourceName(src Source) string {
	switch src.(type) {
	case TypedView, *TypedView:
		return "typed-view"
	case DataView, *DataView:
		return "data-view"
	case RawBuffer, *RawBuffer:
		return "raw-buffer"
	default:
		return "unknown"
	}
}
