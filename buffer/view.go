package buffer

import (
	webidl "github.com/wippyai/webidl-runtime"
	"github.com/wippyai/webidl-runtime/errors"
)

// ElementKind is the element type of a TypedArray.
type ElementKind uint8

const (
	Int8 ElementKind = iota
	Uint8
	Uint8Clamped
	Int16
	Uint16
	Int32
	Uint32
	Float32
	Float64
	BigInt64
	BigUint64
)

var elementNames = [...]string{
	Int8:         "Int8Array",
	Uint8:        "Uint8Array",
	Uint8Clamped: "Uint8ClampedArray",
	Int16:        "Int16Array",
	Uint16:       "Uint16Array",
	Int32:        "Int32Array",
	Uint32:       "Uint32Array",
	Float32:      "Float32Array",
	Float64:      "Float64Array",
	BigInt64:     "BigInt64Array",
	BigUint64:    "BigUint64Array",
}

// Size returns the element width in bytes.
func (k ElementKind) Size() uint32 {
	switch k {
	case Int8, Uint8, Uint8Clamped:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	default:
		return 8
	}
}

func (k ElementKind) String() string {
	if int(k) < len(elementNames) {
		return elementNames[k]
	}
	return "UnknownArray"
}

// ElementKindByName maps a constructor name such as "Float32Array" to its kind.
func ElementKindByName(name string) (ElementKind, bool) {
	for i, n := range elementNames {
		if n == name {
			return ElementKind(i), true
		}
	}
	return 0, false
}

// TypedArray is an element-typed window onto a buffer.
type TypedArray struct {
	buffer     webidl.Buffer
	byteOffset uint32
	length     uint32
	kind       ElementKind
}

// NewTypedArray creates a view of length elements starting at byteOffset.
// byteOffset must be a multiple of the element size and the window must lie
// within the buffer's live length.
func NewTypedArray(buf webidl.Buffer, kind ElementKind, byteOffset, length uint32) (*TypedArray, error) {
	if buf == nil {
		return nil, errors.NilPointer(errors.PhaseClassify, "buffer")
	}
	size := kind.Size()
	if byteOffset%size != 0 {
		return nil, errors.Misaligned(errors.PhaseClassify, "byte offset", byteOffset, size)
	}
	if err := checkWindow(buf, kind.String(), byteOffset, uint64(length)*uint64(size)); err != nil {
		return nil, err
	}
	return &TypedArray{buffer: buf, kind: kind, byteOffset: byteOffset, length: length}, nil
}

// NewTypedArrayOver creates a view covering buf from byteOffset to its end.
func NewTypedArrayOver(buf webidl.Buffer, kind ElementKind, byteOffset uint32) (*TypedArray, error) {
	if buf == nil {
		return nil, errors.NilPointer(errors.PhaseClassify, "buffer")
	}
	bufLen := buf.ByteLength()
	if byteOffset > bufLen {
		return nil, errors.OutOfBounds(errors.PhaseClassify, kind.String(), byteOffset, 0, bufLen)
	}
	rest := bufLen - byteOffset
	if rest%kind.Size() != 0 {
		return nil, errors.Misaligned(errors.PhaseClassify, "byte length", rest, kind.Size())
	}
	return NewTypedArray(buf, kind, byteOffset, rest/kind.Size())
}

func (a *TypedArray) Buffer() webidl.Buffer { return a.buffer }
func (a *TypedArray) Kind() ElementKind     { return a.kind }
func (a *TypedArray) Length() uint32        { return a.length }
func (a *TypedArray) ByteOffset() uint32    { return a.byteOffset }

// ByteLength is the window size in bytes.
func (a *TypedArray) ByteLength() uint32 {
	return a.length * a.kind.Size()
}

// BufferSource implements webidl.Viewer. The offset and length are the
// values recorded at construction.
func (a *TypedArray) BufferSource() (webidl.Source, error) {
	return webidl.TypedView{
		Buffer:     a.buffer,
		ByteOffset: a.byteOffset,
		ByteLength: a.ByteLength(),
	}, nil
}

// DataView is a byte-addressable window onto a buffer.
type DataView struct {
	buffer     webidl.Buffer
	byteOffset uint32
	byteLength uint32
}

// NewDataView creates a view of byteLength bytes starting at byteOffset.
func NewDataView(buf webidl.Buffer, byteOffset, byteLength uint32) (*DataView, error) {
	if buf == nil {
		return nil, errors.NilPointer(errors.PhaseClassify, "buffer")
	}
	if err := checkWindow(buf, "DataView", byteOffset, uint64(byteLength)); err != nil {
		return nil, err
	}
	return &DataView{buffer: buf, byteOffset: byteOffset, byteLength: byteLength}, nil
}

func (v *DataView) Buffer() webidl.Buffer { return v.buffer }
func (v *DataView) ByteOffset() uint32    { return v.byteOffset }
func (v *DataView) ByteLength() uint32    { return v.byteLength }

// GetUint8 reads the byte at index relative to the view.
func (v *DataView) GetUint8(index uint32) (uint8, error) {
	if v.buffer.Detached() {
		return 0, errors.Detached(errors.PhaseCopy, "data-view")
	}
	if index >= v.byteLength {
		return 0, errors.OutOfBounds(errors.PhaseCopy, "data-view", index, 1, v.byteLength)
	}
	return v.buffer.LoadUint8Unordered(v.byteOffset + index), nil
}

// BufferSource implements webidl.Viewer.
func (v *DataView) BufferSource() (webidl.Source, error) {
	return webidl.DataView{
		Buffer:     v.buffer,
		ByteOffset: v.byteOffset,
		ByteLength: v.byteLength,
	}, nil
}

func checkWindow(buf webidl.Buffer, name string, offset uint32, length uint64) error {
	if buf.Detached() {
		return errors.Detached(errors.PhaseClassify, name)
	}
	bufLen := buf.ByteLength()
	if uint64(offset)+length > uint64(bufLen) {
		return errors.New(errors.PhaseClassify, errors.KindOutOfBounds).
			Source(name).
			Value(offset).
			Detail("window [%d, %d+%d) exceeds buffer length %d", offset, offset, length, bufLen).
			Build()
	}
	return nil
}

var (
	_ webidl.Viewer = (*TypedArray)(nil)
	_ webidl.Viewer = (*DataView)(nil)
)
