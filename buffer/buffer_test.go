package buffer

import (
	stderrors "errors"
	"sync"
	"testing"

	webidl "github.com/wippyai/webidl-runtime"
	"github.com/wippyai/webidl-runtime/errors"
)

func TestArrayBuffer_Detach(t *testing.T) {
	ab := NewArrayBufferFrom([]byte{1, 2, 3})
	if ab.Detached() || ab.ByteLength() != 3 {
		t.Fatalf("fresh buffer: detached=%v len=%d", ab.Detached(), ab.ByteLength())
	}

	ab.Detach()
	if !ab.Detached() {
		t.Error("expected detached")
	}
	if ab.ByteLength() != 0 || ab.Bytes() != nil {
		t.Errorf("detached buffer still exposes %d bytes", ab.ByteLength())
	}

	ab.Detach()
	if !ab.Detached() {
		t.Error("second Detach should keep the buffer detached")
	}
}

func TestArrayBuffer_CopiesInput(t *testing.T) {
	in := []byte{1, 2, 3}
	ab := NewArrayBufferFrom(in)
	in[0] = 9
	if ab.LoadUint8Unordered(0) != 1 {
		t.Error("NewArrayBufferFrom must not alias its input")
	}
}

func TestSharedArrayBuffer_LoadStore(t *testing.T) {
	sab := NewSharedArrayBufferFrom([]byte{1, 2, 3, 4, 5, 6})
	if sab.ByteLength() != 6 {
		t.Fatalf("ByteLength = %d, want 6", sab.ByteLength())
	}
	for i := uint32(0); i < 6; i++ {
		if got := sab.LoadUint8Unordered(i); got != uint8(i+1) {
			t.Errorf("byte %d = %d, want %d", i, got, i+1)
		}
	}

	sab.StoreUint8(1, 0xee)
	if sab.LoadUint8Unordered(0) != 1 || sab.LoadUint8Unordered(1) != 0xee || sab.LoadUint8Unordered(2) != 3 {
		t.Error("StoreUint8 disturbed neighbouring bytes")
	}
	if sab.Detached() {
		t.Error("shared buffers never detach")
	}
}

func TestSharedArrayBuffer_OutOfRange(t *testing.T) {
	sab := NewSharedArrayBuffer(5)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for index past length")
		}
	}()
	// Index 5 is inside the backing word but past the declared length.
	sab.LoadUint8Unordered(5)
}

func TestSharedArrayBuffer_ConcurrentStores(t *testing.T) {
	sab := NewSharedArrayBuffer(8)
	var wg sync.WaitGroup
	for i := uint32(0); i < 8; i++ {
		wg.Add(1)
		go func(i uint32) {
			defer wg.Done()
			for n := 0; n < 1000; n++ {
				sab.StoreUint8(i, uint8(i+1))
			}
		}(i)
	}
	wg.Wait()

	for i := uint32(0); i < 8; i++ {
		if got := sab.LoadUint8Unordered(i); got != uint8(i+1) {
			t.Errorf("byte %d = %d, want %d", i, got, i+1)
		}
	}
}

func TestElementKind(t *testing.T) {
	tests := []struct {
		kind ElementKind
		size uint32
		name string
	}{
		{Int8, 1, "Int8Array"},
		{Uint8Clamped, 1, "Uint8ClampedArray"},
		{Uint16, 2, "Uint16Array"},
		{Float32, 4, "Float32Array"},
		{Float64, 8, "Float64Array"},
		{BigUint64, 8, "BigUint64Array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.kind.Size() != tt.size {
				t.Errorf("Size = %d, want %d", tt.kind.Size(), tt.size)
			}
			if tt.kind.String() != tt.name {
				t.Errorf("String = %q, want %q", tt.kind.String(), tt.name)
			}
			if k, ok := ElementKindByName(tt.name); !ok || k != tt.kind {
				t.Errorf("ElementKindByName(%q) = (%v, %v)", tt.name, k, ok)
			}
		})
	}

	if _, ok := ElementKindByName("Array"); ok {
		t.Error("Array is not a typed array kind")
	}
}

func TestNewTypedArray_Validation(t *testing.T) {
	ab := NewArrayBuffer(16)

	tests := []struct {
		name   string
		kind   ElementKind
		offset uint32
		length uint32
		want   errors.Kind
	}{
		{"misaligned", Uint32, 2, 1, errors.KindMisaligned},
		{"past end", Uint16, 8, 5, errors.KindOutOfBounds},
		{"huge length", Float64, 0, 0x20000000, errors.KindOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTypedArray(ab, tt.kind, tt.offset, tt.length)
			if !stderrors.Is(err, &errors.Error{Kind: tt.want}) {
				t.Errorf("error = %v, want kind %s", err, tt.want)
			}
		})
	}

	if _, err := NewTypedArray(nil, Uint8, 0, 0); !stderrors.Is(err, &errors.Error{Kind: errors.KindNilPointer}) {
		t.Errorf("nil buffer error = %v", err)
	}

	detached := NewArrayBuffer(4)
	detached.Detach()
	if _, err := NewTypedArray(detached, Uint8, 0, 0); !stderrors.Is(err, errors.ErrDetached) {
		t.Errorf("detached buffer error = %v", err)
	}
}

func TestTypedArray_BufferSource(t *testing.T) {
	ab := NewArrayBuffer(32)
	arr, err := NewTypedArray(ab, Float32, 8, 3)
	if err != nil {
		t.Fatalf("NewTypedArray: %v", err)
	}
	if arr.ByteLength() != 12 || arr.Length() != 3 || arr.ByteOffset() != 8 {
		t.Errorf("got length=%d byteLength=%d offset=%d", arr.Length(), arr.ByteLength(), arr.ByteOffset())
	}

	src, _ := arr.BufferSource()
	view, ok := src.(webidl.TypedView)
	if !ok {
		t.Fatalf("BufferSource = %T, want webidl.TypedView", src)
	}
	if view.Buffer != webidl.Buffer(ab) || view.ByteOffset != 8 || view.ByteLength != 12 {
		t.Errorf("view = %+v", view)
	}
}

func TestNewTypedArrayOver(t *testing.T) {
	ab := NewArrayBuffer(12)

	arr, err := NewTypedArrayOver(ab, Uint32, 4)
	if err != nil {
		t.Fatalf("NewTypedArrayOver: %v", err)
	}
	if arr.Length() != 2 {
		t.Errorf("Length = %d, want 2", arr.Length())
	}

	if _, err := NewTypedArrayOver(ab, Float64, 0); !stderrors.Is(err, &errors.Error{Kind: errors.KindMisaligned}) {
		t.Errorf("error = %v, want misaligned remainder", err)
	}
	if _, err := NewTypedArrayOver(ab, Uint8, 13); !stderrors.Is(err, errors.ErrOutOfBounds) {
		t.Errorf("error = %v, want out of bounds", err)
	}
}

func TestDataView(t *testing.T) {
	ab := NewArrayBufferFrom([]byte{0, 1, 2, 3, 4, 5})
	dv, err := NewDataView(ab, 2, 3)
	if err != nil {
		t.Fatalf("NewDataView: %v", err)
	}

	if v, err := dv.GetUint8(1); err != nil || v != 3 {
		t.Errorf("GetUint8(1) = (%d, %v), want (3, nil)", v, err)
	}
	if _, err := dv.GetUint8(3); !stderrors.Is(err, errors.ErrOutOfBounds) {
		t.Errorf("GetUint8(3) error = %v", err)
	}

	src, _ := dv.BufferSource()
	if _, ok := src.(webidl.DataView); !ok {
		t.Errorf("BufferSource = %T, want webidl.DataView", src)
	}

	ab.Detach()
	if _, err := dv.GetUint8(0); !stderrors.Is(err, errors.ErrDetached) {
		t.Errorf("GetUint8 after detach error = %v", err)
	}

	if _, err := NewDataView(NewArrayBuffer(4), 3, 2); !stderrors.Is(err, errors.ErrOutOfBounds) {
		t.Errorf("NewDataView past end error = %v", err)
	}
}

func TestHeapAllocator(t *testing.T) {
	b, err := HeapAllocator{}.AllocZeroed(8)
	if err != nil || len(b) != 8 {
		t.Fatalf("AllocZeroed = (%v, %v)", b, err)
	}
	for i, v := range b {
		if v != 0 {
			t.Errorf("byte %d = %d, want 0", i, v)
		}
	}

	_, err = HeapAllocator{MaxBytes: 4}.AllocZeroed(5)
	if !stderrors.Is(err, errors.ErrAllocation) {
		t.Errorf("error = %v, want allocation", err)
	}

	if b, err := (HeapAllocator{MaxBytes: 4}).AllocZeroed(0); err != nil || b == nil {
		t.Errorf("zero-length allocation = (%v, %v)", b, err)
	}
}
