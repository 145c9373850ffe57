// Package buffer provides Go-native binary objects that implement the
// webidl buffer-source model.
//
// # Raw Buffers
//
//	ArrayBuffer        exclusive storage, can be detached
//	SharedArrayBuffer  shared storage, never detaches, tear-free byte access
//
// # Views
//
//	TypedArray   element-typed window (Int8 .. BigUint64)
//	DataView     byte-addressable window
//
// Every type implements webidl.Viewer, so it can be turned into a
// webidl.Source and copied with bindings.GetBufferSourceCopy:
//
//	ab := buffer.NewArrayBufferFrom([]byte{0, 1, 2, 3, 4, 5, 6, 7})
//	dv, err := buffer.NewDataView(ab, 2, 4)
//	src, _ := dv.BufferSource()
//
// View constructors validate offset, length and element alignment against
// the live buffer length the same way the ECMAScript constructors do.
//
// # Allocation
//
// HeapAllocator hands out zeroed Go slices and fails requests above its
// MaxBytes limit, which lets callers bound the cost of copying untrusted
// buffer sources.
package buffer
