// Package webidl provides the marshalling primitives that sit between a
// scripting runtime's object model and byte-oriented native APIs, following
// the WebIDL binding rules for property keys and buffer sources.
//
// # Architecture Overview
//
//	webidl/          Root package with PropertyKey, Source and collaborator interfaces
//	├── bindings/    IsArrayIndex and GetBufferSourceCopy
//	├── jsnum/       ECMAScript Number::toString and CanonicalNumericIndexString
//	├── buffer/      Go-native ArrayBuffer, SharedArrayBuffer, typed arrays, DataView
//	├── wasmmem/     WebAssembly.Memory buffers backed by wazero linear memory
//	├── gojabridge/  Adapter for goja runtime values
//	├── errors/      Structured error types for the diagnostic side channel
//	└── cmd/idlprobe Developer CLI
//
// # Quick Start
//
//	buf := buffer.NewArrayBufferFrom([]byte{0, 1, 2, 3, 4, 5, 6, 7})
//	view, _ := buffer.NewTypedArray(buf, buffer.Uint8, 2, 4)
//	src, _ := view.BufferSource()
//
//	data, ok := bindings.GetBufferSourceCopy(src) // [2 3 4 5], true
//
//	bindings.IsArrayIndex(webidl.StringKey("42"))  // true
//	bindings.IsArrayIndex(webidl.StringKey("-0"))  // false
//
// # Buffer Sources
//
// A buffer source is modelled as the closed sum Source with three variants:
// TypedView, DataView and RawBuffer. Window reduces any of them to a
// uniform (buffer, offset, length) triple.
//
// # Thread Safety
//
// Every operation is synchronous and keeps no state between calls. A
// SharedArrayBuffer may be written by other goroutines while it is copied;
// each byte read is tear-free but the copy as a whole is not a snapshot.
package webidl
