// Package wasmmem exposes WebAssembly linear memory as webidl buffers.
//
// JavaScript hosts hand out WebAssembly.Memory contents as an ArrayBuffer
// whose length is fixed at the moment it was obtained. When the memory
// grows, that ArrayBuffer is detached and a fresh one must be fetched. This
// package reproduces those semantics over wazero's api.Memory:
//
//	mem := wasmmem.Wrap(mod.ExportedMemory("memory"))
//	buf := mem.Buffer()           // covers the current pages
//	view, _ := buffer.NewTypedArray(buf, buffer.Uint8, ptr, n)
//	src, _ := view.BufferSource()
//	data, ok := bindings.GetBufferSourceCopy(src)
//
//	mem.Grow(1)                   // buf is now detached
//	buf = mem.Buffer()            // new buffer over the grown memory
//
// Growth performed by the guest itself (memory.grow) is detected too: a
// buffer reports detached as soon as the memory size no longer matches the
// length it was created with.
package wasmmem
