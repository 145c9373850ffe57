// Package gojabridge connects goja runtime values to the webidl
// marshalling primitives.
//
//	vm := goja.New()
//	br, err := gojabridge.New(vm)
//
//	v, _ := vm.RunString(`new Uint8Array([0, 1, 2, 3, 4, 5, 6, 7]).subarray(2, 6)`)
//	data, ok := br.Copy(v) // [2 3 4 5], true
//
//	k, _ := vm.RunString(`"42"`)
//	br.IsArrayIndex(k) // true
//
// A Bridge is bound to one goja.Runtime and, like the runtime, must not be
// used from more than one goroutine at a time.
package gojabridge
