// Package bindings implements the WebIDL abstract operations that marshal
// script values into native form.
//
// # Array Index Classification
//
// IsArrayIndex decides whether a property key names an array element:
//
//	bindings.IsArrayIndex(webidl.StringKey("0"))          // true
//	bindings.IsArrayIndex(webidl.StringKey("4294967294")) // true
//	bindings.IsArrayIndex(webidl.StringKey("4294967295")) // false, ≥ 2^32−1
//	bindings.IsArrayIndex(webidl.StringKey("-0"))         // false
//	bindings.IsArrayIndex(webidl.StringKey("1.5"))        // false
//	bindings.IsArrayIndex(webidl.StringKey("01"))         // false, not canonical
//
// # Buffer Source Copies
//
// GetBufferSourceCopy produces an owned copy of the bytes behind a typed
// array, data view or raw buffer:
//
//	data, ok := bindings.GetBufferSourceCopy(src)
//	if !ok {
//	    // detached or allocation failed: nothing to transfer
//	}
//
// The boolean collapses detachment and allocation failure. Callers that need
// to tell them apart use Copier.CopyDetailed, which returns a structured
// *errors.Error:
//
//	c := bindings.Copier{Allocator: buffer.HeapAllocator{MaxBytes: 1 << 20}}
//	data, err := c.CopyDetailed(src)
//	switch {
//	case errors.Is(err, errors.ErrDetached):
//	case errors.Is(err, errors.ErrAllocation):
//	}
//
// Both operations are synchronous and stateless, and are safe to call from
// multiple goroutines.
package bindings
