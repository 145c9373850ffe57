package buffer

import (
	webidl "github.com/wippyai/webidl-runtime"
	"github.com/wippyai/webidl-runtime/errors"
)

// HeapAllocator allocates zeroed byte slices on the Go heap.
// A zero MaxBytes means no limit.
type HeapAllocator struct {
	MaxBytes uint32
}

// DefaultAllocator has no size limit.
var DefaultAllocator webidl.Allocator = HeapAllocator{}

// AllocZeroed implements webidl.Allocator.
func (a HeapAllocator) AllocZeroed(length uint32) ([]byte, error) {
	if a.MaxBytes > 0 && length > a.MaxBytes {
		return nil, errors.AllocationFailed(errors.PhaseAllocate, length, a.MaxBytes)
	}
	return make([]byte, length), nil
}
