package bindings

import (
	stderrors "errors"
	"fmt"

	"go.uber.org/zap"

	webidl "github.com/wippyai/webidl-runtime"
	"github.com/wippyai/webidl-runtime/buffer"
	"github.com/wippyai/webidl-runtime/errors"
)

// Copier extracts owned byte copies from buffer sources.
// The zero value uses buffer.DefaultAllocator.
type Copier struct {
	Allocator webidl.Allocator
}

var defaultCopier Copier

// GetBufferSourceCopy returns an owned copy of the bytes src covers.
//
// ok is false when the backing buffer is detached or the destination could
// not be allocated. CopyDetailed tells the two apart.
// A zero-length window yields a non-nil empty slice and ok == true.
func GetBufferSourceCopy(src webidl.Source) ([]byte, bool) {
	return defaultCopier.Copy(src)
}

// Copy is GetBufferSourceCopy using c's allocator.
func (c Copier) Copy(src webidl.Source) ([]byte, bool) {
	data, err := c.CopyDetailed(src)
	if err != nil {
		Logger().Debug("buffer source copy yielded no bytes",
			zap.String("source", webidl.SourceName(src)),
			zap.Error(err))
		return nil, false
	}
	return data, true
}

// CopyDetailed is Copy with the reason for an empty result. The error is
// an *errors.Error of kind KindDetached, KindAllocation, KindOutOfBounds
// or KindUnsupported.
func (c Copier) CopyDetailed(src webidl.Source) ([]byte, error) {
	buf, offset, length, ok := webidl.Window(src)
	name := webidl.SourceName(src)
	if !ok {
		return nil, errors.Unsupported(errors.PhaseCopy, fmt.Sprintf("unrecognised buffer source %T", src))
	}

	if buf == nil || buf.Detached() {
		return nil, errors.Detached(errors.PhaseCopy, name)
	}

	// Never read past the live length, even if the view's snapshot went
	// stale after the buffer shrank.
	if bufLen := buf.ByteLength(); uint64(offset)+uint64(length) > uint64(bufLen) {
		return nil, errors.OutOfBounds(errors.PhaseCopy, name, offset, length, bufLen)
	}

	bytes, err := c.allocator().AllocZeroed(length)
	if err != nil {
		var e *errors.Error
		if stderrors.As(err, &e) && e.Kind == errors.KindAllocation {
			return nil, err
		}
		return nil, errors.Wrap(errors.PhaseAllocate, errors.KindAllocation, err, "allocate destination")
	}
	if uint64(len(bytes)) != uint64(length) {
		return nil, errors.New(errors.PhaseAllocate, errors.KindAllocation).
			Value(len(bytes)).
			Detail("allocator returned %d bytes, want %d", len(bytes), length).
			Build()
	}

	if length == 0 {
		if bytes == nil {
			bytes = []byte{}
		}
		return bytes, nil
	}

	// Per-byte unordered reads; a concurrent detach or write mid-copy is
	// not re-checked.
	for i := uint32(0); i < length; i++ {
		bytes[i] = buf.LoadUint8Unordered(offset + i)
	}

	return bytes, nil
}

func (c Copier) allocator() webidl.Allocator {
	if c.Allocator == nil {
		return buffer.DefaultAllocator
	}
	return c.Allocator
}
