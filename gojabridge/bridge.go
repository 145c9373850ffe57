package gojabridge

import (
	"math"
	"strings"

	"github.com/dop251/goja"

	webidl "github.com/wippyai/webidl-runtime"
	"github.com/wippyai/webidl-runtime/bindings"
	"github.com/wippyai/webidl-runtime/errors"
)

const (
	kindOther = -1
	kindRaw   = 0
	kindTyped = 1
	kindData  = 2
)

// describeProgram returns [kind, buffer, byteOffset, byteLength]. The
// length getters throw on a DataView over a detached buffer, so they are
// read inside try and fall back to 0.
var describeProgram = goja.MustCompile("describe-buffer-source", `
(function (o) {
	if (o instanceof ArrayBuffer) {
		return [0, o, 0, 0];
	}
	var kind;
	if (o instanceof DataView) {
		kind = 2;
	} else if (ArrayBuffer.isView(o)) {
		kind = 1;
	} else {
		return [-1];
	}
	var off = 0, len = 0;
	try {
		off = o.byteOffset;
		len = o.byteLength;
	} catch (e) {}
	return [kind, o.buffer, off, len];
})
`, true)

// Bridge classifies and copies values of a single goja runtime.
type Bridge struct {
	rt       *goja.Runtime
	describe goja.Callable
	Copier   bindings.Copier
}

// New prepares a bridge for rt.
func New(rt *goja.Runtime) (*Bridge, error) {
	if rt == nil {
		return nil, errors.NilPointer(errors.PhaseClassify, "runtime")
	}
	fn, err := rt.RunProgram(describeProgram)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseClassify, errors.KindInvalidInput, err, "compile buffer source helper")
	}
	describe, ok := goja.AssertFunction(fn)
	if !ok {
		return nil, errors.InvalidInput(errors.PhaseClassify, "buffer source helper is not callable")
	}
	return &Bridge{rt: rt, describe: describe}, nil
}

// Source resolves v to a buffer source. Values that are not an
// ArrayBuffer, typed array or DataView yield an unsupported error.
func (b *Bridge) Source(v goja.Value) (webidl.Source, error) {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, errors.Unsupported(errors.PhaseClassify, "undefined or null is not a buffer source")
	}
	if _, ok := v.(*goja.Object); !ok {
		return nil, errors.Unsupported(errors.PhaseClassify, "primitive "+v.String()+" is not a buffer source")
	}

	res, err := b.describe(goja.Undefined(), v)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseClassify, errors.KindInvalidInput, err, "describe buffer source")
	}
	desc := res.ToObject(b.rt)

	kind := desc.Get("0").ToInteger()
	if kind == kindOther {
		return nil, errors.New(errors.PhaseClassify, errors.KindUnsupported).
			Value(v.Export()).
			Detail("object is not a buffer source").
			Build()
	}

	buf, err := exportBuffer(desc.Get("1"))
	if err != nil {
		return nil, err
	}

	switch kind {
	case kindRaw:
		return webidl.RawBuffer{Buffer: buf}, nil
	case kindTyped:
		off, n := window(desc)
		return webidl.TypedView{Buffer: buf, ByteOffset: off, ByteLength: n}, nil
	default:
		off, n := window(desc)
		return webidl.DataView{Buffer: buf, ByteOffset: off, ByteLength: n}, nil
	}
}

// Copy returns an owned copy of the bytes behind v. ok is false for
// detached sources, allocation failures and values that are not buffer
// sources.
func (b *Bridge) Copy(v goja.Value) ([]byte, bool) {
	src, err := b.Source(v)
	if err != nil {
		return nil, false
	}
	return b.Copier.Copy(src)
}

// IsArrayIndex reports whether v, used as a property key, names an array
// element.
func (b *Bridge) IsArrayIndex(v goja.Value) bool {
	return bindings.IsArrayIndex(KeyFromValue(v))
}

// KeyFromValue applies ToPropertyKey: symbols stay symbols, integral
// numbers in uint32 range become index keys and everything else is
// converted with ECMAScript ToString.
func KeyFromValue(v goja.Value) webidl.PropertyKey {
	if v == nil {
		return webidl.StringKey("undefined")
	}
	if sym, ok := v.(*goja.Symbol); ok {
		desc := strings.TrimSuffix(strings.TrimPrefix(sym.String(), "Symbol("), ")")
		return webidl.SymbolKey(desc)
	}
	if n, ok := v.Export().(int64); ok && n >= 0 && n <= math.MaxUint32 {
		return webidl.IndexKey(uint32(n))
	}
	return webidl.StringKey(v.String())
}

func window(desc *goja.Object) (offset, length uint32) {
	return clampUint32(desc.Get("2").ToInteger()), clampUint32(desc.Get("3").ToInteger())
}

func clampUint32(n int64) uint32 {
	switch {
	case n < 0:
		return 0
	case n > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(n)
	}
}

func exportBuffer(v goja.Value) (webidl.Buffer, error) {
	if v == nil {
		return nil, errors.NilPointer(errors.PhaseClassify, "viewed buffer")
	}
	ab, ok := v.Export().(goja.ArrayBuffer)
	if !ok {
		return nil, errors.Unsupported(errors.PhaseClassify, "viewed buffer is not an ArrayBuffer")
	}
	return arrayBuffer{ab: ab}, nil
}

// arrayBuffer adapts goja.ArrayBuffer to webidl.Buffer.
type arrayBuffer struct {
	ab goja.ArrayBuffer
}

func (a arrayBuffer) ByteLength() uint32 {
	return uint32(len(a.ab.Bytes()))
}

func (a arrayBuffer) Detached() bool {
	return a.ab.Detached()
}

func (a arrayBuffer) LoadUint8Unordered(index uint32) uint8 {
	return a.ab.Bytes()[index]
}
