package webidl

import "testing"

type fakeBuffer struct {
	data     []byte
	detached bool
}

func (b *fakeBuffer) ByteLength() uint32                { return uint32(len(b.data)) }
func (b *fakeBuffer) Detached() bool                    { return b.detached }
func (b *fakeBuffer) LoadUint8Unordered(i uint32) uint8 { return b.data[i] }

func TestPropertyKey(t *testing.T) {
	tests := []struct {
		name       string
		key        PropertyKey
		kind       KeyKind
		str        string
		hasNumeric bool
	}{
		{"string", StringKey("length"), KeyString, "length", true},
		{"zero value", PropertyKey{}, KeyString, "", true},
		{"index", IndexKey(42), KeyIndex, "42", true},
		{"max index", IndexKey(4294967295), KeyIndex, "4294967295", true},
		{"symbol", SymbolKey("iterator"), KeySymbol, "Symbol(iterator)", false},
		{"nil symbol", SymbolKeyOf(nil), KeySymbol, "Symbol()", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.key.Kind() != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.key.Kind(), tt.kind)
			}
			if tt.key.String() != tt.str {
				t.Errorf("String = %q, want %q", tt.key.String(), tt.str)
			}
			if tt.key.HasNumericForm() != tt.hasNumeric {
				t.Errorf("HasNumericForm = %v, want %v", tt.key.HasNumericForm(), tt.hasNumeric)
			}
		})
	}
}

func TestSymbolKey_Identity(t *testing.T) {
	sym := &Symbol{Description: "tag"}
	a, b := SymbolKeyOf(sym), SymbolKeyOf(sym)
	if a != b {
		t.Error("keys over the same symbol should be equal")
	}
	if SymbolKey("tag") == SymbolKey("tag") {
		t.Error("fresh symbols should be distinct keys")
	}
}

func TestWindow(t *testing.T) {
	buf := &fakeBuffer{data: make([]byte, 8)}

	tests := []struct {
		name   string
		src    Source
		offset uint32
		length uint32
		label  string
	}{
		{"typed view", TypedView{Buffer: buf, ByteOffset: 2, ByteLength: 4}, 2, 4, "typed-view"},
		{"typed view pointer", &TypedView{Buffer: buf, ByteOffset: 1, ByteLength: 1}, 1, 1, "typed-view"},
		{"data view", DataView{Buffer: buf, ByteOffset: 3, ByteLength: 0}, 3, 0, "data-view"},
		{"data view pointer", &DataView{Buffer: buf, ByteOffset: 0, ByteLength: 8}, 0, 8, "data-view"},
		{"raw buffer", RawBuffer{Buffer: buf}, 0, 8, "raw-buffer"},
		{"raw buffer pointer", &RawBuffer{Buffer: buf}, 0, 8, "raw-buffer"},
		{"raw buffer without storage", RawBuffer{}, 0, 0, "raw-buffer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, offset, length, ok := Window(tt.src)
			if !ok {
				t.Fatal("Window rejected a known variant")
			}
			if offset != tt.offset || length != tt.length {
				t.Errorf("Window = (%d, %d), want (%d, %d)", offset, length, tt.offset, tt.length)
			}
			if got := SourceName(tt.src); got != tt.label {
				t.Errorf("SourceName = %q, want %q", got, tt.label)
			}
		})
	}
}

func TestWindow_RawBufferTracksLiveLength(t *testing.T) {
	buf := &fakeBuffer{data: make([]byte, 8)}
	src := RawBuffer{Buffer: buf}

	buf.data = buf.data[:3]
	if _, _, length, _ := Window(src); length != 3 {
		t.Errorf("length = %d, want 3", length)
	}
}

// embeddedView satisfies Source through the promoted method only.
type embeddedView struct {
	TypedView
}

func TestWindow_RejectsForeignTypes(t *testing.T) {
	buf := &fakeBuffer{data: make([]byte, 8)}
	src := embeddedView{TypedView{Buffer: buf, ByteOffset: 0, ByteLength: 4}}

	got, offset, length, ok := Window(src)
	if ok {
		t.Error("Window accepted a type embedding TypedView")
	}
	if got != nil || offset != 0 || length != 0 {
		t.Errorf("Window = (%v, %d, %d), want zero values", got, offset, length)
	}
	if name := SourceName(src); name != "unknown" {
		t.Errorf("SourceName = %q, want unknown", name)
	}
}

func TestWindow_NilPointers(t *testing.T) {
	for _, src := range []Source{(*TypedView)(nil), (*DataView)(nil), (*RawBuffer)(nil), nil} {
		buf, _, length, ok := Window(src)
		if !ok || buf != nil || length != 0 {
			t.Errorf("Window(%T) = (%v, %d, %v), want (nil, 0, true)", src, buf, length, ok)
		}
	}
}
