package webidl

import "strconv"

// KeyKind tells which form a PropertyKey holds.
type KeyKind uint8

const (
	KeyString KeyKind = iota
	KeyIndex
	KeySymbol
)

func (k KeyKind) String() string {
	switch k {
	case KeyString:
		return "string"
	case KeyIndex:
		return "index"
	case KeySymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// Symbol is an opaque property-key tag. Two symbols are the same key only
// if they are the same pointer.
type Symbol struct {
	Description string
}

// PropertyKey is an object member name: a string, an integer index or a
// symbol. The zero value is the empty string key.
type PropertyKey struct {
	symbol *Symbol
	name   string
	index  uint32
	kind   KeyKind
}

// StringKey returns a key for the string s.
func StringKey(s string) PropertyKey {
	return PropertyKey{kind: KeyString, name: s}
}

// IndexKey returns a key already held in integer form.
func IndexKey(n uint32) PropertyKey {
	return PropertyKey{kind: KeyIndex, index: n}
}

// SymbolKey returns a key for a fresh symbol with the given description.
func SymbolKey(description string) PropertyKey {
	return PropertyKey{kind: KeySymbol, symbol: &Symbol{Description: description}}
}

// SymbolKeyOf returns a key for an existing symbol.
func SymbolKeyOf(sym *Symbol) PropertyKey {
	return PropertyKey{kind: KeySymbol, symbol: sym}
}

func (k PropertyKey) Kind() KeyKind   { return k.kind }
func (k PropertyKey) IsString() bool  { return k.kind == KeyString }
func (k PropertyKey) IsIndex() bool   { return k.kind == KeyIndex }
func (k PropertyKey) IsSymbol() bool  { return k.kind == KeySymbol }
func (k PropertyKey) Index() uint32   { return k.index }
func (k PropertyKey) Symbol() *Symbol { return k.symbol }

// HasNumericForm reports whether the key can be converted to a string and
// therefore may have a canonical numeric index. Only symbols cannot.
func (k PropertyKey) HasNumericForm() bool {
	return k.kind != KeySymbol
}

// String returns the key's string form. Index keys are rendered in
// decimal; symbols render as Symbol(description).
func (k PropertyKey) String() string {
	switch k.kind {
	case KeyIndex:
		return strconv.FormatUint(uint64(k.index), 10)
	case KeySymbol:
		if k.symbol == nil {
			return "Symbol()"
		}
		return "Symbol(" + k.symbol.Description + ")"
	default:
		return k.name
	}
}
