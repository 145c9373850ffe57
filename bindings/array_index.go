package bindings

import (
	"math"

	webidl "github.com/wippyai/webidl-runtime"
	"github.com/wippyai/webidl-runtime/jsnum"
)

// maxArrayIndex is 2^32 − 1, the maximum ECMAScript array length. Valid
// indices are strictly below it.
const maxArrayIndex = float64(math.MaxUint32)

var defaultIndexer webidl.NumericIndexer = jsnum.Indexer{}

// IsArrayIndex reports whether key is an array index using the ECMAScript
// canonical numeric string rules.
func IsArrayIndex(key webidl.PropertyKey) bool {
	return IsArrayIndexWith(defaultIndexer, key)
}

// IsArrayIndexWith is IsArrayIndex with a caller-supplied numeric conversion.
func IsArrayIndexWith(indexer webidl.NumericIndexer, key webidl.PropertyKey) bool {
	if !key.HasNumericForm() {
		return false
	}

	index, ok := indexer.CanonicalNumericIndex(key)
	if !ok {
		return false
	}

	// All range checks stay in float64 so 4294967295.5 and -0 are caught
	// before any narrowing.
	if !isIntegralNumber(index) {
		return false
	}
	if index == 0 && math.Signbit(index) {
		return false
	}
	if index < 0 {
		return false
	}
	if index >= maxArrayIndex {
		return false
	}
	return true
}

// isIntegralNumber is false for NaN and the infinities.
func isIntegralNumber(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return math.Trunc(f) == f
}
