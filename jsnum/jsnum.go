package jsnum

import (
	"math"
	"strconv"
	"strings"

	webidl "github.com/wippyai/webidl-runtime"
)

// ToString renders f the way ECMAScript Number::toString(10) does.
func ToString(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f < 0:
		return "-" + ToString(-f)
	}

	digits, n := shortestDigits(f)
	k := len(digits)

	var b strings.Builder
	switch {
	case k <= n && n <= 21:
		b.WriteString(digits)
		for i := 0; i < n-k; i++ {
			b.WriteByte('0')
		}
	case 0 < n && n <= 21:
		b.WriteString(digits[:n])
		b.WriteByte('.')
		b.WriteString(digits[n:])
	case -6 < n && n <= 0:
		b.WriteString("0.")
		for i := 0; i < -n; i++ {
			b.WriteByte('0')
		}
		b.WriteString(digits)
	default:
		b.WriteByte(digits[0])
		if k > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		e := n - 1
		if e < 0 {
			b.WriteByte('-')
			e = -e
		} else {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(e))
	}
	return b.String()
}

// shortestDigits returns the shortest decimal digit string s and exponent n
// such that s × 10^(n−len(s)) round-trips to f. f must be finite and > 0.
func shortestDigits(f float64) (string, int) {
	// d.ddddde±XX
	e := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(e, "e")
	x, _ := strconv.Atoi(exp)
	digits := strings.Replace(mant, ".", "", 1)
	digits = strings.TrimRight(digits, "0")
	if digits == "" {
		digits = "0"
	}
	return digits, x + 1
}

// StringToNumber parses the decimal and Infinity literal forms of a
// numeric string. ok is false when s has no such form; ECMAScript would
// yield NaN for those.
func StringToNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			// ParseFloat already returned ±Inf or ±0.
			return f, true
		}
		return math.NaN(), false
	}
	return f, true
}

// CanonicalNumericIndexString returns the number s canonically names, or
// false when s is not the canonical string of any number.
//
// "-0" is special-cased: it names negative zero even though
// ToString(-0) is "0".
func CanonicalNumericIndexString(s string) (float64, bool) {
	if s == "-0" {
		return math.Copysign(0, -1), true
	}
	n, ok := StringToNumber(s)
	if !ok || ToString(n) != s {
		return 0, false
	}
	return n, true
}

// Indexer is the default webidl.NumericIndexer.
type Indexer struct{}

// CanonicalNumericIndex implements webidl.NumericIndexer. Index keys are
// already canonical; symbols have no numeric form.
func (Indexer) CanonicalNumericIndex(key webidl.PropertyKey) (float64, bool) {
	switch key.Kind() {
	case webidl.KeyIndex:
		return float64(key.Index()), true
	case webidl.KeyString:
		return CanonicalNumericIndexString(key.String())
	default:
		return 0, false
	}
}

var _ webidl.NumericIndexer = Indexer{}
