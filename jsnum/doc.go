// Package jsnum implements the ECMAScript numeric-string rules needed to
// classify property keys: Number::toString in radix 10 and
// CanonicalNumericIndexString.
//
// A string is a canonical numeric string when converting it to a Number and
// back yields the same string. "-0" is the single exception and names
// negative zero:
//
//	jsnum.CanonicalNumericIndexString("42")    // 42, true
//	jsnum.CanonicalNumericIndexString("042")   // 0, false
//	jsnum.CanonicalNumericIndexString("-0")    // -0, true
//	jsnum.CanonicalNumericIndexString("1e+21") // 1e21, true
package jsnum
