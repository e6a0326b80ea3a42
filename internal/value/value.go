// Package value is the result model of the samples: a small sealed set of
// JSON-like values with one canonical serialization.
//
// Samples render their query results into Values so the harness and the CLI
// can compare, print and snapshot them without knowing the element types of
// each query.
package value

import (
	"slices"
	"unicode/utf16"

	"github.com/cockroachdb/apd/v3"
)

// Value is a sealed interface. Only the types in this package implement it.
type Value interface {
	value()
}

// Null is the absent value, used for default results of reference type.
type Null struct{}

func (Null) value() {}

// String is a text value.
type String string

func (String) value() {}

// Int is an integer value.
type Int int64

func (Int) value() {}

// Float is a binary floating-point value.
type Float float64

func (Float) value() {}

// Decimal is an exact decimal amount such as a price. It serializes as a
// JSON string so that no precision is lost.
type Decimal struct {
	D *apd.Decimal
}

func (Decimal) value() {}

// Bool is a boolean value.
type Bool bool

func (Bool) value() {}

// Array is an ordered list of values.
type Array []Value

func (Array) value() {}

// Object maps field names to values. Use SortedKeys for deterministic
// iteration.
type Object map[string]Value

func (Object) value() {}

// Pair is one field of an Object under construction.
type Pair struct {
	Key   string
	Value Value
}

// F is shorthand for a Pair.
//
//	value.NewObject(value.F("category", value.String(c)), value.F("count", value.Int(n)))
func F(key string, v Value) Pair {
	return Pair{Key: key, Value: v}
}

// NewObject builds an Object from pairs. A repeated key keeps the last value.
func NewObject(pairs ...Pair) Object {
	obj := make(Object, len(pairs))
	for _, p := range pairs {
		obj[p.Key] = p.Value
	}
	return obj
}

// Strings builds an Array of Strings.
func Strings(ss ...string) Array {
	arr := make(Array, len(ss))
	for i, s := range ss {
		arr[i] = String(s)
	}
	return arr
}

// Ints builds an Array of Ints.
func Ints(ns ...int) Array {
	arr := make(Array, len(ns))
	for i, n := range ns {
		arr[i] = Int(n)
	}
	return arr
}

// SortedKeys returns the keys in UTF-16 code unit order (RFC 8785), which
// differs from Go's byte order for characters outside the BMP.
func (obj Object) SortedKeys() []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareUTF16)
	return keys
}

func compareUTF16(a, b string) int {
	return slices.Compare(utf16.Encode([]rune(a)), utf16.Encode([]rune(b)))
}
