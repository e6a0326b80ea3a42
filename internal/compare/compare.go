// Package compare provides the pluggable ordering and equality strategies
// used by sorting, grouping, joins and equality-based quantifiers.
//
// A Comparer is a 3-way comparison: negative when a sorts before b, zero when
// they are equivalent, positive otherwise. An Equaler is an equivalence
// relation paired with a hash that is consistent with it (Equal(a, b) implies
// Hash(a) == Hash(b)); hash-keyed operators rely on that consistency.
//
// Comparers must describe a consistent total order. Sort and group results
// are unspecified otherwise.
package compare

import (
	"cmp"
	"hash/maphash"
)

// Comparer orders values of type T.
type Comparer[T any] interface {
	Compare(a, b T) int
}

// Equaler decides equivalence of values of type T for hash-keyed operators.
type Equaler[T any] interface {
	Equal(a, b T) bool
	Hash(v T) uint64
}

// Func adapts a 3-way comparison function to a Comparer.
type Func[T any] func(a, b T) int

// Compare implements Comparer.
func (f Func[T]) Compare(a, b T) int {
	return f(a, b)
}

type natural[T cmp.Ordered] struct{}

func (natural[T]) Compare(a, b T) int {
	return cmp.Compare(a, b)
}

// Natural returns the natural order of T: numeric order for numbers,
// byte-wise order for strings.
func Natural[T cmp.Ordered]() Comparer[T] {
	return natural[T]{}
}

// Reversed returns a Comparer that orders the opposite way to c.
func Reversed[T any](c Comparer[T]) Comparer[T] {
	return Func[T](func(a, b T) int { return c.Compare(b, a) })
}

// Sign normalizes a comparison result to -1, 0 or +1.
func Sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}

type defaultEqualer[T comparable] struct {
	seed maphash.Seed
}

// Default returns the == equivalence of T.
func Default[T comparable]() Equaler[T] {
	return defaultEqualer[T]{seed: maphash.MakeSeed()}
}

func (d defaultEqualer[T]) Equal(a, b T) bool {
	return a == b
}

func (d defaultEqualer[T]) Hash(v T) uint64 {
	return maphash.Comparable(d.seed, v)
}

// By returns an Equaler under which two values are equal when their
// canonical forms are equal under ==.
//
//	byID := compare.By(func(p Product) int { return p.ID })
func By[T any, K comparable](canonical func(T) K) Equaler[T] {
	return byEqualer[T, K]{canonical: canonical, seed: maphash.MakeSeed()}
}

type byEqualer[T any, K comparable] struct {
	canonical func(T) K
	seed      maphash.Seed
}

func (b byEqualer[T, K]) Equal(x, y T) bool {
	return b.canonical(x) == b.canonical(y)
}

func (b byEqualer[T, K]) Hash(v T) uint64 {
	return maphash.Comparable(b.seed, b.canonical(v))
}
