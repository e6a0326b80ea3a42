package seq

import "github.com/roach88/lazyq/internal/compare"

// Any reports whether s contains at least one candidate (any element when no
// predicate is given). It stops pulling at the first candidate.
func Any[T any](s Sequence[T], preds ...func(T) bool) (bool, error) {
	_, ok, err := first(s, matchAll(preds))
	return ok, err
}

// All reports whether every element of s satisfies pred. It is vacuously true
// for an empty sequence and stops pulling at the first element that fails.
func All[T any](s Sequence[T], pred func(T) bool) (bool, error) {
	it := s.Iterator()
	for it.Next() {
		if !pred(it.Value()) {
			return false, nil
		}
	}
	if err := it.Err(); err != nil {
		return false, err
	}
	return true, nil
}

// Contains reports whether s contains v under ==.
func Contains[T comparable](s Sequence[T], v T) (bool, error) {
	return ContainsBy(s, v, compare.Default[T]())
}

// ContainsBy reports whether s contains an element equal to v under eq.
func ContainsBy[T any](s Sequence[T], v T, eq compare.Equaler[T]) (bool, error) {
	return Any(s, func(e T) bool { return eq.Equal(e, v) })
}

// SequenceEqual reports whether a and b have the same length and equal
// elements pairwise, in order, under ==.
func SequenceEqual[T comparable](a, b Sequence[T]) (bool, error) {
	return SequenceEqualBy(a, b, compare.Default[T]())
}

// SequenceEqualBy is SequenceEqual under eq. Any mismatch, including a
// length difference, yields false rather than an error.
func SequenceEqualBy[T any](a, b Sequence[T], eq compare.Equaler[T]) (bool, error) {
	ia, ib := a.Iterator(), b.Iterator()
	for {
		na := ia.Next()
		nb := ib.Next()
		if !na || !nb {
			if err := ia.Err(); err != nil {
				return false, err
			}
			if err := ib.Err(); err != nil {
				return false, err
			}
			return na == nb, nil
		}
		if !eq.Equal(ia.Value(), ib.Value()) {
			return false, nil
		}
	}
}
