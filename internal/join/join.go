// Package join implements equi-joins over lazy sequences.
//
// Every join indexes the inner sequence into a lookup.Lookup once per
// enumeration, the first time an outer element needs it (an empty outer
// sequence never materializes the inner one). Outer elements are then
// streamed in input order and matched against the index; inner matches keep
// the inner sequence's order.
//
// Cardinality:
//   - Join: 0..N results per outer element (inner-join semantics)
//   - GroupJoin: exactly one result per outer element; no match gives an
//     empty group, never a missing one
//   - LeftOuterJoin: max(1, N) results per outer element; no match pairs
//     the outer element with the caller's default
//
// Zero matches are never an error.
package join

import (
	"github.com/roach88/lazyq/internal/compare"
	"github.com/roach88/lazyq/internal/lookup"
	"github.com/roach88/lazyq/internal/seq"
)

// Join correlates outer and inner elements whose keys are equal under == and
// emits result(o, i) for every matching pair.
func Join[O, I any, K comparable, R any](
	outer seq.Sequence[O],
	inner seq.Sequence[I],
	outerKey func(O) K,
	innerKey func(I) K,
	result func(O, I) R,
) seq.Sequence[R] {
	return JoinWith(outer, inner, outerKey, innerKey, result, compare.Default[K]())
}

// JoinWith is Join with keys compared under eq.
func JoinWith[O, I, K, R any](
	outer seq.Sequence[O],
	inner seq.Sequence[I],
	outerKey func(O) K,
	innerKey func(I) K,
	result func(O, I) R,
	eq compare.Equaler[K],
) seq.Sequence[R] {
	return seq.Func[R](func() seq.Iterator[R] {
		return &joinIterator[O, I, K, R]{
			index:    newIndex(inner, innerKey, eq),
			outer:    outer.Iterator(),
			outerKey: outerKey,
			result:   result,
		}
	})
}

// index lazily builds the inner lookup at most once.
type index[I, K any] struct {
	build func() (*lookup.Lookup[K, I], error)
	l     *lookup.Lookup[K, I]
	err   error
}

func newIndex[I, K any](inner seq.Sequence[I], key func(I) K, eq compare.Equaler[K]) *index[I, K] {
	return &index[I, K]{
		build: func() (*lookup.Lookup[K, I], error) { return lookup.Build(inner, key, eq) },
	}
}

func (x *index[I, K]) get() (*lookup.Lookup[K, I], error) {
	if x.l == nil && x.err == nil {
		x.l, x.err = x.build()
	}
	return x.l, x.err
}

// release drops the materialized inner sequence once the outer side is done.
func (x *index[I, K]) release() {
	x.l = nil
	x.build = nil
}

type joinIterator[O, I, K, R any] struct {
	index    *index[I, K]
	outer    seq.Iterator[O]
	outerKey func(O) K
	result   func(O, I) R

	cur     R
	curO    O
	matches *lookup.Grouping[K, I]
	pos     int
	done    bool
	err     error
}

func (it *joinIterator[O, I, K, R]) Next() bool {
	if it.done {
		return false
	}
	for {
		if it.matches != nil && it.pos < it.matches.Len() {
			it.cur = it.result(it.curO, it.matches.At(it.pos))
			it.pos++
			return true
		}

		if !it.outer.Next() {
			it.finish()
			return false
		}
		l, err := it.index.get()
		if err != nil {
			it.err = err
			it.finish()
			return false
		}
		it.curO = it.outer.Value()
		it.matches, _ = l.Get(it.outerKey(it.curO))
		it.pos = 0
	}
}

func (it *joinIterator[O, I, K, R]) finish() {
	it.done = true
	it.matches = nil
	it.index.release()
}

func (it *joinIterator[O, I, K, R]) Value() R {
	return it.cur
}

func (it *joinIterator[O, I, K, R]) Err() error {
	if it.err != nil {
		return it.err
	}
	return it.outer.Err()
}
