package join

import (
	"github.com/roach88/lazyq/internal/compare"
	"github.com/roach88/lazyq/internal/seq"
)

// GroupJoin pairs every outer element with the sequence of inner elements
// whose keys are equal under ==, emitting exactly one result per outer
// element. The group handed to result is empty when nothing matches.
func GroupJoin[O, I any, K comparable, R any](
	outer seq.Sequence[O],
	inner seq.Sequence[I],
	outerKey func(O) K,
	innerKey func(I) K,
	result func(O, seq.Sequence[I]) R,
) seq.Sequence[R] {
	return GroupJoinWith(outer, inner, outerKey, innerKey, result, compare.Default[K]())
}

// GroupJoinWith is GroupJoin with keys compared under eq.
func GroupJoinWith[O, I, K, R any](
	outer seq.Sequence[O],
	inner seq.Sequence[I],
	outerKey func(O) K,
	innerKey func(I) K,
	result func(O, seq.Sequence[I]) R,
	eq compare.Equaler[K],
) seq.Sequence[R] {
	return seq.Func[R](func() seq.Iterator[R] {
		return &groupJoinIterator[O, I, K, R]{
			index:    newIndex(inner, innerKey, eq),
			outer:    outer.Iterator(),
			outerKey: outerKey,
			result:   result,
		}
	})
}

type groupJoinIterator[O, I, K, R any] struct {
	index    *index[I, K]
	outer    seq.Iterator[O]
	outerKey func(O) K
	result   func(O, seq.Sequence[I]) R

	cur  R
	done bool
	err  error
}

func (it *groupJoinIterator[O, I, K, R]) Next() bool {
	if it.done {
		return false
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
	o := it.outer.Value()
	it.cur = it.result(o, l.Elements(it.outerKey(o)))
	return true
}

func (it *groupJoinIterator[O, I, K, R]) finish() {
	it.done = true
	it.index.release()
}

func (it *groupJoinIterator[O, I, K, R]) Value() R {
	return it.cur
}

func (it *groupJoinIterator[O, I, K, R]) Err() error {
	if it.err != nil {
		return it.err
	}
	return it.outer.Err()
}

// FlattenOrDefault yields the elements of group, or the single element def
// when group is empty. It is the default-if-empty expansion that keeps an
// unmatched outer element in a flattened join.
func FlattenOrDefault[T any](group seq.Sequence[T], def T) seq.Sequence[T] {
	return seq.DefaultIfEmpty(group, def)
}

// LeftOuterJoin emits result(o, i) for every matching pair, and result(o, def)
// once for every outer element with no match.
//
// It is GroupJoin followed by flattening each group through FlattenOrDefault:
//
//	join.LeftOuterJoin(categories, products,
//	    func(c string) string { return c },
//	    func(p *Product) string { return p.Category },
//	    nil,
//	    func(c string, p *Product) Row { ... p == nil means no products ... })
func LeftOuterJoin[O, I any, K comparable, R any](
	outer seq.Sequence[O],
	inner seq.Sequence[I],
	outerKey func(O) K,
	innerKey func(I) K,
	def I,
	result func(O, I) R,
) seq.Sequence[R] {
	return LeftOuterJoinWith(outer, inner, outerKey, innerKey, def, result, compare.Default[K]())
}

// LeftOuterJoinWith is LeftOuterJoin with keys compared under eq.
func LeftOuterJoinWith[O, I, K, R any](
	outer seq.Sequence[O],
	inner seq.Sequence[I],
	outerKey func(O) K,
	innerKey func(I) K,
	def I,
	result func(O, I) R,
	eq compare.Equaler[K],
) seq.Sequence[R] {
	grouped := GroupJoinWith(outer, inner, outerKey, innerKey,
		func(o O, g seq.Sequence[I]) matched[O, I] { return matched[O, I]{outer: o, group: g} },
		eq,
	)
	return seq.SelectManyResult(grouped,
		func(m matched[O, I]) seq.Sequence[I] { return FlattenOrDefault(m.group, def) },
		func(m matched[O, I], i I) R { return result(m.outer, i) },
	)
}

// matched is one GroupJoin result: an outer element and its inner group.
type matched[O, I any] struct {
	outer O
	group seq.Sequence[I]
}
