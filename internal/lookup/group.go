package lookup

import (
	"github.com/roach88/lazyq/internal/compare"
	"github.com/roach88/lazyq/internal/seq"
)

// GroupBy groups the elements of s by key under ==. Groups are yielded in
// the order their keys first appear; s is buffered on the first pull.
func GroupBy[T any, K comparable](s seq.Sequence[T], key func(T) K) seq.Sequence[*Grouping[K, T]] {
	return GroupByWith(s, key, compare.Default[K]())
}

// GroupByWith groups the elements of s by key under eq.
func GroupByWith[T, K any](s seq.Sequence[T], key func(T) K, eq compare.Equaler[K]) seq.Sequence[*Grouping[K, T]] {
	return GroupBySelectWith(s, key, func(v T) T { return v }, eq)
}

// GroupBySelect groups elem(v) for every element v of s by key under ==.
func GroupBySelect[T any, K comparable, E any](s seq.Sequence[T], key func(T) K, elem func(T) E) seq.Sequence[*Grouping[K, E]] {
	return GroupBySelectWith(s, key, elem, compare.Default[K]())
}

// GroupBySelectWith groups elem(v) for every element v of s by key under eq.
func GroupBySelectWith[T, K, E any](s seq.Sequence[T], key func(T) K, elem func(T) E, eq compare.Equaler[K]) seq.Sequence[*Grouping[K, E]] {
	return seq.Func[*Grouping[K, E]](func() seq.Iterator[*Grouping[K, E]] {
		return &groupIterator[K, E]{
			build: func() (*Lookup[K, E], error) { return BuildSelect(s, key, elem, eq) },
		}
	})
}

type groupIterator[K, E any] struct {
	build func() (*Lookup[K, E], error)

	started bool
	groups  []*Grouping[K, E]
	pos     int
	cur     *Grouping[K, E]
	err     error
}

func (it *groupIterator[K, E]) Next() bool {
	if !it.started {
		it.started = true
		l, err := it.build()
		if err != nil {
			it.err = err
			return false
		}
		it.groups = l.groups
	}
	if it.pos >= len(it.groups) {
		it.groups = nil
		return false
	}
	it.cur = it.groups[it.pos]
	it.pos++
	return true
}

func (it *groupIterator[K, E]) Value() *Grouping[K, E] {
	return it.cur
}

func (it *groupIterator[K, E]) Err() error {
	return it.err
}
