// Package lookup provides the hash-keyed multimap behind grouping and joins.
//
// A Lookup maps each distinct key (under an Equaler) to the ordered bucket of
// elements that produced it. Keys remember the order in which they first
// appeared and buckets keep input order, so both grouping and join results
// are deterministic.
package lookup

import (
	"github.com/roach88/lazyq/internal/compare"
	"github.com/roach88/lazyq/internal/seq"
)

// Grouping is a key with every element that mapped to it, in input order.
// A Grouping is itself a sequence of its elements.
type Grouping[K, T any] struct {
	key   K
	elems []T
}

// Key returns the group key.
func (g *Grouping[K, T]) Key() K {
	return g.key
}

// Len returns the number of elements in the group.
func (g *Grouping[K, T]) Len() int {
	return len(g.elems)
}

// At returns the i-th element of the group.
func (g *Grouping[K, T]) At(i int) T {
	return g.elems[i]
}

// Iterator implements seq.Sequence.
func (g *Grouping[K, T]) Iterator() seq.Iterator[T] {
	return seq.Slice[T](g.elems).Iterator()
}

// Lookup is a key → Grouping index.
type Lookup[K, T any] struct {
	eq      compare.Equaler[K]
	buckets map[uint64][]*Grouping[K, T]
	groups  []*Grouping[K, T] // first-occurrence order
}

func newLookup[K, T any](eq compare.Equaler[K]) *Lookup[K, T] {
	return &Lookup[K, T]{
		eq:      eq,
		buckets: make(map[uint64][]*Grouping[K, T]),
	}
}

func (l *Lookup[K, T]) add(k K, v T) {
	h := l.eq.Hash(k)
	for _, g := range l.buckets[h] {
		if l.eq.Equal(g.key, k) {
			g.elems = append(g.elems, v)
			return
		}
	}
	g := &Grouping[K, T]{key: k, elems: []T{v}}
	l.buckets[h] = append(l.buckets[h], g)
	l.groups = append(l.groups, g)
}

// Get returns the group for k.
func (l *Lookup[K, T]) Get(k K) (*Grouping[K, T], bool) {
	for _, g := range l.buckets[l.eq.Hash(k)] {
		if l.eq.Equal(g.key, k) {
			return g, true
		}
	}
	return nil, false
}

// Elements returns the elements for k, or an empty sequence when k is absent.
func (l *Lookup[K, T]) Elements(k K) seq.Sequence[T] {
	if g, ok := l.Get(k); ok {
		return g
	}
	return seq.Empty[T]()
}

// Len returns the number of distinct keys.
func (l *Lookup[K, T]) Len() int {
	return len(l.groups)
}

// Iterator implements seq.Sequence over the groups in first-occurrence order.
func (l *Lookup[K, T]) Iterator() seq.Iterator[*Grouping[K, T]] {
	return seq.Slice[*Grouping[K, T]](l.groups).Iterator()
}

// Build materializes s into a Lookup keyed by key under eq.
func Build[T, K any](s seq.Sequence[T], key func(T) K, eq compare.Equaler[K]) (*Lookup[K, T], error) {
	return BuildSelect(s, key, func(v T) T { return v }, eq)
}

// BuildSelect materializes s into a Lookup keyed by key under eq, storing
// elem(v) for every element v.
func BuildSelect[T, K, E any](s seq.Sequence[T], key func(T) K, elem func(T) E, eq compare.Equaler[K]) (*Lookup[K, E], error) {
	l := newLookup[K, E](eq)
	it := s.Iterator()
	for it.Next() {
		v := it.Value()
		l.add(key(v), elem(v))
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return l, nil
}
