// Package order implements stable multi-key ordering and positional reversal
// over lazy sequences.
//
// An Ordered sequence carries its sort levels, most significant first.
// Enumerating it buffers the whole upstream sequence, extracts every level's
// key once per element, and runs a single sort with a composite comparison:
// level by level, then the element's original position. The position
// tie-break makes the sort stable by construction, so ThenBy refines ties of
// earlier levels without reordering their settled groups.
//
// Descending levels negate their comparison. The buffer is never reversed,
// which is why Reverse(OrderBy(s, k)) and OrderByDescending(s, k) differ when
// keys tie: the first flips tied elements, the second keeps them in input
// order.
package order

import (
	"cmp"
	"slices"

	"github.com/roach88/lazyq/internal/compare"
	"github.com/roach88/lazyq/internal/seq"
)

// Direction selects ascending or descending order for one sort level.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Ordered is a sequence sorted by one or more key levels.
//
// Ordered values are immutable: ThenBy and friends return a new Ordered and
// leave the receiver usable on its own.
type Ordered[T any] struct {
	src    seq.Sequence[T]
	levels []level[T]
}

// level is one (key selector, comparer, direction) tuple.
type level[T any] interface {
	extract(items []T) extracted
	direction() Direction
}

// extracted holds one level's keys for a buffered input, indexed by original
// position.
type extracted interface {
	compare(i, j int) int
}

type keyLevel[T, K any] struct {
	key func(T) K
	cmp compare.Comparer[K]
	dir Direction
}

func (l keyLevel[T, K]) extract(items []T) extracted {
	keys := make([]K, len(items))
	for i, v := range items {
		keys[i] = l.key(v)
	}
	return &keyed[K]{keys: keys, cmp: l.cmp, desc: l.dir == Descending}
}

func (l keyLevel[T, K]) direction() Direction {
	return l.dir
}

type keyed[K any] struct {
	keys []K
	cmp  compare.Comparer[K]
	desc bool
}

func (k *keyed[K]) compare(i, j int) int {
	c := compare.Sign(k.cmp.Compare(k.keys[i], k.keys[j]))
	if k.desc {
		return -c
	}
	return c
}

// Iterator implements seq.Sequence.
func (o *Ordered[T]) Iterator() seq.Iterator[T] {
	return &sortIterator[T]{src: o.src, levels: o.levels}
}

// Levels returns the direction of each sort level, most significant first.
func (o *Ordered[T]) Levels() []Direction {
	dirs := make([]Direction, len(o.levels))
	for i, l := range o.levels {
		dirs[i] = l.direction()
	}
	return dirs
}

func (o *Ordered[T]) then(l level[T]) *Ordered[T] {
	return &Ordered[T]{
		src:    o.src,
		levels: slices.Concat(o.levels, []level[T]{l}),
	}
}

func newOrdered[T, K any](s seq.Sequence[T], key func(T) K, c compare.Comparer[K], dir Direction) *Ordered[T] {
	return &Ordered[T]{
		src:    s,
		levels: []level[T]{keyLevel[T, K]{key: key, cmp: c, dir: dir}},
	}
}

// OrderBy sorts s ascending by the natural order of key.
func OrderBy[T any, K cmp.Ordered](s seq.Sequence[T], key func(T) K) *Ordered[T] {
	return newOrdered(s, key, compare.Natural[K](), Ascending)
}

// OrderByWith sorts s ascending by key under c.
func OrderByWith[T, K any](s seq.Sequence[T], key func(T) K, c compare.Comparer[K]) *Ordered[T] {
	return newOrdered(s, key, c, Ascending)
}

// OrderByDescending sorts s descending by the natural order of key.
func OrderByDescending[T any, K cmp.Ordered](s seq.Sequence[T], key func(T) K) *Ordered[T] {
	return newOrdered(s, key, compare.Natural[K](), Descending)
}

// OrderByDescendingWith sorts s descending by key under c.
func OrderByDescendingWith[T, K any](s seq.Sequence[T], key func(T) K, c compare.Comparer[K]) *Ordered[T] {
	return newOrdered(s, key, c, Descending)
}

// ThenBy adds an ascending subordinate level ordered naturally by key.
func ThenBy[T any, K cmp.Ordered](o *Ordered[T], key func(T) K) *Ordered[T] {
	return o.then(keyLevel[T, K]{key: key, cmp: compare.Natural[K](), dir: Ascending})
}

// ThenByWith adds an ascending subordinate level ordered by key under c.
func ThenByWith[T, K any](o *Ordered[T], key func(T) K, c compare.Comparer[K]) *Ordered[T] {
	return o.then(keyLevel[T, K]{key: key, cmp: c, dir: Ascending})
}

// ThenByDescending adds a descending subordinate level ordered naturally by key.
func ThenByDescending[T any, K cmp.Ordered](o *Ordered[T], key func(T) K) *Ordered[T] {
	return o.then(keyLevel[T, K]{key: key, cmp: compare.Natural[K](), dir: Descending})
}

// ThenByDescendingWith adds a descending subordinate level ordered by key
// under c.
func ThenByDescendingWith[T, K any](o *Ordered[T], key func(T) K, c compare.Comparer[K]) *Ordered[T] {
	return o.then(keyLevel[T, K]{key: key, cmp: c, dir: Descending})
}

// sortIterator materializes and sorts on the first pull.
type sortIterator[T any] struct {
	src    seq.Sequence[T]
	levels []level[T]

	started bool
	items   []T
	pos     int
	cur     T
	err     error
}

func (it *sortIterator[T]) Next() bool {
	if !it.started {
		it.started = true
		items, err := seq.ToSlice(it.src)
		if err != nil {
			it.err = err
			return false
		}
		it.items = sortStable(items, it.levels)
	}
	if it.pos >= len(it.items) {
		it.items = nil
		return false
	}
	it.cur = it.items[it.pos]
	it.pos++
	return true
}

func (it *sortIterator[T]) Value() T {
	return it.cur
}

func (it *sortIterator[T]) Err() error {
	return it.err
}

// sortStable returns items ordered by levels. Each element is decorated with
// its original index, which is the final tie-break.
func sortStable[T any](items []T, levels []level[T]) []T {
	keys := make([]extracted, len(levels))
	for i, l := range levels {
		keys[i] = l.extract(items)
	}

	perm := make([]int, len(items))
	for i := range perm {
		perm[i] = i
	}
	slices.SortFunc(perm, func(a, b int) int {
		for _, k := range keys {
			if c := k.compare(a, b); c != 0 {
				return c
			}
		}
		return cmp.Compare(a, b)
	})

	out := make([]T, len(items))
	for i, p := range perm {
		out[i] = items[p]
	}
	return out
}
