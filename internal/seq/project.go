package seq

// Select maps every element of s through f. The output has exactly the
// length of s.
func Select[T, R any](s Sequence[T], f func(T) R) Sequence[R] {
	return SelectIndexed(s, func(v T, _ int) R { return f(v) })
}

// SelectIndexed is Select with a mapper that also receives the element's
// zero-based position.
func SelectIndexed[T, R any](s Sequence[T], f func(T, int) R) Sequence[R] {
	return Func[R](func() Iterator[R] {
		return &selectIterator[T, R]{src: s.Iterator(), f: f}
	})
}

type selectIterator[T, R any] struct {
	src   Iterator[T]
	f     func(T, int) R
	index int
	cur   R
}

func (it *selectIterator[T, R]) Next() bool {
	if !it.src.Next() {
		return false
	}
	it.cur = it.f(it.src.Value(), it.index)
	it.index++
	return true
}

func (it *selectIterator[T, R]) Value() R {
	return it.cur
}

func (it *selectIterator[T, R]) Err() error {
	return it.src.Err()
}

// SelectMany maps every element of s to a sub-sequence and concatenates the
// sub-sequences in input order.
func SelectMany[T, R any](s Sequence[T], f func(T) Sequence[R]) Sequence[R] {
	return selectMany(s, func(v T, _ int) Sequence[R] { return f(v) }, second[T, R])
}

// SelectManyIndexed is SelectMany with a mapper that also receives the
// element's zero-based position.
func SelectManyIndexed[T, R any](s Sequence[T], f func(T, int) Sequence[R]) Sequence[R] {
	return selectMany(s, f, second[T, R])
}

// SelectManyResult flattens like SelectMany and combines every element of s
// with each element of its sub-sequence through result.
//
//	pairs := seq.SelectManyResult(as,
//	    func(a int) seq.Sequence[int] { return seq.Where(bs, func(b int) bool { return a < b }) },
//	    func(a, b int) Pair { return Pair{a, b} })
func SelectManyResult[T, C, R any](s Sequence[T], collection func(T) Sequence[C], result func(T, C) R) Sequence[R] {
	return selectMany(s, func(v T, _ int) Sequence[C] { return collection(v) }, result)
}

// SelectManyIndexedResult is SelectManyResult with a collection selector that
// also receives the element's zero-based position.
func SelectManyIndexedResult[T, C, R any](s Sequence[T], collection func(T, int) Sequence[C], result func(T, C) R) Sequence[R] {
	return selectMany(s, collection, result)
}

func second[T, R any](_ T, r R) R {
	return r
}

func selectMany[T, C, R any](s Sequence[T], collection func(T, int) Sequence[C], result func(T, C) R) Sequence[R] {
	return Func[R](func() Iterator[R] {
		return &selectManyIterator[T, C, R]{
			src:        s.Iterator(),
			collection: collection,
			result:     result,
		}
	})
}

// selectManyIterator holds the pending sub-sequence iterator between pulls.
type selectManyIterator[T, C, R any] struct {
	src        Iterator[T]
	collection func(T, int) Sequence[C]
	result     func(T, C) R
	index      int

	outer T
	inner Iterator[C] // nil between sub-sequences
	cur   R
	err   error
}

func (it *selectManyIterator[T, C, R]) Next() bool {
	for it.err == nil {
		if it.inner != nil {
			if it.inner.Next() {
				it.cur = it.result(it.outer, it.inner.Value())
				return true
			}
			if err := it.inner.Err(); err != nil {
				it.err = err
				it.inner = nil
				return false
			}
			it.inner = nil
		}

		if !it.src.Next() {
			return false
		}
		it.outer = it.src.Value()
		it.inner = it.collection(it.outer, it.index).Iterator()
		it.index++
	}
	return false
}

func (it *selectManyIterator[T, C, R]) Value() R {
	return it.cur
}

func (it *selectManyIterator[T, C, R]) Err() error {
	if it.err != nil {
		return it.err
	}
	return it.src.Err()
}
