package seq

// Where returns the elements of s for which pred holds, in their original
// relative order.
func Where[T any](s Sequence[T], pred func(T) bool) Sequence[T] {
	return WhereIndexed(s, func(v T, _ int) bool { return pred(v) })
}

// WhereIndexed is Where with a predicate that also receives the element's
// zero-based position in s (not in the filtered output).
func WhereIndexed[T any](s Sequence[T], pred func(T, int) bool) Sequence[T] {
	return Func[T](func() Iterator[T] {
		return &whereIterator[T]{src: s.Iterator(), pred: pred}
	})
}

type whereIterator[T any] struct {
	src   Iterator[T]
	pred  func(T, int) bool
	index int
	cur   T
}

func (it *whereIterator[T]) Next() bool {
	for it.src.Next() {
		v := it.src.Value()
		i := it.index
		it.index++
		if it.pred(v, i) {
			it.cur = v
			return true
		}
	}
	return false
}

func (it *whereIterator[T]) Value() T {
	return it.cur
}

func (it *whereIterator[T]) Err() error {
	return it.src.Err()
}
