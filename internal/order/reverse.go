package order

import "github.com/roach88/lazyq/internal/seq"

// Reverse yields the elements of s in reverse input order, ignoring any key.
// The whole of s is buffered on the first pull.
func Reverse[T any](s seq.Sequence[T]) seq.Sequence[T] {
	return seq.Func[T](func() seq.Iterator[T] {
		return &reverseIterator[T]{src: s}
	})
}

type reverseIterator[T any] struct {
	src     seq.Sequence[T]
	started bool
	items   []T
	pos     int
	cur     T
	err     error
}

func (it *reverseIterator[T]) Next() bool {
	if !it.started {
		it.started = true
		items, err := seq.ToSlice(it.src)
		if err != nil {
			it.err = err
			return false
		}
		it.items = items
		it.pos = len(items)
	}
	if it.pos <= 0 {
		it.items = nil
		return false
	}
	it.pos--
	it.cur = it.items[it.pos]
	return true
}

func (it *reverseIterator[T]) Value() T {
	return it.cur
}

func (it *reverseIterator[T]) Err() error {
	return it.err
}
