package seq

// Skip bypasses the first n elements of s and yields the rest.
// A non-positive n yields s unchanged; n beyond the end yields nothing.
func Skip[T any](s Sequence[T], n int) Sequence[T] {
	return Func[T](func() Iterator[T] {
		return &skipIterator[T]{src: s.Iterator(), n: n}
	})
}

type skipIterator[T any] struct {
	src     Iterator[T]
	n       int
	skipped bool
}

func (it *skipIterator[T]) Next() bool {
	if !it.skipped {
		it.skipped = true
		for i := 0; i < it.n; i++ {
			if !it.src.Next() {
				return false
			}
		}
	}
	return it.src.Next()
}

func (it *skipIterator[T]) Value() T {
	return it.src.Value()
}

func (it *skipIterator[T]) Err() error {
	return it.src.Err()
}

// Take yields at most the first n elements of s. Nothing past the n-th
// element is pulled from s.
func Take[T any](s Sequence[T], n int) Sequence[T] {
	return Func[T](func() Iterator[T] {
		return &takeIterator[T]{src: s.Iterator(), remaining: n}
	})
}

type takeIterator[T any] struct {
	src       Iterator[T]
	remaining int
}

func (it *takeIterator[T]) Next() bool {
	if it.remaining <= 0 {
		return false
	}
	if !it.src.Next() {
		it.remaining = 0
		return false
	}
	it.remaining--
	return true
}

func (it *takeIterator[T]) Value() T {
	return it.src.Value()
}

func (it *takeIterator[T]) Err() error {
	return it.src.Err()
}

// DefaultIfEmpty yields the elements of s, or the single element def when s
// is empty. A failing s does not produce def.
func DefaultIfEmpty[T any](s Sequence[T], def T) Sequence[T] {
	return Func[T](func() Iterator[T] {
		return &defaultIfEmptyIterator[T]{src: s.Iterator(), def: def}
	})
}

type defaultIfEmptyIterator[T any] struct {
	src     Iterator[T]
	def     T
	yielded bool
	done    bool
	cur     T
}

func (it *defaultIfEmptyIterator[T]) Next() bool {
	if it.done {
		return false
	}
	if it.src.Next() {
		it.yielded = true
		it.cur = it.src.Value()
		return true
	}
	it.done = true
	if it.yielded || it.src.Err() != nil {
		return false
	}
	it.yielded = true
	it.cur = it.def
	return true
}

func (it *defaultIfEmptyIterator[T]) Value() T {
	return it.cur
}

func (it *defaultIfEmptyIterator[T]) Err() error {
	return it.src.Err()
}
