package seq

import "iter"

// Sequence is a lazily evaluated, restartable succession of elements.
//
// Every call to Iterator starts a new enumeration from the beginning.
// Enumerations are independent of each other.
type Sequence[T any] interface {
	Iterator() Iterator[T]
}

// Iterator is the pull state of one enumeration.
//
// Next advances to the next element and reports whether one is available.
// Once Next returns false it keeps returning false. Value returns the element
// Next advanced to. Err reports the failure that ended the enumeration, or nil
// when the sequence was simply exhausted.
type Iterator[T any] interface {
	Next() bool
	Value() T
	Err() error
}

// Func adapts a function that starts an enumeration to a Sequence.
//
// Operators return Func values so that building a chain performs no work:
// upstream iterators are created only when the chain itself is enumerated.
type Func[T any] func() Iterator[T]

// Iterator implements Sequence.
func (f Func[T]) Iterator() Iterator[T] {
	return f()
}

// Slice is a Sequence over an in-memory slice. Enumeration never writes to
// the backing array.
type Slice[T any] []T

// Iterator implements Sequence.
func (s Slice[T]) Iterator() Iterator[T] {
	return &sliceIterator[T]{items: s}
}

// Len returns the number of elements.
func (s Slice[T]) Len() int {
	return len(s)
}

// FromSlice returns a Sequence over items.
func FromSlice[T any](items ...T) Sequence[T] {
	return Slice[T](items)
}

type sliceIterator[T any] struct {
	items []T
	pos   int
	cur   T
}

func (it *sliceIterator[T]) Next() bool {
	if it.pos >= len(it.items) {
		return false
	}
	it.cur = it.items[it.pos]
	it.pos++
	return true
}

func (it *sliceIterator[T]) Value() T {
	return it.cur
}

func (it *sliceIterator[T]) Err() error {
	return nil
}

// Generate returns a Sequence whose elements are produced on demand by next.
//
// next receives the zero-based position of the element being requested and
// returns the element, whether it exists, and an error. A false ok ends the
// sequence; a non-nil error ends it with that failure. next is called at most
// once per position within one enumeration.
func Generate[T any](next func(i int) (T, bool, error)) Sequence[T] {
	return Func[T](func() Iterator[T] {
		return &generateIterator[T]{next: next}
	})
}

type generateIterator[T any] struct {
	next func(int) (T, bool, error)
	pos  int
	cur  T
	err  error
	done bool
}

func (it *generateIterator[T]) Next() bool {
	if it.done {
		return false
	}
	v, ok, err := it.next(it.pos)
	if err != nil {
		it.err = err
		it.done = true
		return false
	}
	if !ok {
		it.done = true
		return false
	}
	it.cur = v
	it.pos++
	return true
}

func (it *generateIterator[T]) Value() T {
	return it.cur
}

func (it *generateIterator[T]) Err() error {
	return it.err
}

// ToSlice enumerates s and returns its elements.
//
// An empty sequence yields an empty, non-nil slice.
func ToSlice[T any](s Sequence[T]) ([]T, error) {
	out := make([]T, 0)
	it := s.Iterator()
	for it.Next() {
		out = append(out, it.Value())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count enumerates s and returns the number of elements.
func Count[T any](s Sequence[T]) (int, error) {
	if sl, ok := s.(Slice[T]); ok {
		return len(sl), nil
	}
	n := 0
	it := s.Iterator()
	for it.Next() {
		n++
	}
	if err := it.Err(); err != nil {
		return 0, err
	}
	return n, nil
}

// ForEach calls fn for each element until fn returns false or the sequence
// ends. It returns the enumeration failure, if any.
func ForEach[T any](s Sequence[T], fn func(T) bool) error {
	it := s.Iterator()
	for it.Next() {
		if !fn(it.Value()) {
			return nil
		}
	}
	return it.Err()
}

// Iter adapts s to a range-over-func iterator.
//
// Each element is yielded with a nil error. If the enumeration fails, a final
// pair carrying the zero value and the failure is yielded.
//
//	for v, err := range seq.Iter(s) {
//	    if err != nil {
//	        return err
//	    }
//	    ...
//	}
func Iter[T any](s Sequence[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		it := s.Iterator()
		for it.Next() {
			if !yield(it.Value(), nil) {
				return
			}
		}
		if err := it.Err(); err != nil {
			var zero T
			yield(zero, err)
		}
	}
}
