package seq

import (
	"fmt"
	"math"
)

// Empty returns a sequence with no elements.
func Empty[T any]() Sequence[T] {
	return Slice[T](nil)
}

// Range returns the count consecutive integers starting at start.
//
// A zero count yields an empty sequence. A negative count, or a range that
// would run past math.MaxInt, fails with an invalid-argument error.
func Range(start, count int) (Sequence[int], error) {
	if count < 0 {
		return nil, newInvalidArgumentError("Range", fmt.Sprintf("count must be non-negative, got %d", count))
	}
	if count > 0 && start > math.MaxInt-(count-1) {
		return nil, newInvalidArgumentError("Range", fmt.Sprintf("range %d+%d overflows int", start, count))
	}
	return Func[int](func() Iterator[int] {
		return &rangeIterator{next: start, remaining: count}
	}), nil
}

type rangeIterator struct {
	next      int
	remaining int
	cur       int
}

func (it *rangeIterator) Next() bool {
	if it.remaining <= 0 {
		return false
	}
	it.cur = it.next
	it.next++
	it.remaining--
	return true
}

func (it *rangeIterator) Value() int {
	return it.cur
}

func (it *rangeIterator) Err() error {
	return nil
}

// Repeat returns a sequence that yields v exactly count times.
//
// A zero count yields an empty sequence; a negative count fails with an
// invalid-argument error.
func Repeat[T any](v T, count int) (Sequence[T], error) {
	if count < 0 {
		return nil, newInvalidArgumentError("Repeat", fmt.Sprintf("count must be non-negative, got %d", count))
	}
	return Func[T](func() Iterator[T] {
		return &repeatIterator[T]{v: v, remaining: count}
	}), nil
}

type repeatIterator[T any] struct {
	v         T
	remaining int
}

func (it *repeatIterator[T]) Next() bool {
	if it.remaining <= 0 {
		return false
	}
	it.remaining--
	return true
}

func (it *repeatIterator[T]) Value() T {
	return it.v
}

func (it *repeatIterator[T]) Err() error {
	return nil
}
