// Package testutil provides instrumented sources and deterministic helpers
// for tests.
package testutil

import (
	"errors"

	"github.com/roach88/lazyq/internal/seq"
)

// ErrSourceFault is the failure injected by FailingSource.
var ErrSourceFault = errors.New("source fault")

// CountingSource is a slice-backed sequence that records how it is consumed.
//
// Pulls counts successful Next calls across all enumerations, and Starts
// counts calls to Iterator. Tests use it to prove that operators are lazy
// and that quantifiers short-circuit.
type CountingSource[T any] struct {
	items  []T
	Pulls  int
	Starts int
}

// NewCountingSource creates a counting source over items.
func NewCountingSource[T any](items ...T) *CountingSource[T] {
	return &CountingSource[T]{items: items}
}

// Iterator implements seq.Sequence.
func (c *CountingSource[T]) Iterator() seq.Iterator[T] {
	c.Starts++
	return &countingIterator[T]{src: c, pos: -1}
}

// Reset zeroes the counters.
func (c *CountingSource[T]) Reset() {
	c.Pulls = 0
	c.Starts = 0
}

type countingIterator[T any] struct {
	src *CountingSource[T]
	pos int
}

func (it *countingIterator[T]) Next() bool {
	if it.pos+1 >= len(it.src.items) {
		it.pos = len(it.src.items)
		return false
	}
	it.pos++
	it.src.Pulls++
	return true
}

func (it *countingIterator[T]) Value() T {
	return it.src.items[it.pos]
}

func (it *countingIterator[T]) Err() error {
	return nil
}

// FailingSource yields items[:failAt] and then fails with ErrSourceFault.
func FailingSource[T any](items []T, failAt int) seq.Sequence[T] {
	return seq.Generate(func(i int) (T, bool, error) {
		var zero T
		if i >= failAt {
			return zero, false, ErrSourceFault
		}
		if i >= len(items) {
			return zero, false, nil
		}
		return items[i], true, nil
	})
}
