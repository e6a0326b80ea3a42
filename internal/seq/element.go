package seq

// Element selection operators accept optional predicates. With no predicate
// every element is a candidate; with several, a candidate must satisfy all of
// them.

// First returns the first candidate, or a no-element error.
func First[T any](s Sequence[T], preds ...func(T) bool) (T, error) {
	v, ok, err := first(s, matchAll(preds))
	if err != nil {
		return v, err
	}
	if !ok {
		return v, newNoElementError("First")
	}
	return v, nil
}

// FirstOrDefault returns the first candidate, or the zero value of T.
func FirstOrDefault[T any](s Sequence[T], preds ...func(T) bool) (T, error) {
	v, _, err := first(s, matchAll(preds))
	return v, err
}

// Last returns the last candidate, or a no-element error.
func Last[T any](s Sequence[T], preds ...func(T) bool) (T, error) {
	v, ok, err := last(s, matchAll(preds))
	if err != nil {
		return v, err
	}
	if !ok {
		return v, newNoElementError("Last")
	}
	return v, nil
}

// LastOrDefault returns the last candidate, or the zero value of T.
func LastOrDefault[T any](s Sequence[T], preds ...func(T) bool) (T, error) {
	v, _, err := last(s, matchAll(preds))
	return v, err
}

// Single returns the only candidate. It fails with a no-element error when
// there is none and with a multiple-match error when there is more than one.
func Single[T any](s Sequence[T], preds ...func(T) bool) (T, error) {
	v, n, err := single(s, matchAll(preds))
	if err != nil {
		return v, err
	}
	switch {
	case n == 0:
		return v, newNoElementError("Single")
	case n > 1:
		var zero T
		return zero, newMultipleMatchError("Single")
	}
	return v, nil
}

// SingleOrDefault returns the only candidate, or the zero value of T when
// there is none. More than one candidate is still a multiple-match error.
func SingleOrDefault[T any](s Sequence[T], preds ...func(T) bool) (T, error) {
	v, n, err := single(s, matchAll(preds))
	if err != nil {
		return v, err
	}
	if n > 1 {
		var zero T
		return zero, newMultipleMatchError("SingleOrDefault")
	}
	return v, nil
}

// ElementAt returns the element at zero-based position n. It fails with an
// index-out-of-range error when n < 0 or n >= the length of s.
func ElementAt[T any](s Sequence[T], n int) (T, error) {
	v, ok, err := elementAt(s, n)
	if err != nil {
		return v, err
	}
	if !ok {
		return v, newIndexOutOfRangeError("ElementAt", n)
	}
	return v, nil
}

// ElementAtOrDefault returns the element at zero-based position n, or the
// zero value of T when n is out of range.
func ElementAtOrDefault[T any](s Sequence[T], n int) (T, error) {
	v, _, err := elementAt(s, n)
	return v, err
}

func matchAll[T any](preds []func(T) bool) func(T) bool {
	switch len(preds) {
	case 0:
		return func(T) bool { return true }
	case 1:
		return preds[0]
	}
	return func(v T) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

func first[T any](s Sequence[T], pred func(T) bool) (T, bool, error) {
	it := s.Iterator()
	for it.Next() {
		if v := it.Value(); pred(v) {
			return v, true, nil
		}
	}
	var zero T
	return zero, false, it.Err()
}

func last[T any](s Sequence[T], pred func(T) bool) (T, bool, error) {
	var (
		found T
		ok    bool
	)
	it := s.Iterator()
	for it.Next() {
		if v := it.Value(); pred(v) {
			found, ok = v, true
		}
	}
	if err := it.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	return found, ok, nil
}

// single counts candidates up to two. It stops pulling at the second match,
// so n is 0, 1 or 2.
func single[T any](s Sequence[T], pred func(T) bool) (T, int, error) {
	var (
		found T
		n     int
	)
	it := s.Iterator()
	for it.Next() {
		v := it.Value()
		if !pred(v) {
			continue
		}
		n++
		if n > 1 {
			return found, n, nil
		}
		found = v
	}
	if err := it.Err(); err != nil {
		var zero T
		return zero, 0, err
	}
	return found, n, nil
}

func elementAt[T any](s Sequence[T], n int) (T, bool, error) {
	var zero T
	if n < 0 {
		return zero, false, nil
	}
	if sl, ok := s.(Slice[T]); ok {
		if n >= len(sl) {
			return zero, false, nil
		}
		return sl[n], true, nil
	}
	it := s.Iterator()
	for i := 0; it.Next(); i++ {
		if i == n {
			return it.Value(), true, nil
		}
	}
	return zero, false, it.Err()
}
