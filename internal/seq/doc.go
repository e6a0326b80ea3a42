// Package seq implements the lazy, pull-based sequence core of lazyq and the
// element-wise operators built directly on it.
//
// ARCHITECTURE:
//
// Sequence and Iterator:
// A Sequence is a restartable description of a query. Calling Iterator()
// starts a fresh, independent enumeration; nothing is evaluated before that
// call and nothing upstream is mutated by it. An Iterator is an explicit
// state object in the database/sql.Rows shape:
//
//	it := s.Iterator()
//	for it.Next() {
//	    use(it.Value())
//	}
//	if err := it.Err(); err != nil {
//	    return err
//	}
//
// Operators compose by wrapping the upstream Iterator. Position counters and
// pending sub-iterators (SelectMany) live in iterator fields, so suspension
// happens at the Next boundary without goroutines or coroutines.
//
// Failure:
// A source failure stops the enumeration at the faulting element. Next
// returns false and Err reports the failure. Elements yielded before the
// fault remain valid.
//
// ELEMENT SELECTION POLICY:
//
//	Operator            zero matches        one match    more than one
//	First               NO_ELEMENT          element      first in order
//	FirstOrDefault      zero value          element      first in order
//	Last                NO_ELEMENT          element      last in order
//	LastOrDefault       zero value          element      last in order
//	Single              NO_ELEMENT          element      MULTIPLE_MATCH
//	SingleOrDefault     zero value          element      MULTIPLE_MATCH
//	ElementAt(n)        INDEX_OUT_OF_RANGE when n < 0 or n >= length
//	ElementAtOrDefault  zero value when n is out of range
//
// Quantifiers (Any, All, Contains, SequenceEqual) stop pulling as soon as the
// answer is known.
//
// CONCURRENCY:
//
// Evaluation is single-threaded. Iterators are not safe for concurrent use;
// each call to Iterator() owns its own state.
package seq
