package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/lazyq/internal/compare"
	"github.com/roach88/lazyq/internal/order"
	"github.com/roach88/lazyq/internal/seq"
	"github.com/roach88/lazyq/internal/testutil"
)

var (
	digits = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}
	mixed  = []string{"aPPLE", "AbAcUs", "bRaNcH", "BlUeBeRrY", "ClOvEr", "cHeRry"}
)

func identity(s string) string { return s }
func length(s string) int      { return len(s) }

func collect[T any](t *testing.T, s seq.Sequence[T]) []T {
	t.Helper()
	got, err := seq.ToSlice(s)
	require.NoError(t, err)
	return got
}

func TestOrderBy(t *testing.T) {
	words := seq.FromSlice("cherry", "apple", "blueberry")

	assert.Equal(t, []string{"apple", "blueberry", "cherry"},
		collect[string](t, order.OrderBy(words, identity)))
	assert.Equal(t, []string{"apple", "cherry", "blueberry"},
		collect[string](t, order.OrderBy(words, length)))
}

func TestOrderBy_DoesNotMutateSource(t *testing.T) {
	items := []string{"cherry", "apple", "blueberry"}
	_ = collect[string](t, order.OrderBy(seq.FromSlice(items...), identity))
	assert.Equal(t, []string{"cherry", "apple", "blueberry"}, items)
}

func TestOrderByWith_IgnoreCase(t *testing.T) {
	got := collect[string](t, order.OrderByWith(seq.FromSlice(mixed...), identity, compare.IgnoreCase()))
	assert.Equal(t, []string{"AbAcUs", "aPPLE", "BlUeBeRrY", "bRaNcH", "cHeRry", "ClOvEr"}, got)
}

func TestOrderByDescending(t *testing.T) {
	doubles := seq.FromSlice(1.7, 2.3, 1.9, 4.1, 2.9)
	got := collect[float64](t, order.OrderByDescending(doubles, func(d float64) float64 { return d }))
	assert.Equal(t, []float64{4.1, 2.9, 2.3, 1.9, 1.7}, got)
}

func TestOrderByDescendingWith_IgnoreCase(t *testing.T) {
	got := collect[string](t, order.OrderByDescendingWith(seq.FromSlice(mixed...), identity, compare.IgnoreCase()))
	assert.Equal(t, []string{"ClOvEr", "cHeRry", "bRaNcH", "BlUeBeRrY", "aPPLE", "AbAcUs"}, got)
}

func TestThenBy(t *testing.T) {
	got := collect[string](t, order.ThenBy(order.OrderBy(seq.FromSlice(digits...), length), identity))
	assert.Equal(t, []string{
		"one", "six", "two",
		"five", "four", "nine", "zero",
		"eight", "seven", "three",
	}, got)
}

func TestThenByWith_IgnoreCase(t *testing.T) {
	o := order.ThenByWith(order.OrderBy(seq.FromSlice(mixed...), length), identity, compare.IgnoreCase())
	assert.Equal(t, []string{"aPPLE", "AbAcUs", "bRaNcH", "cHeRry", "ClOvEr", "BlUeBeRrY"}, collect[string](t, o))
}

func TestThenByDescendingWith_IgnoreCase(t *testing.T) {
	o := order.ThenByDescendingWith(order.OrderBy(seq.FromSlice(mixed...), length), identity, compare.IgnoreCase())
	assert.Equal(t, []string{"aPPLE", "ClOvEr", "cHeRry", "bRaNcH", "AbAcUs", "BlUeBeRrY"}, collect[string](t, o))
}

func TestThenByDescending_MixedDirections(t *testing.T) {
	type item struct {
		group string
		price int
	}
	items := seq.FromSlice(
		item{"b", 10}, item{"a", 5}, item{"b", 30}, item{"a", 7}, item{"b", 20},
	)
	o := order.ThenByDescending(
		order.OrderBy(items, func(i item) string { return i.group }),
		func(i item) int { return i.price },
	)

	assert.Equal(t, []item{{"a", 7}, {"a", 5}, {"b", 30}, {"b", 20}, {"b", 10}}, collect[item](t, o))
	assert.Equal(t, []order.Direction{order.Ascending, order.Descending}, o.Levels())
}

func TestOrderBy_StableOnTies(t *testing.T) {
	// Every length-4 digit keeps its input order: zero, four, five, nine.
	got := collect[string](t, order.OrderBy(seq.FromSlice(digits...), length))
	assert.Equal(t, []string{
		"one", "two", "six",
		"zero", "four", "five", "nine",
		"three", "seven", "eight",
	}, got)
}

func TestOrderByDescending_StableOnTies(t *testing.T) {
	got := collect[string](t, order.OrderByDescending(seq.FromSlice(digits...), length))
	assert.Equal(t, []string{
		"three", "seven", "eight",
		"zero", "four", "five", "nine",
		"one", "two", "six",
	}, got)
}

func TestReverseDiffersFromDescendingOnTies(t *testing.T) {
	words := seq.FromSlice("bb1", "a", "bb2", "c")

	reversed := collect[string](t, order.Reverse[string](order.OrderBy(words, length)))
	descending := collect[string](t, order.OrderByDescending(words, length))

	assert.Equal(t, []string{"bb2", "bb1", "c", "a"}, reversed)
	assert.Equal(t, []string{"bb1", "bb2", "a", "c"}, descending)
	assert.NotEqual(t, reversed, descending)
}

func TestThenBy_LeavesReceiverUsable(t *testing.T) {
	base := order.OrderBy(seq.FromSlice(digits...), length)
	refined := order.ThenBy(base, identity)

	assert.Len(t, base.Levels(), 1)
	assert.Len(t, refined.Levels(), 2)
	assert.Equal(t, "zero", collect[string](t, base)[3])
	assert.Equal(t, "five", collect[string](t, refined)[3])
}

func TestOrderBy_Empty(t *testing.T) {
	got := collect[int](t, order.OrderBy(seq.Empty[int](), func(n int) int { return n }))
	assert.Empty(t, got)

	got = collect[int](t, order.Reverse(seq.Empty[int]()))
	assert.Empty(t, got)
}

func TestOrderBy_DefersUntilFirstPull(t *testing.T) {
	src := testutil.NewCountingSource(3, 1, 2)
	o := order.OrderBy[int](src, func(n int) int { return n })
	assert.Zero(t, src.Starts)

	it := o.Iterator()
	require.True(t, it.Next())
	assert.Equal(t, 1, it.Value())
	assert.Equal(t, 3, src.Pulls, "the whole input is buffered on the first pull")
}

func TestOrderBy_SourceFailure(t *testing.T) {
	_, err := seq.ToSlice[int](order.OrderBy(testutil.FailingSource([]int{2, 1}, 1), func(n int) int { return n }))
	assert.ErrorIs(t, err, testutil.ErrSourceFault)

	_, err = seq.ToSlice(order.Reverse(testutil.FailingSource([]int{2, 1}, 1)))
	assert.ErrorIs(t, err, testutil.ErrSourceFault)
}

func TestReverse(t *testing.T) {
	secondI := seq.Where(seq.FromSlice(digits...), func(d string) bool { return d[1] == 'i' })
	assert.Equal(t, []string{"nine", "eight", "six", "five"}, collect(t, order.Reverse(secondI)))
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "asc", order.Ascending.String())
	assert.Equal(t, "desc", order.Descending.String())
}
