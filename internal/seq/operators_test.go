package seq_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/lazyq/internal/seq"
	"github.com/roach88/lazyq/internal/testutil"
)

var (
	numbers = []int{5, 4, 1, 3, 9, 8, 6, 7, 2, 0}
	digits  = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}
)

func TestWhere_PreservesOrder(t *testing.T) {
	got, err := seq.ToSlice(seq.Where(seq.FromSlice(numbers...), func(n int) bool { return n < 5 }))
	require.NoError(t, err)

	assert.Equal(t, []int{4, 1, 3, 2, 0}, got)
	assert.LessOrEqual(t, len(got), len(numbers))
}

func TestWhereIndexed_UsesInputPosition(t *testing.T) {
	// Keep the elements whose value equals their position in the input.
	got, err := seq.ToSlice(seq.WhereIndexed(seq.FromSlice(numbers...), func(n, i int) bool { return n == i }))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6, 7}, got)
}

func TestWhereIndexed_IndexCountsRejectedElements(t *testing.T) {
	var indexes []int
	s := seq.WhereIndexed(seq.FromSlice("a", "b", "c", "d"), func(_ string, i int) bool {
		indexes = append(indexes, i)
		return i%2 == 1
	})

	got, err := seq.ToSlice(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "d"}, got)
	assert.Equal(t, []int{0, 1, 2, 3}, indexes)
}

func TestSelect_PreservesLength(t *testing.T) {
	got, err := seq.ToSlice(seq.Select(seq.FromSlice(numbers...), func(n int) int { return n + 1 }))
	require.NoError(t, err)

	assert.Len(t, got, len(numbers))
	assert.Equal(t, []int{6, 5, 2, 4, 10, 9, 7, 8, 3, 1}, got)
}

func TestSelect_ToOtherType(t *testing.T) {
	got, err := seq.ToSlice(seq.Select(seq.FromSlice(numbers...), func(n int) string { return digits[n] }))
	require.NoError(t, err)
	assert.Equal(t, []string{"five", "four", "one", "three", "nine", "eight", "six", "seven", "two", "zero"}, got)
}

func TestSelectIndexed_InPlace(t *testing.T) {
	got, err := seq.ToSlice(seq.SelectIndexed(seq.FromSlice(numbers...), func(n, i int) bool { return n == i }))
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false, true, false, false, true, true, false, false}, got)
}

func TestSelectMany_Flattens(t *testing.T) {
	words := seq.FromSlice("ab", "", "cde")
	got, err := seq.ToSlice(seq.SelectMany(words, func(w string) seq.Sequence[string] {
		return seq.FromSlice(strings.Split(w, "")...)
	}))
	require.NoError(t, err)

	// strings.Split("", "") yields no elements, so the empty word contributes nothing.
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got)
}

func TestSelectManyResult_CrossProductWithFilter(t *testing.T) {
	type pair struct{ a, b int }
	as := seq.FromSlice(0, 2, 4, 5, 6, 8, 9)
	bs := seq.FromSlice(1, 3, 5, 7, 8)

	got, err := seq.ToSlice(seq.SelectManyResult(as,
		func(a int) seq.Sequence[int] { return seq.Where(bs, func(b int) bool { return a < b }) },
		func(a, b int) pair { return pair{a, b} },
	))
	require.NoError(t, err)

	expected := []pair{
		{0, 1}, {0, 3}, {0, 5}, {0, 7}, {0, 8},
		{2, 3}, {2, 5}, {2, 7}, {2, 8},
		{4, 5}, {4, 7}, {4, 8},
		{5, 7}, {5, 8},
		{6, 7}, {6, 8},
	}
	assert.Equal(t, expected, got)
}

func TestSelectManyIndexed(t *testing.T) {
	got, err := seq.ToSlice(seq.SelectManyIndexed(seq.FromSlice("x", "y"), func(s string, i int) seq.Sequence[string] {
		r, err := seq.Repeat(fmt.Sprintf("%s%d", s, i), i+1)
		require.NoError(t, err)
		return r
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"x0", "y1", "y1"}, got)
}

func TestSelectManyIndexedResult(t *testing.T) {
	got, err := seq.ToSlice(seq.SelectManyIndexedResult(seq.FromSlice("a", "b"),
		func(_ string, i int) seq.Sequence[int] { return seq.FromSlice(i, i*10) },
		func(s string, n int) string { return fmt.Sprintf("%s:%d", s, n) },
	))
	require.NoError(t, err)
	assert.Equal(t, []string{"a:0", "a:0", "b:1", "b:10"}, got)
}

func TestSelectMany_InnerFailureStopsEnumeration(t *testing.T) {
	s := seq.SelectMany(seq.FromSlice(1, 2), func(n int) seq.Sequence[int] {
		if n == 2 {
			return testutil.FailingSource([]int{20, 21}, 1)
		}
		return seq.FromSlice(10)
	})

	var got []int
	it := s.Iterator()
	for it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{10, 20}, got)
	assert.ErrorIs(t, it.Err(), testutil.ErrSourceFault)
	assert.False(t, it.Next())
}

func TestSkipTake(t *testing.T) {
	s := seq.FromSlice(numbers...)

	got, err := seq.ToSlice(seq.Skip(s, 7))
	require.NoError(t, err)
	assert.Equal(t, []int{7, 2, 0}, got)

	got, err = seq.ToSlice(seq.Skip(s, 20))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = seq.ToSlice(seq.Skip(s, -1))
	require.NoError(t, err)
	assert.Equal(t, numbers, got)

	got, err = seq.ToSlice(seq.Take(s, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 1}, got)

	got, err = seq.ToSlice(seq.Take(s, 0))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTake_StopsPulling(t *testing.T) {
	src := testutil.NewCountingSource(numbers...)

	_, err := seq.ToSlice(seq.Take[int](src, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, src.Pulls)
}

func TestDefaultIfEmpty(t *testing.T) {
	got, err := seq.ToSlice(seq.DefaultIfEmpty(seq.Empty[string](), "(none)"))
	require.NoError(t, err)
	assert.Equal(t, []string{"(none)"}, got)

	got, err = seq.ToSlice(seq.DefaultIfEmpty(seq.FromSlice("a", "b"), "(none)"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	_, err = seq.ToSlice(seq.DefaultIfEmpty(testutil.FailingSource([]string{}, 0), "(none)"))
	assert.ErrorIs(t, err, testutil.ErrSourceFault, "a failure is not an empty sequence")
}

func TestEmpty(t *testing.T) {
	it := seq.Empty[float64]().Iterator()
	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}

func TestRange_OddEven(t *testing.T) {
	r, err := seq.Range(100, 20)
	require.NoError(t, err)

	tagged := seq.Select(r, func(n int) string {
		if n%2 == 0 {
			return fmt.Sprintf("%d even", n)
		}
		return fmt.Sprintf("%d odd", n)
	})
	got, err := seq.ToSlice(tagged)
	require.NoError(t, err)

	require.Len(t, got, 20)
	assert.Equal(t, "100 even", got[0])
	assert.Equal(t, "101 odd", got[1])
	assert.Equal(t, "119 odd", got[19])

	first, err := seq.First(r)
	require.NoError(t, err)
	assert.Equal(t, 100, first)
	last, err := seq.Last(r)
	require.NoError(t, err)
	assert.Equal(t, 119, last)
}

func TestRange_EdgeCounts(t *testing.T) {
	r, err := seq.Range(5, 0)
	require.NoError(t, err)
	n, err := seq.Count(r)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = seq.Range(0, -1)
	require.Error(t, err)
	assert.True(t, seq.IsInvalidArgument(err))
}

func TestRepeat(t *testing.T) {
	r, err := seq.Repeat(7, 10)
	require.NoError(t, err)
	got, err := seq.ToSlice(r)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7, 7, 7, 7, 7, 7, 7, 7, 7}, got)

	none, err := seq.Repeat("x", 0)
	require.NoError(t, err)
	got2, err := seq.ToSlice(none)
	require.NoError(t, err)
	assert.Empty(t, got2)

	_, err = seq.Repeat("x", -3)
	assert.True(t, seq.IsInvalidArgument(err))
}
