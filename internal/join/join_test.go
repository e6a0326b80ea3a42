package join_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/lazyq/internal/compare"
	"github.com/roach88/lazyq/internal/join"
	"github.com/roach88/lazyq/internal/seq"
	"github.com/roach88/lazyq/internal/testutil"
)

type product struct {
	name     string
	category string
}

type row struct {
	category string
	product  string
}

var (
	categories = []string{"Beverages", "Condiments", "Vegetables", "Dairy Products", "Seafood"}
	products   = []*product{
		{"Chai", "Beverages"},
		{"Aniseed Syrup", "Condiments"},
		{"Chang", "Beverages"},
		{"Queso Cabrales", "Dairy Products"},
		{"Ikura", "Seafood"},
		{"Tofu", "Produce"},
	}
)

func id(s string) string                { return s }
func productCategory(p *product) string { return p.category }

func TestJoin_InnerCardinality(t *testing.T) {
	rows, err := seq.ToSlice(join.Join(seq.FromSlice(categories...), seq.FromSlice(products...),
		id, productCategory,
		func(c string, p *product) row { return row{c, p.name} },
	))
	require.NoError(t, err)

	assert.Equal(t, []row{
		{"Beverages", "Chai"},
		{"Beverages", "Chang"},
		{"Condiments", "Aniseed Syrup"},
		{"Dairy Products", "Queso Cabrales"},
		{"Seafood", "Ikura"},
	}, rows, "outer order first, then inner order; Vegetables and Produce are dropped")
}

func TestJoinWith_IgnoreCase(t *testing.T) {
	rows, err := seq.ToSlice(join.JoinWith(seq.FromSlice("BEVERAGES"), seq.FromSlice(products...),
		id, productCategory,
		func(c string, p *product) string { return p.name },
		compare.IgnoreCase(),
	))
	require.NoError(t, err)
	assert.Equal(t, []string{"Chai", "Chang"}, rows)
}

func TestGroupJoin_OneResultPerOuter(t *testing.T) {
	type group struct {
		category string
		names    []string
	}
	groups, err := seq.ToSlice(join.GroupJoin(seq.FromSlice(categories...), seq.FromSlice(products...),
		id, productCategory,
		func(c string, ps seq.Sequence[*product]) group {
			names, err := seq.ToSlice(seq.Select(ps, func(p *product) string { return p.name }))
			require.NoError(t, err)
			return group{c, names}
		},
	))
	require.NoError(t, err)

	require.Len(t, groups, len(categories))
	assert.Equal(t, group{"Beverages", []string{"Chai", "Chang"}}, groups[0])
	assert.Equal(t, "Vegetables", groups[2].category)
	assert.NotNil(t, groups[2].names, "a miss is an empty group, not a missing one")
	assert.Empty(t, groups[2].names)
}

func TestLeftOuterJoin_Sentinel(t *testing.T) {
	rows, err := seq.ToSlice(join.LeftOuterJoin(seq.FromSlice(categories...), seq.FromSlice(products...),
		id, productCategory,
		nil,
		func(c string, p *product) row {
			if p == nil {
				return row{c, "(No products)"}
			}
			return row{c, p.name}
		},
	))
	require.NoError(t, err)

	assert.Equal(t, []row{
		{"Beverages", "Chai"},
		{"Beverages", "Chang"},
		{"Condiments", "Aniseed Syrup"},
		{"Vegetables", "(No products)"},
		{"Dairy Products", "Queso Cabrales"},
		{"Seafood", "Ikura"},
	}, rows)

	n := 0
	for _, r := range rows {
		if r.category == "Vegetables" {
			n++
		}
	}
	assert.Equal(t, 1, n, "an unmatched outer element appears exactly once")
}

func TestLeftOuterJoinWith_IgnoreCase(t *testing.T) {
	rows, err := seq.ToSlice(join.LeftOuterJoinWith(seq.FromSlice("seafood", "produce", "grains"), seq.FromSlice(products...),
		id, productCategory,
		&product{name: "-"},
		func(c string, p *product) string { return c + ":" + p.name },
		compare.IgnoreCase(),
	))
	require.NoError(t, err)
	assert.Equal(t, []string{"seafood:Ikura", "produce:Tofu", "grains:-"}, rows)
}

func TestFlattenOrDefault(t *testing.T) {
	got, err := seq.ToSlice(join.FlattenOrDefault(seq.Empty[int](), -1))
	require.NoError(t, err)
	assert.Equal(t, []int{-1}, got)

	got, err = seq.ToSlice(join.FlattenOrDefault(seq.FromSlice(1, 2), -1))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
}

func TestJoin_EmptyOuterNeverReadsInner(t *testing.T) {
	inner := testutil.NewCountingSource(products...)

	rows, err := seq.ToSlice(join.Join[string, *product](seq.Empty[string](), inner,
		id, productCategory,
		func(c string, p *product) string { return p.name },
	))
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Zero(t, inner.Starts)

	groups, err := seq.Count(join.GroupJoin[string, *product](seq.Empty[string](), inner,
		id, productCategory,
		func(c string, ps seq.Sequence[*product]) string { return c },
	))
	require.NoError(t, err)
	assert.Zero(t, groups)
	assert.Zero(t, inner.Starts)
}

func TestJoin_InnerIndexedOncePerEnumeration(t *testing.T) {
	inner := testutil.NewCountingSource(products...)
	q := join.Join[string, *product](seq.FromSlice(categories...), inner,
		id, productCategory,
		func(c string, p *product) string { return p.name },
	)

	_, err := seq.ToSlice(q)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.Starts)

	_, err = seq.ToSlice(q)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.Starts, "each enumeration builds its own index")
}

func TestJoin_Failures(t *testing.T) {
	_, err := seq.ToSlice(join.Join(seq.FromSlice(categories...), testutil.FailingSource(products, 2),
		id, productCategory,
		func(c string, p *product) string { return p.name },
	))
	assert.ErrorIs(t, err, testutil.ErrSourceFault, "inner failure")

	_, err = seq.ToSlice(join.GroupJoin(testutil.FailingSource(categories, 1), seq.FromSlice(products...),
		id, productCategory,
		func(c string, ps seq.Sequence[*product]) string { return c },
	))
	assert.ErrorIs(t, err, testutil.ErrSourceFault, "outer failure")

	_, err = seq.ToSlice(join.LeftOuterJoin(seq.FromSlice(categories...), testutil.FailingSource(products, 0),
		id, productCategory, nil,
		func(c string, p *product) string { return c },
	))
	assert.ErrorIs(t, err, testutil.ErrSourceFault)
}
