package samples

import (
	"strings"

	"github.com/roach88/lazyq/internal/fixtures"
	"github.com/roach88/lazyq/internal/lookup"
	"github.com/roach88/lazyq/internal/seq"
	"github.com/roach88/lazyq/internal/value"
)

type productGroup = *lookup.Grouping[string, *fixtures.Product]

func quantifierSamples() []Sample {
	return []Sample{
		{
			Name:        "equal-sequence",
			Group:       GroupQuantifier,
			Description: "Two word lists with the same words in the same order.",
			Run: func() (value.Value, error) {
				ok, err := seq.SequenceEqual(seq.FromSlice(fruits...), seq.FromSlice("cherry", "apple", "blueberry"))
				return value.Bool(ok), err
			},
		},
		{
			Name:        "not-equal-sequence",
			Group:       GroupQuantifier,
			Description: "Two word lists with the same words in a different order.",
			Run: func() (value.Value, error) {
				ok, err := seq.SequenceEqual(seq.FromSlice(fruits...), seq.FromSlice("apple", "blueberry", "cherry"))
				return value.Bool(ok), err
			},
		},
		{
			Name:        "any-matching-elements",
			Group:       GroupQuantifier,
			Description: "Whether any word contains \"ei\".",
			Run: func() (value.Value, error) {
				words := seq.FromSlice("believe", "relief", "receipt", "field")
				ok, err := seq.Any(words, func(w string) bool { return strings.Contains(w, "ei") })
				return value.Bool(ok), err
			},
		},
		{
			Name:        "grouped-any-matched-elements",
			Group:       GroupQuantifier,
			Description: "Categories with at least one product out of stock.",
			Run: func() (value.Value, error) {
				return productGroups(func(g productGroup) (bool, error) {
					return seq.Any[*fixtures.Product](g, func(p *fixtures.Product) bool { return p.UnitsInStock == 0 })
				})
			},
		},
		{
			Name:        "all-matched-elements",
			Group:       GroupQuantifier,
			Description: "Whether every number is odd.",
			Run: func() (value.Value, error) {
				ok, err := seq.All(seq.FromSlice(1, 11, 3, 19, 41, 65, 19), func(n int) bool { return n%2 == 1 })
				return value.Bool(ok), err
			},
		},
		{
			Name:        "grouped-all-matched-elements",
			Group:       GroupQuantifier,
			Description: "Categories whose products are all in stock.",
			Run: func() (value.Value, error) {
				return productGroups(func(g productGroup) (bool, error) {
					return seq.All[*fixtures.Product](g, func(p *fixtures.Product) bool { return p.UnitsInStock > 0 })
				})
			},
		},
		{
			Name:        "has-a-three",
			Group:       GroupQuantifier,
			Description: "Whether the numbers contain 3.",
			Run: func() (value.Value, error) {
				ok, err := seq.Contains(seq.FromSlice(2, 3, 4), 3)
				return value.Bool(ok), err
			},
		},
	}
}

// productGroups groups the products by category and renders the groups
// that satisfy keep, in first-occurrence order of their category.
func productGroups(keep func(productGroup) (bool, error)) (value.Value, error) {
	ps, err := products()
	if err != nil {
		return nil, err
	}

	var keepErr error
	kept := seq.Where(lookup.GroupBy(ps, productCategory), func(g productGroup) bool {
		if keepErr != nil {
			return false
		}
		ok, err := keep(g)
		if err != nil {
			keepErr = err
		}
		return ok
	})

	out := value.Array{}
	it := kept.Iterator()
	for it.Next() {
		g := it.Value()
		names, err := productNames(g)
		if err != nil {
			return nil, err
		}
		out = append(out, value.NewObject(
			value.F("category", value.String(g.Key())),
			value.F("products", names),
		))
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	if keepErr != nil {
		return nil, keepErr
	}
	return out, nil
}
