package samples

import (
	"github.com/roach88/lazyq/internal/fixtures"
	"github.com/roach88/lazyq/internal/join"
	"github.com/roach88/lazyq/internal/seq"
	"github.com/roach88/lazyq/internal/value"
)

// noProducts names the product of a category that has none.
const noProducts = "(No products)"

func categoryRow(category, product string) value.Value {
	return value.NewObject(
		value.F("category", value.String(category)),
		value.F("product", value.String(product)),
	)
}

func joinSamples() []Sample {
	return []Sample{
		{
			Name:        "join-query",
			Group:       GroupJoin,
			Description: "Pairs of category and product name; categories without products are left out.",
			Run: func() (value.Value, error) {
				ps, err := products()
				if err != nil {
					return nil, err
				}
				rows := join.Join(seq.FromSlice(categories...), ps,
					identity[string], productCategory,
					func(c string, p *fixtures.Product) value.Value { return categoryRow(c, p.Name) },
				)
				return collect(rows, identity[value.Value])
			},
		},
		{
			Name:        "group-join-query",
			Group:       GroupJoin,
			Description: "Each category with the names of its products.",
			Run: func() (value.Value, error) {
				ps, err := products()
				if err != nil {
					return nil, err
				}
				type group struct {
					category string
					products seq.Sequence[*fixtures.Product]
				}
				groups := join.GroupJoin(seq.FromSlice(categories...), ps,
					identity[string], productCategory,
					func(c string, matched seq.Sequence[*fixtures.Product]) group { return group{c, matched} },
				)

				out := value.Array{}
				it := groups.Iterator()
				for it.Next() {
					g := it.Value()
					names, err := productNames(g.products)
					if err != nil {
						return nil, err
					}
					out = append(out, value.NewObject(
						value.F("category", value.String(g.category)),
						value.F("products", names),
					))
				}
				if err := it.Err(); err != nil {
					return nil, err
				}
				return out, nil
			},
		},
		{
			Name:        "left-outer-join",
			Group:       GroupJoin,
			Description: "Pairs of category and product name, keeping categories that have no products.",
			Run: func() (value.Value, error) {
				ps, err := products()
				if err != nil {
					return nil, err
				}
				rows := join.LeftOuterJoin(seq.FromSlice(categories...), ps,
					identity[string], productCategory,
					nil,
					func(c string, p *fixtures.Product) value.Value {
						if p == nil {
							return categoryRow(c, noProducts)
						}
						return categoryRow(c, p.Name)
					},
				)
				return collect(rows, identity[value.Value])
			},
		},
	}
}
