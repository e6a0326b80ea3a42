package samples

import (
	"github.com/cockroachdb/apd/v3"
	"golang.org/x/text/language"

	"github.com/roach88/lazyq/internal/compare"
	"github.com/roach88/lazyq/internal/fixtures"
	"github.com/roach88/lazyq/internal/order"
	"github.com/roach88/lazyq/internal/seq"
	"github.com/roach88/lazyq/internal/value"
)

func sortingSamples() []Sample {
	return []Sample{
		{
			Name:        "order-by",
			Group:       GroupSorting,
			Description: "Words sorted alphabetically.",
			Run: func() (value.Value, error) {
				return collect[string](order.OrderBy(seq.FromSlice(fruits...), identity[string]), str)
			},
		},
		{
			Name:        "order-by-property",
			Group:       GroupSorting,
			Description: "Words sorted by length.",
			Run: func() (value.Value, error) {
				return collect[string](order.OrderBy(seq.FromSlice(fruits...), length), str)
			},
		},
		{
			Name:        "order-by-products",
			Group:       GroupSorting,
			Description: "Product names in alphabetical order.",
			Run: func() (value.Value, error) {
				ps, err := products()
				if err != nil {
					return nil, err
				}
				return collect(seq.Select[*fixtures.Product](order.OrderByWith(ps, productName, byProductName()), productName), str)
			},
		},
		{
			Name:        "order-by-custom-comparer",
			Group:       GroupSorting,
			Description: "Words sorted alphabetically, ignoring case.",
			Run: func() (value.Value, error) {
				return collect[string](order.OrderByWith(seq.FromSlice(mixed...), identity[string], compare.IgnoreCase()), str)
			},
		},
		{
			Name:        "order-by-culture",
			Group:       GroupSorting,
			Description: "Words sorted by English collation rules.",
			Run: func() (value.Value, error) {
				return collect[string](order.OrderByWith(seq.FromSlice(mixed...), identity[string], compare.Culture(language.English)), str)
			},
		},
		{
			Name:        "order-by-descending",
			Group:       GroupSorting,
			Description: "Doubles sorted from highest to lowest.",
			Run: func() (value.Value, error) {
				doubles := seq.FromSlice(1.7, 2.3, 1.9, 4.1, 2.9)
				return collect[float64](order.OrderByDescending(doubles, identity[float64]), func(d float64) value.Value {
					return value.Float(d)
				})
			},
		},
		{
			Name:        "order-products-descending",
			Group:       GroupSorting,
			Description: "Products by units in stock, highest first.",
			Run: func() (value.Value, error) {
				ps, err := products()
				if err != nil {
					return nil, err
				}
				sorted := order.OrderByDescending(ps, func(p *fixtures.Product) int { return p.UnitsInStock })
				return collect[*fixtures.Product](sorted, func(p *fixtures.Product) value.Value {
					return value.NewObject(
						value.F("productName", value.String(p.Name)),
						value.F("unitsInStock", value.Int(p.UnitsInStock)),
					)
				})
			},
		},
		{
			Name:        "descending-custom-comparer",
			Group:       GroupSorting,
			Description: "Words sorted in reverse alphabetical order, ignoring case.",
			Run: func() (value.Value, error) {
				return collect[string](order.OrderByDescendingWith(seq.FromSlice(mixed...), identity[string], compare.IgnoreCase()), str)
			},
		},
		{
			Name:        "then-by",
			Group:       GroupSorting,
			Description: "Digits sorted by name length, then alphabetically.",
			Run: func() (value.Value, error) {
				return collect[string](order.ThenBy(order.OrderBy(seq.FromSlice(digits...), length), identity[string]), str)
			},
		},
		{
			Name:        "then-by-custom",
			Group:       GroupSorting,
			Description: "Words sorted by length, then alphabetically ignoring case.",
			Run: func() (value.Value, error) {
				byLen := order.OrderBy(seq.FromSlice(mixed...), length)
				return collect[string](order.ThenByWith(byLen, identity[string], compare.IgnoreCase()), str)
			},
		},
		{
			Name:        "then-by-different-ordering",
			Group:       GroupSorting,
			Description: "Products by category, then by unit price from highest to lowest.",
			Run: func() (value.Value, error) {
				ps, err := products()
				if err != nil {
					return nil, err
				}
				sorted := order.ThenByDescendingWith(
					order.OrderBy(ps, productCategory),
					func(p *fixtures.Product) *apd.Decimal { return p.UnitPrice },
					byAmount,
				)
				return collect[*fixtures.Product](sorted, func(p *fixtures.Product) value.Value {
					return value.NewObject(
						value.F("category", value.String(p.Category)),
						value.F("productName", value.String(p.Name)),
						value.F("unitPrice", money(p.UnitPrice)),
					)
				})
			},
		},
		{
			Name:        "custom-then-by-descending",
			Group:       GroupSorting,
			Description: "Words sorted by length, then in reverse alphabetical order ignoring case.",
			Run: func() (value.Value, error) {
				byLen := order.OrderBy(seq.FromSlice(mixed...), length)
				return collect[string](order.ThenByDescendingWith(byLen, identity[string], compare.IgnoreCase()), str)
			},
		},
		{
			Name:        "ordering-reversal",
			Group:       GroupSorting,
			Description: "Digits whose second letter is 'i', in reverse input order.",
			Run: func() (value.Value, error) {
				secondI := seq.Where(seq.FromSlice(digits...), func(d string) bool { return d[1] == 'i' })
				return collect(order.Reverse(secondI), str)
			},
		},
	}
}
