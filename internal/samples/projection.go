package samples

import (
	"fmt"
	"time"

	"github.com/cockroachdb/apd/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/roach88/lazyq/internal/fixtures"
	"github.com/roach88/lazyq/internal/seq"
	"github.com/roach88/lazyq/internal/value"
)

// shortDate is the day-month-year layout used when listing orders.
const shortDate = "02-Jan-06"

func projectionSamples() []Sample {
	return []Sample{
		{
			Name:        "select",
			Group:       GroupProjection,
			Description: "Numbers one higher than those in an array.",
			Run: func() (value.Value, error) {
				return collect(seq.Select(seq.FromSlice(numbers...), func(n int) int { return n + 1 }), integer)
			},
		},
		{
			Name:        "select-property",
			Group:       GroupProjection,
			Description: "The names of all products.",
			Run: func() (value.Value, error) {
				ps, err := products()
				if err != nil {
					return nil, err
				}
				return collect(seq.Select(ps, productName), str)
			},
		},
		{
			Name:        "transform-with-select",
			Group:       GroupProjection,
			Description: "The text name of each number.",
			Run: func() (value.Value, error) {
				return collect(seq.Select(seq.FromSlice(numbers...), func(n int) string { return digits[n] }), str)
			},
		},
		{
			Name:        "select-by-case",
			Group:       GroupProjection,
			Description: "The upper and lower case forms of each word.",
			Run: func() (value.Value, error) {
				upper := cases.Upper(language.Und)
				lower := cases.Lower(language.Und)
				words := seq.FromSlice("aPPLE", "BlUeBeRrY", "cHeRry")
				return collect(words, func(w string) value.Value {
					return value.NewObject(
						value.F("upper", value.String(upper.String(w))),
						value.F("lower", value.String(lower.String(w))),
					)
				})
			},
		},
		{
			Name:        "select-even-odd",
			Group:       GroupProjection,
			Description: "The name of each number and whether it is even.",
			Run: func() (value.Value, error) {
				return collect(seq.FromSlice(numbers...), func(n int) value.Value {
					return value.NewObject(
						value.F("digit", value.String(digits[n])),
						value.F("even", value.Bool(n%2 == 0)),
					)
				})
			},
		},
		{
			Name:        "select-property-subset",
			Group:       GroupProjection,
			Description: "Name, category and price of every product.",
			Run: func() (value.Value, error) {
				ps, err := products()
				if err != nil {
					return nil, err
				}
				return collect(ps, func(p *fixtures.Product) value.Value {
					return value.NewObject(
						value.F("productName", value.String(p.Name)),
						value.F("category", value.String(p.Category)),
						value.F("price", money(p.UnitPrice)),
					)
				})
			},
		},
		{
			Name:        "select-with-index",
			Group:       GroupProjection,
			Description: "Whether each number equals its position in the array.",
			Run: func() (value.Value, error) {
				return collect(seq.SelectIndexed(seq.FromSlice(numbers...), func(n, i int) value.Value {
					return value.NewObject(
						value.F("number", value.Int(n)),
						value.F("inPlace", value.Bool(n == i)),
					)
				}), identity[value.Value])
			},
		},
		{
			Name:        "select-with-where",
			Group:       GroupProjection,
			Description: "The names of the numbers less than five.",
			Run: func() (value.Value, error) {
				small := seq.Where(seq.FromSlice(numbers...), func(n int) bool { return n < 5 })
				return collect(seq.Select(small, func(n int) string { return digits[n] }), str)
			},
		},
		{
			Name:        "select-from-multiple-sequences",
			Group:       GroupProjection,
			Description: "Every pair (a, b) from two arrays with a < b.",
			Run: func() (value.Value, error) {
				as := seq.FromSlice(0, 2, 4, 5, 6, 8, 9)
				bs := seq.FromSlice(1, 3, 5, 7, 8)
				pairs := seq.SelectManyResult(as,
					func(a int) seq.Sequence[int] { return seq.Where(bs, func(b int) bool { return a < b }) },
					func(a, b int) value.Value {
						return value.NewObject(value.F("a", value.Int(a)), value.F("b", value.Int(b)))
					},
				)
				return collect(pairs, identity[value.Value])
			},
		},
		{
			Name:        "select-from-child-sequence",
			Group:       GroupProjection,
			Description: "Orders with a total below 500.00.",
			Run: func() (value.Value, error) {
				limit := apd.New(500, 0)
				return customerOrders(func(o fixtures.Order) bool { return o.Total.Cmp(limit) < 0 }, orderTotal)
			},
		},
		{
			Name:        "select-many-with-where",
			Group:       GroupProjection,
			Description: "Orders placed in 1998 or later.",
			Run: func() (value.Value, error) {
				cutoff := time.Date(1998, time.January, 1, 0, 0, 0, 0, time.UTC)
				return customerOrders(
					func(o fixtures.Order) bool { return !o.Date.Before(cutoff) },
					func(c *fixtures.Customer, o fixtures.Order) value.Value {
						return value.NewObject(
							value.F("customerId", value.String(c.ID)),
							value.F("orderId", value.Int(o.ID)),
							value.F("orderDate", value.String(o.Date.Format(shortDate))),
						)
					},
				)
			},
		},
		{
			Name:        "select-many-where-assignment",
			Group:       GroupProjection,
			Description: "Orders with a total above 2000.00.",
			Run: func() (value.Value, error) {
				limit := apd.New(2000, 0)
				return customerOrders(func(o fixtures.Order) bool { return o.Total.Cmp(limit) > 0 }, orderTotal)
			},
		},
		{
			Name:        "select-multiple-where-clauses",
			Group:       GroupProjection,
			Description: "Orders since 1997 from customers in the WA region.",
			Run: func() (value.Value, error) {
				cs, err := customers()
				if err != nil {
					return nil, err
				}
				cutoff := time.Date(1997, time.January, 1, 0, 0, 0, 0, time.UTC)
				wa := seq.Where(cs, func(c *fixtures.Customer) bool { return c.Region == "WA" })
				rows := seq.SelectManyResult(wa,
					func(c *fixtures.Customer) seq.Sequence[fixtures.Order] {
						return seq.Where(orders(c), func(o fixtures.Order) bool { return !o.Date.Before(cutoff) })
					},
					func(c *fixtures.Customer, o fixtures.Order) value.Value {
						return value.NewObject(
							value.F("customerId", value.String(c.ID)),
							value.F("orderId", value.Int(o.ID)),
						)
					},
				)
				return collect(rows, identity[value.Value])
			},
		},
		{
			Name:        "indexed-select-many",
			Group:       GroupProjection,
			Description: "Every order, naming customers by their position.",
			Run: func() (value.Value, error) {
				cs, err := customers()
				if err != nil {
					return nil, err
				}
				lines := seq.SelectManyIndexed(cs, func(c *fixtures.Customer, i int) seq.Sequence[string] {
					return seq.Select(orders(c), func(o fixtures.Order) string {
						return fmt.Sprintf("Customer #%d has an order with OrderID %d", i+1, o.ID)
					})
				})
				return collect(lines, str)
			},
		},
	}
}

// customerOrders flattens the orders of every customer that satisfy keep.
func customerOrders(keep func(fixtures.Order) bool, render func(*fixtures.Customer, fixtures.Order) value.Value) (value.Value, error) {
	cs, err := customers()
	if err != nil {
		return nil, err
	}
	rows := seq.SelectManyResult(cs,
		func(c *fixtures.Customer) seq.Sequence[fixtures.Order] { return seq.Where(orders(c), keep) },
		render,
	)
	return collect(rows, identity[value.Value])
}

func orderTotal(c *fixtures.Customer, o fixtures.Order) value.Value {
	return value.NewObject(
		value.F("customerId", value.String(c.ID)),
		value.F("orderId", value.Int(o.ID)),
		value.F("total", money(o.Total)),
	)
}
