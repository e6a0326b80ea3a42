package samples

import (
	"strings"

	"github.com/roach88/lazyq/internal/fixtures"
	"github.com/roach88/lazyq/internal/seq"
	"github.com/roach88/lazyq/internal/value"
)

func contains(sub string) func(string) bool {
	return func(s string) bool { return strings.Contains(s, sub) }
}

func elementSamples() []Sample {
	return []Sample{
		{
			Name:        "first-element",
			Group:       GroupElement,
			Description: "The product at position 10.",
			Run: func() (value.Value, error) {
				ps, err := products()
				if err != nil {
					return nil, err
				}
				p, err := seq.ElementAt(ps, 10)
				if err != nil {
					return nil, err
				}
				return productValue(p), nil
			},
		},
		{
			Name:        "first-matching-element",
			Group:       GroupElement,
			Description: "The first digit name starting with 'o'.",
			Run: func() (value.Value, error) {
				d, err := seq.First(seq.FromSlice(digits...), func(s string) bool { return strings.HasPrefix(s, "o") })
				if err != nil {
					return nil, err
				}
				return value.String(d), nil
			},
		},
		{
			Name:        "maybe-first-element",
			Group:       GroupElement,
			Description: "The first element of an empty array, or its default.",
			Run: func() (value.Value, error) {
				n, err := seq.FirstOrDefault(seq.Empty[int]())
				if err != nil {
					return nil, err
				}
				return value.Int(n), nil
			},
		},
		{
			Name:        "maybe-first-matching-element",
			Group:       GroupElement,
			Description: "The product with ID 789, which does not exist.",
			Run: func() (value.Value, error) {
				ps, err := products()
				if err != nil {
					return nil, err
				}
				p, err := seq.FirstOrDefault(ps, func(p *fixtures.Product) bool { return p.ID == 789 })
				if err != nil {
					return nil, err
				}
				return productValue(p), nil
			},
		},
		{
			Name:        "element-at-position",
			Group:       GroupElement,
			Description: "The second number greater than 5.",
			Run: func() (value.Value, error) {
				big := seq.Where(seq.FromSlice(numbers...), func(n int) bool { return n > 5 })
				n, err := seq.FirstOrDefault(seq.Skip(big, 1))
				if err != nil {
					return nil, err
				}
				return value.Int(n), nil
			},
		},
		{
			Name:        "element-at-out-of-range",
			Group:       GroupElement,
			Description: "The number at position 10 of a ten-element array (fails).",
			Run: func() (value.Value, error) {
				n, err := seq.ElementAt(seq.FromSlice(numbers...), 10)
				if err != nil {
					return nil, err
				}
				return value.Int(n), nil
			},
		},
		{
			Name:        "maybe-element-at",
			Group:       GroupElement,
			Description: "The number at position 10 of a ten-element array, or its default.",
			Run: func() (value.Value, error) {
				n, err := seq.ElementAtOrDefault(seq.FromSlice(numbers...), 10)
				if err != nil {
					return nil, err
				}
				return value.Int(n), nil
			},
		},
		{
			Name:        "last-matching-element",
			Group:       GroupElement,
			Description: "The last digit name containing 'o'.",
			Run: func() (value.Value, error) {
				d, err := seq.Last(seq.FromSlice(digits...), contains("o"))
				if err != nil {
					return nil, err
				}
				return value.String(d), nil
			},
		},
		{
			Name:        "maybe-last-element",
			Group:       GroupElement,
			Description: "The last element of an empty array, or its default.",
			Run: func() (value.Value, error) {
				n, err := seq.LastOrDefault(seq.Empty[int]())
				if err != nil {
					return nil, err
				}
				return value.Int(n), nil
			},
		},
		{
			Name:        "single-more-than-one-matching-element",
			Group:       GroupElement,
			Description: "The only digit name containing 'o' (fails: there are several).",
			Run: func() (value.Value, error) {
				d, err := seq.Single(seq.FromSlice(digits...), contains("o"))
				if err != nil {
					return nil, err
				}
				return value.String(d), nil
			},
		},
		{
			Name:        "single-no-matching-element",
			Group:       GroupElement,
			Description: "The only digit name containing 'q' (fails: there is none).",
			Run: func() (value.Value, error) {
				d, err := seq.Single(seq.FromSlice(digits...), contains("q"))
				if err != nil {
					return nil, err
				}
				return value.String(d), nil
			},
		},
		{
			Name:        "maybe-single-matching-element",
			Group:       GroupElement,
			Description: "The only digit name containing 'q', or null when there is none.",
			Run: func() (value.Value, error) {
				d, err := seq.SingleOrDefault(seq.FromSlice(digits...), contains("q"))
				if err != nil {
					return nil, err
				}
				return nonEmpty(d), nil
			},
		},
	}
}
