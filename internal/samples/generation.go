package samples

import (
	"github.com/roach88/lazyq/internal/seq"
	"github.com/roach88/lazyq/internal/value"
)

func generationSamples() []Sample {
	return []Sample{
		{
			Name:        "empty-sequence",
			Group:       GroupGeneration,
			Description: "An empty sequence of integers.",
			Run: func() (value.Value, error) {
				return collect(seq.Empty[int](), integer)
			},
		},
		{
			Name:        "range-of-integers",
			Group:       GroupGeneration,
			Description: "The integers 100 to 119, each tagged odd or even.",
			Run: func() (value.Value, error) {
				r, err := seq.Range(100, 20)
				if err != nil {
					return nil, err
				}
				return collect(r, func(n int) value.Value {
					parity := "odd"
					if n%2 == 0 {
						parity = "even"
					}
					return value.NewObject(value.F("number", value.Int(n)), value.F("oddEven", value.String(parity)))
				})
			},
		},
		{
			Name:        "repeat-number",
			Group:       GroupGeneration,
			Description: "The number 7 repeated ten times.",
			Run: func() (value.Value, error) {
				r, err := seq.Repeat(7, 10)
				if err != nil {
					return nil, err
				}
				return collect(r, integer)
			},
		},
	}
}
