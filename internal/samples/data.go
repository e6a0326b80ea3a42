package samples

import (
	"github.com/cockroachdb/apd/v3"
	"golang.org/x/text/language"

	"github.com/roach88/lazyq/internal/compare"
	"github.com/roach88/lazyq/internal/fixtures"
	"github.com/roach88/lazyq/internal/seq"
	"github.com/roach88/lazyq/internal/value"
)

var (
	numbers = []int{5, 4, 1, 3, 9, 8, 6, 7, 2, 0}
	digits  = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}
	fruits  = []string{"cherry", "apple", "blueberry"}
	mixed   = []string{"aPPLE", "AbAcUs", "bRaNcH", "BlUeBeRrY", "ClOvEr", "cHeRry"}

	categories = []string{"Beverages", "Condiments", "Vegetables", "Dairy Products", "Seafood"}
)

// byAmount orders money amounts numerically.
var byAmount = compare.Func[*apd.Decimal](func(a, b *apd.Decimal) int { return a.Cmp(b) })

// byProductName orders product names by English collation, so accented names
// sort next to their base letters. A Collation is not safe for concurrent use,
// so each run takes its own.
func byProductName() *compare.Collation { return compare.Culture(language.English) }

func products() (seq.Sequence[*fixtures.Product], error) {
	ps, err := fixtures.Products()
	if err != nil {
		return nil, err
	}
	return seq.FromSlice(ps...), nil
}

func customers() (seq.Sequence[*fixtures.Customer], error) {
	cs, err := fixtures.Customers()
	if err != nil {
		return nil, err
	}
	return seq.FromSlice(cs...), nil
}

func orders(c *fixtures.Customer) seq.Sequence[fixtures.Order] {
	return seq.FromSlice(c.Orders...)
}

func identity[T any](v T) T { return v }

func length(s string) int { return len(s) }

func productCategory(p *fixtures.Product) string { return p.Category }

func productName(p *fixtures.Product) string { return p.Name }

// collect enumerates s and renders every element with render.
func collect[T any](s seq.Sequence[T], render func(T) value.Value) (value.Value, error) {
	arr := value.Array{}
	err := seq.ForEach(s, func(v T) bool {
		arr = append(arr, render(v))
		return true
	})
	if err != nil {
		return nil, err
	}
	return arr, nil
}

func str(s string) value.Value { return value.String(s) }

func integer(n int) value.Value { return value.Int(n) }

func money(d *apd.Decimal) value.Value { return value.Decimal{D: d} }

func productValue(p *fixtures.Product) value.Value {
	if p == nil {
		return value.Null{}
	}
	return value.NewObject(
		value.F("productId", value.Int(p.ID)),
		value.F("productName", value.String(p.Name)),
		value.F("category", value.String(p.Category)),
		value.F("unitPrice", money(p.UnitPrice)),
		value.F("unitsInStock", value.Int(p.UnitsInStock)),
	)
}

// productNames renders a group of products as the list of their names.
func productNames(ps seq.Sequence[*fixtures.Product]) (value.Array, error) {
	v, err := collect(seq.Select(ps, productName), str)
	if err != nil {
		return nil, err
	}
	return v.(value.Array), nil
}

// nonEmpty maps the zero value of a string result to Null, the way an
// absent reference prints.
func nonEmpty(s string) value.Value {
	if s == "" {
		return value.Null{}
	}
	return value.String(s)
}
