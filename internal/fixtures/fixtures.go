// Package fixtures provides the Northwind sample data queried by the
// samples: products, customers and their orders.
//
// The data lives in northwind.cue next to its schema. It is compiled and
// validated once, on first use; money is decoded into exact decimals.
package fixtures

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/cockroachdb/apd/v3"
)

//go:embed northwind.cue
var northwind []byte

// DateLayout is the layout of order dates in the fixture source.
const DateLayout = "2006-01-02"

// Product is a catalogue entry.
type Product struct {
	ID           int
	Name         string
	Category     string
	UnitPrice    *apd.Decimal
	UnitsInStock int
}

// Order is one customer order.
type Order struct {
	ID    int
	Date  time.Time
	Total *apd.Decimal
}

// Customer is a customer with its orders in placement order.
type Customer struct {
	ID          string
	CompanyName string
	Address     string
	City        string
	Region      string
	PostalCode  string
	Country     string
	Phone       string
	Orders      []Order
}

// Catalog is a loaded fixture set.
type Catalog struct {
	Products  []*Product
	Customers []*Customer
}

type rawProduct struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	UnitPrice    string `json:"unitPrice"`
	UnitsInStock int    `json:"unitsInStock"`
}

type rawOrder struct {
	ID    int    `json:"id"`
	Date  string `json:"date"`
	Total string `json:"total"`
}

type rawCustomer struct {
	ID          string     `json:"id"`
	CompanyName string     `json:"companyName"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	Region      string     `json:"region"`
	PostalCode  string     `json:"postalCode"`
	Country     string     `json:"country"`
	Phone       string     `json:"phone"`
	Orders      []rawOrder `json:"orders"`
}

var (
	loadOnce sync.Once
	loaded   *Catalog
	loadErr  error
)

func defaultCatalog() (*Catalog, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Load(northwind, "northwind.cue")
	})
	return loaded, loadErr
}

// Products returns the product list in catalogue order. The slice is fresh
// on every call; the products it points to are shared and must not be
// modified.
func Products() ([]*Product, error) {
	c, err := defaultCatalog()
	if err != nil {
		return nil, err
	}
	return slices.Clone(c.Products), nil
}

// Customers returns the customer list in catalogue order. The slice is
// fresh on every call; the customers it points to are shared.
func Customers() ([]*Customer, error) {
	c, err := defaultCatalog()
	if err != nil {
		return nil, err
	}
	return slices.Clone(c.Customers), nil
}

// Load compiles src as CUE, validates it against the schema it declares,
// and decodes its products and customers.
func Load(src []byte, filename string) (*Catalog, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, fromCUE(ErrCodeCompile, err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fromCUE(ErrCodeValidate, err)
	}

	var products []rawProduct
	if err := decodePath(v, "products", &products); err != nil {
		return nil, err
	}
	var customers []rawCustomer
	if err := decodePath(v, "customers", &customers); err != nil {
		return nil, err
	}

	cat := &Catalog{
		Products:  make([]*Product, 0, len(products)),
		Customers: make([]*Customer, 0, len(customers)),
	}
	for _, rp := range products {
		p, err := rp.convert()
		if err != nil {
			return nil, err
		}
		cat.Products = append(cat.Products, p)
	}
	for _, rc := range customers {
		c, err := rc.convert()
		if err != nil {
			return nil, err
		}
		cat.Customers = append(cat.Customers, c)
	}
	return cat, nil
}

func decodePath(v cue.Value, path string, dst any) error {
	field := v.LookupPath(cue.ParsePath(path))
	if !field.Exists() {
		return &LoadError{Code: ErrCodeDecode, Message: fmt.Sprintf("%s is required", path), Pos: v.Pos()}
	}
	if err := field.Decode(dst); err != nil {
		return fromCUE(ErrCodeDecode, err)
	}
	return nil
}

func (rp rawProduct) convert() (*Product, error) {
	price, err := parseMoney(rp.UnitPrice)
	if err != nil {
		return nil, fmt.Errorf("product %d: %w", rp.ID, err)
	}
	return &Product{
		ID:           rp.ID,
		Name:         rp.Name,
		Category:     rp.Category,
		UnitPrice:    price,
		UnitsInStock: rp.UnitsInStock,
	}, nil
}

func (rc rawCustomer) convert() (*Customer, error) {
	c := &Customer{
		ID:          rc.ID,
		CompanyName: rc.CompanyName,
		Address:     rc.Address,
		City:        rc.City,
		Region:      rc.Region,
		PostalCode:  rc.PostalCode,
		Country:     rc.Country,
		Phone:       rc.Phone,
		Orders:      make([]Order, 0, len(rc.Orders)),
	}
	for _, ro := range rc.Orders {
		date, err := time.Parse(DateLayout, ro.Date)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeValue, Message: fmt.Sprintf("customer %s order %d: date %q: %v", rc.ID, ro.ID, ro.Date, err)}
		}
		total, err := parseMoney(ro.Total)
		if err != nil {
			return nil, fmt.Errorf("customer %s order %d: %w", rc.ID, ro.ID, err)
		}
		c.Orders = append(c.Orders, Order{ID: ro.ID, Date: date, Total: total})
	}
	return c, nil
}

func parseMoney(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeValue, Message: fmt.Sprintf("amount %q: %v", s, err)}
	}
	return d, nil
}
