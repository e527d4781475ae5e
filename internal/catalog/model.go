package catalog

import "github.com/shopspring/decimal"

type Category struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	ImageURL    string
	Icon        string
}

// Variant is an optional add-on with a flat surcharge, independent of the
// printed area and quantity.
type Variant struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Surcharge decimal.Decimal `json:"price"`
}

// Product is the immutable reference an order draft is built against.
// UnitPrice is per square meter.
type Product struct {
	ID             int64
	Name           string
	Slug           string
	UnitPrice      decimal.Decimal
	Stock          int
	ImageURL       string
	Description    string
	Active         bool
	Category       *Category
	Variants       []Variant
	Specifications map[string]any
}
