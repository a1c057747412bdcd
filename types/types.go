package types

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/shopspring/decimal"
)

// Product represents a storefront catalog entry
type Product struct {
	id            int
	name          string
	price         decimal.Decimal
	originalPrice decimal.Decimal
	hasOriginal   bool
	image         string
	images        []string
	rating        int
	reviews       int
	onSale        bool
	discount      int
	hasDiscount   bool
}

// NewProduct creates a new Product with the required fields.
// Optional fields are set with the With* methods.
func NewProduct(id int, name string, price decimal.Decimal, image string, rating, reviews int) Product {
	return Product{
		id:      id,
		name:    name,
		price:   price,
		image:   image,
		rating:  rating,
		reviews: reviews,
	}
}

// WithOriginalPrice returns a copy of p carrying a pre-discount price
func (p Product) WithOriginalPrice(price decimal.Decimal) Product {
	p.originalPrice = price
	p.hasOriginal = true
	return p
}

// WithImages returns a copy of p carrying additional image references
func (p Product) WithImages(images ...string) Product {
	p.images = append([]string(nil), images...)
	return p
}

// WithSale returns a copy of p with the on-sale flag set
func (p Product) WithSale(onSale bool) Product {
	p.onSale = onSale
	return p
}

// WithDiscount returns a copy of p carrying a discount percentage.
// The on-sale flag is not touched: the two are independent.
func (p Product) WithDiscount(percent int) Product {
	p.discount = percent
	p.hasDiscount = true
	return p
}

// Getters for Product fields
func (p Product) ID() int                { return p.id }
func (p Product) Name() string           { return p.name }
func (p Product) Price() decimal.Decimal { return p.price }
func (p Product) Image() string          { return p.image }
func (p Product) Images() []string       { return p.images }
func (p Product) Rating() int            { return p.rating }
func (p Product) Reviews() int           { return p.reviews }
func (p Product) IsOnSale() bool         { return p.onSale }

// OriginalPrice returns the pre-discount price and whether one is set
func (p Product) OriginalPrice() (decimal.Decimal, bool) {
	return p.originalPrice, p.hasOriginal
}

// Discount returns the discount percentage and whether one is set
func (p Product) Discount() (int, bool) {
	return p.discount, p.hasDiscount
}

// SaleDiscount returns the percentage to advertise in a discount badge.
// A badge is shown only for on-sale products with a non-zero discount.
func (p Product) SaleDiscount() (int, bool) {
	if !p.onSale || !p.hasDiscount || p.discount == 0 {
		return 0, false
	}
	return p.discount, true
}

// Gallery returns the primary image followed by the additional images
func (p Product) Gallery() []string {
	out := make([]string, 0, 1+len(p.images))
	out = append(out, p.image)
	for _, img := range p.images {
		if img == p.image {
			continue
		}
		out = append(out, img)
	}
	return out
}

// list.Item interface implementation
func (p Product) Title() string       { return p.name }
func (p Product) Description() string { return FormatPrice(p.price) }
func (p Product) FilterValue() string { return p.name }

// Compile-time check that Product implements list.Item
var _ list.Item = Product{}

// FormatPrice renders a price as dollars with two fixed decimals: $399.99
func FormatPrice(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// ProductSource is the core abstraction for catalog access.
// Sync methods only, no bubbletea dependency.
type ProductSource interface {
	CategoryProducts(category string) []Product
	Product(id int) (Product, error)
}
