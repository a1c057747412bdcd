package catalog

import (
	"errors"
	"fmt"

	"github.com/qyinm/shoptui/types"
	"github.com/shopspring/decimal"
)

// Asset paths of the product images
const (
	Headphones = "assets/headphones.jpg"
	Smartphone = "assets/smartphone.jpg"
	Watch      = "assets/watch.jpg"
	Laptop     = "assets/laptop.jpg"
	Keyboard   = "assets/keyboard.jpg"
	Camera     = "assets/camera.jpg"
)

// ErrProductNotFound is returned when an id is absent from the catalog
var ErrProductNotFound = errors.New("product not found")

// Catalog implements types.ProductSource over a fixed, in-memory product list.
type Catalog struct {
	products []types.Product
}

// Compile-time interface check
var _ types.ProductSource = (*Catalog)(nil)

// New creates a Catalog seeded with the storefront's six products.
func New() *Catalog {
	return &Catalog{products: seed()}
}

// CategoryProducts returns the product list shown for a category page.
// Every category shows the same fixed set; the category is display text only.
func (c *Catalog) CategoryProducts(_ string) []types.Product {
	out := make([]types.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Product looks up a product by id.
func (c *Catalog) Product(id int) (types.Product, error) {
	for _, p := range c.products {
		if p.ID() == id {
			return p, nil
		}
	}
	return types.Product{}, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
}

func seed() []types.Product {
	return []types.Product{
		types.NewProduct(1, "Premium Wireless Headphones", price("199.99"), Headphones, 5, 127).
			WithOriginalPrice(price("249.99")).
			WithImages(Headphones, Smartphone, Watch, Laptop).
			WithSale(true).
			WithDiscount(20),
		types.NewProduct(2, "Latest Smartphone Pro Max", price("999.99"), Smartphone, 4, 89).
			WithImages(Smartphone, Headphones, Camera),
		types.NewProduct(3, "Luxury Smart Watch", price("399.99"), Watch, 4, 203).
			WithOriginalPrice(price("499.99")).
			WithImages(Watch, Smartphone, Headphones, Laptop, Camera).
			WithSale(true).
			WithDiscount(25),
		types.NewProduct(4, "Ultra-thin Laptop", price("1299.99"), Laptop, 5, 156).
			WithImages(Laptop, Keyboard, Smartphone),
		types.NewProduct(5, "Mechanical Gaming Keyboard", price("149.99"), Keyboard, 4, 78).
			WithOriginalPrice(price("199.99")).
			WithImages(Keyboard, Laptop, Headphones).
			WithSale(true).
			WithDiscount(25),
		types.NewProduct(6, "Professional DSLR Camera", price("899.99"), Camera, 5, 234).
			WithImages(Camera, Laptop, Smartphone, Watch),
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
