package types

// Selection is an optional Product. The zero value holds no product.
type Selection struct {
	product Product
	ok      bool
}

// NoSelection returns an empty Selection
func NoSelection() Selection { return Selection{} }

// Selected returns a Selection holding p
func Selected(p Product) Selection {
	return Selection{product: p, ok: true}
}

// Product returns the selected product and whether one is held
func (s Selection) Product() (Product, bool) {
	return s.product, s.ok
}

// IsEmpty reports whether no product is selected
func (s Selection) IsEmpty() bool { return !s.ok }
