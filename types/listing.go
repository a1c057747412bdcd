package types

// ViewMode represents the product collection layout
type ViewMode int

const (
	GridView ViewMode = iota
	ListView
)

// String returns the string representation of the view mode
func (v ViewMode) String() string {
	switch v {
	case GridView:
		return "grid"
	case ListView:
		return "list"
	default:
		return "unknown"
	}
}

// Toggle returns the other view mode
func (v ViewMode) Toggle() ViewMode {
	if v == GridView {
		return ListView
	}
	return GridView
}

// Price slider bounds
const (
	PriceMin  = 0
	PriceMax  = 2000
	PriceStep = 50
)

// PriceRange is the lower/upper bound pair of the price slider
type PriceRange struct {
	lower int
	upper int
}

// DefaultPriceRange spans the whole slider
func DefaultPriceRange() PriceRange {
	return PriceRange{lower: PriceMin, upper: PriceMax}
}

// NewPriceRange builds a range from raw slider values. Values are taken as-is.
func NewPriceRange(lower, upper int) PriceRange {
	return PriceRange{lower: lower, upper: upper}
}

func (r PriceRange) Lower() int { return r.lower }
func (r PriceRange) Upper() int { return r.upper }

// MoveLower shifts the lower thumb by delta, staying within [PriceMin, upper]
func (r PriceRange) MoveLower(delta int) PriceRange {
	r.lower = clamp(r.lower+delta, PriceMin, r.upper)
	return r
}

// MoveUpper shifts the upper thumb by delta, staying within [lower, PriceMax]
func (r PriceRange) MoveUpper(delta int) PriceRange {
	r.upper = clamp(r.upper+delta, r.lower, PriceMax)
	return r
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SortOption is an entry of the sort selector
type SortOption int

const (
	SortFeatured SortOption = iota
	SortPriceLow
	SortPriceHigh
	SortNewest
	SortRating
)

// SortOptions lists the selector entries in display order
var SortOptions = []SortOption{SortFeatured, SortPriceLow, SortPriceHigh, SortNewest, SortRating}

// Value returns the option key
func (s SortOption) Value() string {
	switch s {
	case SortFeatured:
		return "featured"
	case SortPriceLow:
		return "price-low"
	case SortPriceHigh:
		return "price-high"
	case SortNewest:
		return "newest"
	case SortRating:
		return "rating"
	default:
		return "unknown"
	}
}

// Label returns the text shown in the selector
func (s SortOption) Label() string {
	switch s {
	case SortFeatured:
		return "Featured"
	case SortPriceLow:
		return "Price: Low to High"
	case SortPriceHigh:
		return "Price: High to Low"
	case SortNewest:
		return "Newest"
	case SortRating:
		return "Highest Rated"
	default:
		return "Sort by"
	}
}

// Next returns the following option, wrapping around
func (s SortOption) Next() SortOption {
	return SortOptions[(int(s)+1)%len(SortOptions)]
}

// Static sidebar filter options
var (
	CategoryFilters = []string{"Electronics", "Gaming", "Photography", "Audio", "Computers"}
	BrandFilters    = []string{"Apple", "Samsung", "Sony", "Canon", "Logitech"}
)
