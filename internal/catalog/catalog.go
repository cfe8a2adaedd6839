package catalog

type SortKey string

const (
	SortPriceLow    SortKey = "price-low"
	SortPriceHigh   SortKey = "price-high"
	SortNewest      SortKey = "newest"
	SortRecommended SortKey = "recommended"
)

// DefaultSortKey is applied when no key or an unrecognized key is given.
const DefaultSortKey = SortRecommended

// SortKeys lists the keys in the order the sort selector offers them.
var SortKeys = []SortKey{SortRecommended, SortPriceLow, SortPriceHigh, SortNewest}

func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortPriceLow, SortPriceHigh, SortNewest, SortRecommended:
		return k
	default:
		return DefaultSortKey
	}
}

func (k SortKey) Label() string {
	switch k {
	case SortPriceLow:
		return "Price: Low to High"
	case SortPriceHigh:
		return "Price: High to Low"
	case SortNewest:
		return "Newest"
	default:
		return "Recommended"
	}
}
