package catalog

import (
	"cmp"
	"slices"
)

// Sort reorders view in place by key and returns it. The sort is stable, so
// products that compare equal keep their relative order and sorting an already
// sorted view is a no-op.
func Sort(view []*Product, key SortKey) []*Product {
	slices.SortStableFunc(view, comparator(key))
	return view
}

func comparator(key SortKey) func(a, b *Product) int {
	switch ParseSortKey(string(key)) {
	case SortPriceLow:
		return func(a, b *Product) int {
			return a.Price.Cmp(b.Price)
		}
	case SortPriceHigh:
		return func(a, b *Product) int {
			return b.Price.Cmp(a.Price)
		}
	case SortNewest:
		return func(a, b *Product) int {
			return cmp.Compare(b.ID, a.ID)
		}
	default:
		return func(a, b *Product) int {
			return cmp.Compare(b.Rating.Rate, a.Rating.Rate)
		}
	}
}
