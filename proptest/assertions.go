package proptest

import (
	"shelf/internal/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"pgregory.net/rapid"
)

var productCmpOpts = cmp.Options{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmpopts.EquateEmpty(),
}

func assertProductsEqual(t *rapid.T, expected, actual []catalog.Product) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, productCmpOpts...); diff != "" {
		t.Fatalf("products mismatch (-want +got):\n%s", diff)
	}
}

func assertSamePointers(t *rapid.T, expected, actual []*catalog.Product) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("length mismatch: expected %d, got %d", len(expected), len(actual))
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Fatalf("order differs at %d: expected id %d, got id %d", i, expected[i].ID, actual[i].ID)
		}
	}
}

func assertPermutation(t *rapid.T, before, after []*catalog.Product) {
	t.Helper()
	if len(before) != len(after) {
		t.Fatalf("length changed: %d -> %d", len(before), len(after))
	}
	counts := make(map[*catalog.Product]int, len(before))
	for _, p := range before {
		counts[p]++
	}
	for _, p := range after {
		counts[p]--
	}
	for p, n := range counts {
		if n != 0 {
			t.Fatalf("product %d count changed by %d", p.ID, -n)
		}
	}
}

func assertSortedBy(t *rapid.T, view []*catalog.Product, key catalog.SortKey) {
	t.Helper()
	for i := 0; i < len(view)-1; i++ {
		a, b := view[i], view[i+1]
		var inOrder bool
		switch catalog.ParseSortKey(string(key)) {
		case catalog.SortPriceLow:
			inOrder = a.Price.LessThanOrEqual(b.Price)
		case catalog.SortPriceHigh:
			inOrder = a.Price.GreaterThanOrEqual(b.Price)
		case catalog.SortNewest:
			inOrder = a.ID >= b.ID
		default:
			inOrder = a.Rating.Rate >= b.Rating.Rate
		}
		if !inOrder {
			t.Fatalf("%s order violated at positions %d, %d (ids %d, %d)", key, i, i+1, a.ID, b.ID)
		}
	}
}

func reversed(view []*catalog.Product) []*catalog.Product {
	out := make([]*catalog.Product, len(view))
	for i, p := range view {
		out[len(view)-1-i] = p
	}
	return out
}
