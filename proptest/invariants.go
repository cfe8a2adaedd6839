package proptest

import (
	"shelf/internal/catalog"

	"pgregory.net/rapid"
)

const (
	InvViewIsPermutation  = "view-permutation"
	InvViewSharesEntries  = "view-shares-entries"
	InvCountMatchesView   = "count-matches-view"
	InvAllKeepsLoadOrder  = "all-keeps-load-order"
	InvSortIdempotent     = "sort-idempotent"
	InvPriceOrderReversed = "price-order-reversed"
	InvStarsFive          = "stars-five"
	InvLabelStable        = "label-stable"
	InvPanelDismiss       = "panel-dismiss"
)

// verifyStoreInvariants checks that the view is a permutation of all made
// of the very same pointers, and that all still has load order.
func verifyStoreInvariants(t *rapid.T, store *catalog.Store, loaded []catalog.Product) {
	all := store.All()
	view := store.CurrentView()

	if store.Count() != len(view) {
		t.Fatalf("[%s] violated: Count()=%d but len(CurrentView())=%d", InvCountMatchesView, store.Count(), len(view))
	}

	if len(all) != len(loaded) {
		t.Fatalf("[%s] violated: len(All())=%d, loaded %d", InvAllKeepsLoadOrder, len(all), len(loaded))
	}
	for i, p := range all {
		if p.ID != loaded[i].ID {
			t.Fatalf("[%s] violated: All()[%d] has id %d, want %d", InvAllKeepsLoadOrder, i, p.ID, loaded[i].ID)
		}
	}

	seen := make(map[*catalog.Product]int, len(all))
	for _, p := range all {
		seen[p]++
	}
	for _, p := range view {
		if seen[p] == 0 {
			t.Fatalf("[%s] violated: view entry %d is not an entry of all", InvViewSharesEntries, p.ID)
		}
		seen[p]--
	}
	for p, n := range seen {
		if n != 0 {
			t.Fatalf("[%s] violated: product %d appears %d more times in all than in view", InvViewIsPermutation, p.ID, n)
		}
	}
}
