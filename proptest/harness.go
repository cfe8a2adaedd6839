package proptest

import (
	"os"
	"path/filepath"
	"shelf/internal/catalog"
	"testing"

	"pgregory.net/rapid"
)

const (
	minProducts        = 0
	maxProducts        = 30
	typicalMinProducts = 1
	typicalMaxProducts = 12
	maxSortSequence    = 8
)

type Harness struct {
	T   *rapid.T
	Dir string
}

func (h *Harness) GenProducts(minCount, maxCount int) []catalog.Product {
	return productsGen(minCount, maxCount).Draw(h.T, "products")
}

type StoreHarness struct {
	Harness
	Store *catalog.Store
	Items []catalog.Product
}

// SortRandomly applies a short random sequence of sort keys to the store.
func (h *StoreHarness) SortRandomly() []catalog.SortKey {
	keys := rapid.SliceOfN(sortKeyGen(), 0, maxSortSequence).Draw(h.T, "keys")
	for _, k := range keys {
		h.Store.Sort(k)
	}
	return keys
}

func RunWithStore(t *testing.T, fn func(h *StoreHarness)) {
	rapid.Check(t, func(rt *rapid.T) {
		items := productsGen(minProducts, maxProducts).Draw(rt, "items")
		store := catalog.NewStore()
		store.Load(items)

		fn(&StoreHarness{
			Harness: Harness{T: rt},
			Store:   store,
			Items:   items,
		})
	})
}

// RunWithDir gives every iteration its own scratch directory.
func RunWithDir(t *testing.T, fn func(h *Harness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		if err := os.MkdirAll(iterDir, 0o755); err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}

		fn(&Harness{T: rt, Dir: iterDir})
	})
}

func pointers(items []catalog.Product) []*catalog.Product {
	out := make([]*catalog.Product, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}
