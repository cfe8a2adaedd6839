package proptest

import (
	"shelf/internal/catalog"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"
)

var (
	iterDirGen  = rapid.StringMatching(`[a-z]{8}`)
	titleGen    = rapid.StringMatching(`[A-Za-z0-9][A-Za-z0-9 '&,.-]{0,39}`)
	categoryGen = rapid.SampledFrom([]string{"men's clothing", "women's clothing", "jewelery", "electronics"})
	imageGen    = rapid.StringMatching(`https://img\.test/[a-z0-9]{1,12}\.jpg`)
)

// priceGen draws a non-negative price with at most two decimal places.
func priceGen() *rapid.Generator[decimal.Decimal] {
	return rapid.Custom(func(t *rapid.T) decimal.Decimal {
		return decimal.New(rapid.Int64Range(0, 1_000_000).Draw(t, "cents"), -2)
	})
}

// rateGen draws ratings in tenths, as the API reports them.
func rateGen() *rapid.Generator[float64] {
	return rapid.Custom(func(t *rapid.T) float64 {
		return float64(rapid.IntRange(0, 50).Draw(t, "tenths")) / 10
	})
}

func sortKeyGen() *rapid.Generator[catalog.SortKey] {
	return rapid.SampledFrom(catalog.SortKeys)
}

// rawSortGen draws selector values, including ones no key matches.
func rawSortGen() *rapid.Generator[string] {
	known := make([]string, 0, len(catalog.SortKeys))
	for _, k := range catalog.SortKeys {
		known = append(known, string(k))
	}
	return rapid.OneOf(
		rapid.SampledFrom(known),
		rapid.StringMatching(`[a-z-]{0,12}`),
	)
}

func productGen(id int, price *rapid.Generator[decimal.Decimal]) *rapid.Generator[catalog.Product] {
	return rapid.Custom(func(t *rapid.T) catalog.Product {
		p := catalog.NewProduct(id, titleGen.Draw(t, "title"), price.Draw(t, "price")).
			WithCategory(categoryGen.Draw(t, "category")).
			WithImage(imageGen.Draw(t, "image")).
			WithRating(rateGen().Draw(t, "rate"), rapid.IntRange(0, 1000).Draw(t, "count"))
		if rapid.Bool().Draw(t, "hasDescription") {
			p.Description = titleGen.Draw(t, "description")
		}
		return p
	})
}

// productsGen draws a catalog with unique ids. Prices, ratings and titles
// may repeat, so sorts see ties.
func productsGen(minCount, maxCount int) *rapid.Generator[[]catalog.Product] {
	return rapid.Custom(func(t *rapid.T) []catalog.Product {
		ids := rapid.SliceOfNDistinct(rapid.IntRange(1, 10_000), minCount, maxCount, rapid.ID[int]).Draw(t, "ids")
		items := make([]catalog.Product, 0, len(ids))
		for _, id := range ids {
			items = append(items, productGen(id, priceGen()).Draw(t, "product"))
		}
		return items
	})
}

// tieFreeProductsGen draws a catalog in which no two products share a price.
func tieFreeProductsGen(minCount, maxCount int) *rapid.Generator[[]catalog.Product] {
	return rapid.Custom(func(t *rapid.T) []catalog.Product {
		ids := rapid.SliceOfNDistinct(rapid.IntRange(1, 10_000), minCount, maxCount, rapid.ID[int]).Draw(t, "ids")
		cents := rapid.SliceOfNDistinct(rapid.Int64Range(0, 1_000_000), len(ids), len(ids), rapid.ID[int64]).Draw(t, "cents")
		items := make([]catalog.Product, 0, len(ids))
		for i, id := range ids {
			items = append(items, productGen(id, rapid.Just(decimal.New(cents[i], -2))).Draw(t, "product"))
		}
		return items
	})
}

func malformedYAMLGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just("}}}}"),
		rapid.Just("- - - -"),
		rapid.Just(":::"),
		rapid.Just("[\n["),
		rapid.Just("key: [unclosed"),
		rapid.Just("- item\n  bad indent"),
		rapid.Just("\t\ttabs: everywhere"),
		rapid.Just("version: \"unmatched quote"),
		rapid.Just("products:\n  - id: one\n    price: 1"),
		rapid.Just("- id: 1\n  price: [1, 2]"),
		rapid.Just("- id: 1\n  rating: five"),
		rapid.StringMatching(`[^a-zA-Z0-9\s]{10,50}`),
		rapid.Custom(func(t *rapid.T) string {
			size := rapid.IntRange(10, 100).Draw(t, "size")
			bytes := make([]byte, size)
			for i := range bytes {
				bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
			}
			return string(bytes)
		}),
	)
}
