package render_test

import (
	"bytes"
	"shelf/internal/catalog"
	"shelf/internal/render"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/x/exp/golden"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backpack() *catalog.Product {
	p := catalog.NewProduct(1, "Men's Backpack", decimal.RequireFromString("109.95")).
		WithCategory("men's clothing").
		WithImage("https://img.test/1.jpg").
		WithRating(3.9, 120)
	return &p
}

func bracelet() *catalog.Product {
	p := catalog.NewProduct(3, "Bracelet", decimal.RequireFromString("7.95")).
		WithCategory("jewelery").
		WithImage("https://img.test/3.jpg").
		WithRating(3, 400)
	return &p
}

func parse(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func TestHTML_Placeholders(t *testing.T) {
	h := render.NewHTML()

	assert.Equal(t, `<div class="loading">No products found.</div>`, h.Render(nil))
	assert.Equal(t, `<div class="loading">No products found.</div>`, h.Render([]*catalog.Product{}))
	assert.Equal(t, `<div class="loading">Loading products...</div>`, h.Loading())
	assert.Equal(t, `<div class="loading">Error loading products. Please try again later.</div>`, h.Error())
}

func TestHTML_Render(t *testing.T) {
	t.Run("single card", func(t *testing.T) {
		out := render.NewHTML().Render([]*catalog.Product{backpack()})

		golden.RequireEqual(t, []byte(out))
	})

	t.Run("cards follow view order", func(t *testing.T) {
		out := render.NewHTML().Render([]*catalog.Product{bracelet(), backpack()})

		doc := parse(t, out)
		cards := doc.Find(".product-card")
		require.Equal(t, 2, cards.Length())
		assert.Equal(t, "Bracelet", cards.Eq(0).Find(".product-title").Text())
		assert.Equal(t, "Men's Backpack", cards.Eq(1).Find(".product-title").Text())
		assert.Equal(t, "$7.95", cards.Eq(0).Find(".product-price").Text())
		assert.Equal(t, "(400)", cards.Eq(0).Find(".product-rating span").Last().Text())
	})

	t.Run("image carries title as alt", func(t *testing.T) {
		doc := parse(t, render.NewHTML().Render([]*catalog.Product{backpack()}))

		img := doc.Find("img.product-image")
		src, _ := img.Attr("src")
		alt, _ := img.Attr("alt")
		assert.Equal(t, "https://img.test/1.jpg", src)
		assert.Equal(t, "Men's Backpack", alt)
	})

	t.Run("category uses full case mapping", func(t *testing.T) {
		p := catalog.NewProduct(9, "Mug", decimal.NewFromInt(5)).WithCategory("straße")

		doc := parse(t, render.NewHTML().Render([]*catalog.Product{&p}))

		assert.Equal(t, "STRASSE", doc.Find(".product-category").Text())
	})

	t.Run("markup in remote text is dropped", func(t *testing.T) {
		p := catalog.NewProduct(9, `<script>alert(1)</script>Tom & <b>Jerry</b>`, decimal.NewFromInt(5)).
			WithCategory(`<img src=x onerror=alert(1)>toys`)

		out := render.NewHTML().Render([]*catalog.Product{&p})

		assert.NotContains(t, out, "<script")
		assert.NotContains(t, out, "onerror")
		doc := parse(t, out)
		assert.Equal(t, "Tom & Jerry", doc.Find(".product-title").Text())
		assert.Equal(t, "TOYS", doc.Find(".product-category").Text())
	})

	t.Run("unsafe image url is neutralized", func(t *testing.T) {
		p := catalog.NewProduct(9, "Mug", decimal.NewFromInt(5)).WithImage("javascript:alert(1)")

		out := render.NewHTML().Render([]*catalog.Product{&p})

		assert.NotContains(t, out, "javascript:")
	})

	t.Run("currency symbol is configurable", func(t *testing.T) {
		doc := parse(t, render.NewHTML(render.WithCurrency("€")).Render([]*catalog.Product{bracelet()}))

		assert.Equal(t, "€7.95", doc.Find(".product-price").Text())
	})

	t.Run("price keeps its literal value", func(t *testing.T) {
		p := catalog.NewProduct(2, "T-Shirt", decimal.RequireFromString("22.3"))

		doc := parse(t, render.NewHTML().Render([]*catalog.Product{&p}))

		assert.Equal(t, "$22.3", doc.Find(".product-price").Text())
	})

	t.Run("stars for rate 3.7", func(t *testing.T) {
		p := catalog.NewProduct(2, "T-Shirt", decimal.NewFromInt(1)).WithRating(3.7, 10)

		doc := parse(t, render.NewHTML().Render([]*catalog.Product{&p}))

		assert.Equal(t, "★★★☆☆", doc.Find(".stars").Text())
	})
}

func TestHTML_Page(t *testing.T) {
	h := render.NewHTML()
	page := render.Page{
		Title:       "Shop",
		ItemCount:   "2 ITEMS",
		Content:     h.Render([]*catalog.Product{bracelet(), backpack()}),
		PanelOpen:   true,
		Sort:        catalog.SortPriceLow,
		Interactive: true,
	}

	var buf bytes.Buffer
	require.NoError(t, h.Page(&buf, page))
	doc := parse(t, buf.String())

	assert.Equal(t, "Shop", doc.Find("title").Text())
	assert.Equal(t, "2 ITEMS", doc.Find("#itemCount").Text())
	assert.Equal(t, 2, doc.Find("#productsGrid .product-card").Length())
	assert.True(t, doc.Find("#sidebar").HasClass("active"))
	assert.Equal(t, 1, doc.Find("#filterToggle").Length())

	options := doc.Find("#sortSelect option")
	require.Equal(t, len(catalog.SortKeys), options.Length())
	selected := doc.Find("#sortSelect option[selected]")
	require.Equal(t, 1, selected.Length())
	assert.Equal(t, "price-low", selected.AttrOr("value", ""))
	assert.Equal(t, "Price: Low to High", selected.Text())

	assert.Equal(t, "/products", doc.Find("#sortSelect").AttrOr("hx-get", ""))
	assert.Equal(t, "#productsGrid", doc.Find("#sortSelect").AttrOr("hx-target", ""))
	assert.Equal(t, "innerHTML", doc.Find("#sortSelect").AttrOr("hx-swap", ""))
	assert.Equal(t, "*", doc.Find("body").AttrOr("hx-disinherit", ""))
	assert.Equal(t, "/panel/toggle", doc.Find("#filterToggle").AttrOr("hx-post", ""))
	assert.Equal(t, "/panel/dismiss", doc.Find("body").AttrOr("hx-post", ""))
}

func TestHTML_Page_Static(t *testing.T) {
	h := render.NewHTML()

	var buf bytes.Buffer
	require.NoError(t, h.Page(&buf, render.Page{Title: "Shop", Content: h.Loading()}))
	doc := parse(t, buf.String())

	assert.Equal(t, "Loading products...", doc.Find("#productsGrid .loading").Text())
	assert.False(t, doc.Find("#sidebar").HasClass("active"))
	assert.NotContains(t, buf.String(), "hx-")
	assert.NotContains(t, buf.String(), "htmx")
	assert.Equal(t, "recommended", doc.Find("#sortSelect option[selected]").AttrOr("value", ""))
}

func TestHTML_Sidebar(t *testing.T) {
	h := render.NewHTML()

	open := parse(t, h.Sidebar(true)).Find("#sidebar")
	closed := parse(t, h.Sidebar(false)).Find("#sidebar")

	assert.True(t, open.HasClass("active"))
	assert.True(t, open.HasClass("sidebar"))
	assert.False(t, closed.HasClass("active"))
}
