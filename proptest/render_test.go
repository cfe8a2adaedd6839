package proptest

import (
	"math"
	"shelf/internal/render"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"pgregory.net/rapid"
)

func TestProperty_Stars_AlwaysFive(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rate := rapid.Float64().Draw(rt, "rate")

		stars := render.Stars(rate)

		if n := utf8.RuneCountInString(stars); n != 5 {
			rt.Fatalf("[%s] violated: Stars(%v) has %d glyphs", InvStarsFive, rate, n)
		}
	})
}

func TestProperty_Stars_FloorFilled(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rate := rapid.Float64Range(0, 5).Draw(rt, "rate")

		stars := render.Stars(rate)

		filled := int(math.Floor(rate))
		want := strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
		if stars != want {
			rt.Fatalf("Stars(%v) = %q, want %q", rate, stars, want)
		}
	})
}

func TestProperty_HTML_OneCardPerProduct(t *testing.T) {
	html := render.NewHTML()
	rapid.Check(t, func(rt *rapid.T) {
		items := productsGen(typicalMinProducts, typicalMaxProducts).Draw(rt, "items")
		view := pointers(items)

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html.Render(view)))
		if err != nil {
			rt.Fatalf("failed to parse markup: %v", err)
		}

		cards := doc.Find(".product-card")
		if cards.Length() != len(view) {
			rt.Fatalf("rendered %d cards for %d products", cards.Length(), len(view))
		}
		cards.Each(func(i int, card *goquery.Selection) {
			if got := card.Find(".product-title").Text(); got != view[i].Title {
				rt.Fatalf("card %d title = %q, want %q", i, got, view[i].Title)
			}
			if got := card.Find(".product-price").Text(); got != "$"+view[i].Price.String() {
				rt.Fatalf("card %d price = %q, want $%s", i, got, view[i].Price)
			}
			if got := card.Find(".stars").Text(); got != render.Stars(view[i].Rating.Rate) {
				rt.Fatalf("card %d stars = %q", i, got)
			}
		})
	})
}

func TestProperty_Terminal_PlaceholderForEmptyView(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		width := rapid.IntRange(10, 200).Draw(rt, "width")
		term := render.NewTerminal(&strings.Builder{}, width)

		if got := term.Render(nil); got != "No products found.\n" {
			rt.Fatalf("empty view rendered %q", got)
		}
	})
}
