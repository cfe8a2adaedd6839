package render

import (
	"html"
	"math"
	"shelf/internal/catalog"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	filledStar = "★"
	emptyStar  = "☆"
	maxStars   = 5
)

// Stars draws floor(rate) filled glyphs followed by empty ones, five in total.
// Rates outside [0,5] are clamped and NaN draws no filled glyphs.
func Stars(rate float64) string {
	filled := 0
	if !math.IsNaN(rate) {
		filled = int(math.Floor(math.Max(0, math.Min(rate, maxStars))))
	}
	return strings.Repeat(filledStar, filled) + strings.Repeat(emptyStar, maxStars-filled)
}

var textPolicy = bluemonday.StrictPolicy()

// plainText drops any markup from remote text and leaves escaping to the
// output surface.
func plainText(s string) string {
	return html.UnescapeString(textPolicy.Sanitize(s))
}

type card struct {
	Image    string
	Title    string
	Category string
	Price    string
	Stars    string
	Count    int
}

func newCard(p *catalog.Product, currency string) card {
	return card{
		Image:    p.Image,
		Title:    plainText(p.Title),
		Category: cases.Upper(language.Und).String(plainText(p.Category)),
		Price:    currency + p.Price.String(),
		Stars:    Stars(p.Rating.Rate),
		Count:    p.Rating.Count,
	}
}
