package catalog

import "github.com/shopspring/decimal"

type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      Rating          `json:"rating"`
}

// Rating is the aggregate review score. Rate is expected in [0,5] but is not
// validated; renderers must tolerate values outside that range.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

func NewProduct(id int, title string, price decimal.Decimal) Product {
	return Product{
		ID:    id,
		Title: title,
		Price: price,
	}
}

func (p Product) WithCategory(category string) Product {
	newP := p
	newP.Category = category
	return newP
}

func (p Product) WithImage(image string) Product {
	newP := p
	newP.Image = image
	return newP
}

func (p Product) WithRating(rate float64, count int) Product {
	newP := p
	newP.Rating = Rating{Rate: rate, Count: count}
	return newP
}
