package render

import "shelf/internal/catalog"

// Renderer turns the current view into markup for one output surface. Every
// method returns content that replaces whatever the surface showed before.
type Renderer interface {
	Render(view []*catalog.Product) string
	Loading() string
	Error() string
}

const (
	loadingText = "Loading products..."
	errorText   = "Error loading products. Please try again later."
	emptyText   = "No products found."
)

// DefaultCurrency prefixes every rendered price unless WithCurrency says otherwise.
const DefaultCurrency = "$"

type settings struct {
	currency string
}

type Option func(*settings)

func WithCurrency(symbol string) Option {
	return func(s *settings) {
		s.currency = symbol
	}
}

func newSettings(opts []Option) settings {
	s := settings{currency: DefaultCurrency}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
