package render

import (
	"html/template"
	"shelf/internal/catalog"
)

// Page is the document view around the product grid.
type Page struct {
	Title     string
	ItemCount string
	// Content is grid markup produced by an HTML renderer. It is inserted as is.
	Content     string
	PanelOpen   bool
	Sort        catalog.SortKey
	Interactive bool
}

type SortOption struct {
	Key      catalog.SortKey
	Label    string
	Selected bool
}

func (p Page) SortOptions() []SortOption {
	selected := catalog.ParseSortKey(string(p.Sort))
	opts := make([]SortOption, 0, len(catalog.SortKeys))
	for _, k := range catalog.SortKeys {
		opts = append(opts, SortOption{Key: k, Label: k.Label(), Selected: k == selected})
	}
	return opts
}

func (p Page) Markup() template.HTML {
	return template.HTML(p.Content) //nolint:gosec // produced by HTML.Render
}
