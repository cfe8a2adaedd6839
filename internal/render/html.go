package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"shelf/internal/catalog"
	"strings"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("_root").ParseFS(templateFS, "templates/*.tmpl"))

// HTML renders product cards as the grid markup of the document view.
type HTML struct {
	currency string
	tmpl     *template.Template
}

var _ Renderer = (*HTML)(nil)

func NewHTML(opts ...Option) *HTML {
	s := newSettings(opts)
	return &HTML{
		currency: s.currency,
		tmpl:     templates,
	}
}

func (h *HTML) Render(view []*catalog.Product) string {
	if len(view) == 0 {
		return placeholder(emptyText)
	}

	cards := make([]card, 0, len(view))
	for _, p := range view {
		cards = append(cards, newCard(p, h.currency))
	}
	return h.execute("cards", cards)
}

func (h *HTML) Loading() string {
	return placeholder(loadingText)
}

func (h *HTML) Error() string {
	return placeholder(errorText)
}

// Sidebar renders the side panel alone, for swapping it in place.
func (h *HTML) Sidebar(open bool) string {
	return h.execute("sidebar", open)
}

// Page writes the full document around already rendered grid content.
func (h *HTML) Page(w io.Writer, page Page) error {
	if err := h.tmpl.ExecuteTemplate(w, "page", page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// execute runs a fragment template into a string. The templates are embedded
// and the data types are fixed, so a failure here is a programming error.
func (h *HTML) execute(name string, data any) string {
	var sb strings.Builder
	if err := h.tmpl.ExecuteTemplate(&sb, name, data); err != nil {
		panic(fmt.Sprintf("render: template %s: %v", name, err))
	}
	return sb.String()
}

func placeholder(text string) string {
	return `<div class="loading">` + text + `</div>`
}
