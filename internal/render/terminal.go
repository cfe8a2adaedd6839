package render

import (
	"fmt"
	"io"
	"os"
	"shelf/internal/catalog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

const defaultWidth = 80

// Terminal renders product cards as plain text laid out for a terminal.
type Terminal struct {
	width    int
	currency string
	r        *lipgloss.Renderer

	titleStyle    lipgloss.Style
	priceStyle    lipgloss.Style
	categoryStyle lipgloss.Style
	starStyle     lipgloss.Style
	countStyle    lipgloss.Style
	noticeStyle   lipgloss.Style
}

var _ Renderer = (*Terminal)(nil)

func NewTerminal(w io.Writer, width int, opts ...Option) *Terminal {
	s := newSettings(opts)
	r := lipgloss.NewRenderer(w)
	return &Terminal{
		width:         width,
		currency:      s.currency,
		r:             r,
		titleStyle:    r.NewStyle().Bold(true),
		priceStyle:    r.NewStyle().Foreground(lipgloss.Color("10")),
		categoryStyle: r.NewStyle().Faint(true),
		starStyle:     r.NewStyle().Foreground(lipgloss.Color("11")),
		countStyle:    r.NewStyle().Faint(true),
		noticeStyle:   r.NewStyle().Italic(true),
	}
}

// NewTerminalAuto sizes the layout to w when it is a terminal.
func NewTerminalAuto(w io.Writer, opts ...Option) *Terminal {
	return NewTerminal(w, TerminalWidth(w), opts...)
}

// TerminalWidth reports the column count of w, or 80 when w is not a terminal.
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			return tw
		}
	}
	return defaultWidth
}

// SetWidth changes the layout width for later renders.
func (t *Terminal) SetWidth(width int) {
	t.width = width
}

func (t *Terminal) Width() int {
	return t.width
}

func (t *Terminal) Render(view []*catalog.Product) string {
	if len(view) == 0 {
		return t.notice(emptyText)
	}

	items := make([]string, 0, len(view))
	for _, p := range view {
		items = append(items, t.renderCard(newCard(p, t.currency)))
	}
	return strings.Join(items, "\n\n") + "\n"
}

func (t *Terminal) Loading() string {
	return t.notice(loadingText)
}

func (t *Terminal) Error() string {
	return t.notice(errorText)
}

func (t *Terminal) notice(text string) string {
	return t.noticeStyle.Render(text) + "\n"
}

func (t *Terminal) renderCard(c card) string {
	title := t.titleStyle.Render(c.Title)
	price := t.priceStyle.Render(c.Price)
	padding := max(1, t.width-lipgloss.Width(title)-lipgloss.Width(price))

	lines := []string{
		title + strings.Repeat(" ", padding) + price,
		t.categoryStyle.Render("  " + c.Category),
		"  " + t.starStyle.Render(c.Stars) + " " + t.countStyle.Render(fmt.Sprintf("(%d)", c.Count)),
	}
	return strings.Join(lines, "\n")
}
