package ui

import (
	"context"
	"fmt"
	"shelf/internal/catalog"
	"shelf/internal/controller"
	"shelf/internal/render"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// BrowseNarrowWidth is the widest terminal, in columns, at which a click
// outside the filter panel closes it.
const BrowseNarrowWidth = 100

const (
	panelWidth  = 28
	toggleLabel = "[f] Filters"
	helpText    = "s sort · 1-4 pick sort · f filters · esc close · ↑/↓ scroll · q quit"
	chromeLines = 2
)

type loadedMsg struct {
	items []catalog.Product
	err   error
}

// Browser is the interactive terminal view. Keys and mouse clicks become
// controller events; the view is rebuilt from the controller's document.
type Browser struct {
	ctx  context.Context
	ctrl *controller.Controller
	doc  *controller.MemoryDocument
	term *render.Terminal

	width  int
	height int
	offset int
	err    error

	headerStyle lipgloss.Style
	toggleStyle lipgloss.Style
	panelStyle  lipgloss.Style
	helpStyle   lipgloss.Style
}

var _ tea.Model = (*Browser)(nil)

// NewBrowser enters the loading state right away; Init starts the fetch.
func NewBrowser(ctx context.Context, fetcher controller.Fetcher, term *render.Terminal, opts ...controller.Option) *Browser {
	doc := &controller.MemoryDocument{}
	opts = append([]controller.Option{controller.WithNarrowWidth(BrowseNarrowWidth)}, opts...)
	b := &Browser{
		ctx:         ctx,
		doc:         doc,
		term:        term,
		ctrl:        controller.New(fetcher, term, doc, opts...),
		width:       term.Width(),
		headerStyle: lipgloss.NewStyle().Bold(true),
		toggleStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		panelStyle: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("8")).
			PaddingLeft(1),
		helpStyle: lipgloss.NewStyle().Faint(true),
	}
	b.ctrl.Begin()
	return b
}

func (b *Browser) Init() tea.Cmd {
	return b.fetch
}

func (b *Browser) fetch() tea.Msg {
	items, err := b.ctrl.Fetch(b.ctx)
	return loadedMsg{items: items, err: err}
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		b.err = b.ctrl.Complete(msg.items, msg.err)
		b.offset = 0

	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height

	case tea.KeyMsg:
		if cmd := b.handleKey(msg); cmd != nil {
			return b, cmd
		}

	case tea.MouseMsg:
		b.handleMouse(msg)
	}

	b.syncLayout()
	return b, nil
}

func (b *Browser) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return tea.Quit
	case "f":
		b.ctrl.TogglePanel()
	case "esc":
		b.ctrl.Click(controller.TargetOutside, b.width)
	case "s":
		b.changeSort(nextSortKey(b.ctrl.SortKey()))
	case "1", "2", "3", "4":
		b.changeSort(catalog.SortKeys[int(key[0]-'1')])
	case "up", "k":
		b.scroll(-1)
	case "down", "j":
		b.scroll(1)
	case "pgup":
		b.scroll(-b.bodyHeight())
	case "pgdown", " ":
		b.scroll(b.bodyHeight())
	}
	return nil
}

func (b *Browser) changeSort(key catalog.SortKey) {
	b.ctrl.ChangeSort(string(key))
	b.offset = 0
}

func nextSortKey(current catalog.SortKey) catalog.SortKey {
	for i, k := range catalog.SortKeys {
		if k == current {
			return catalog.SortKeys[(i+1)%len(catalog.SortKeys)]
		}
	}
	return catalog.DefaultSortKey
}

func (b *Browser) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		b.scroll(-1)
		return
	case tea.MouseButtonWheelDown:
		b.scroll(1)
		return
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	target := b.hitTest(msg.X, msg.Y)
	if target == controller.TargetToggle {
		b.ctrl.TogglePanel()
		return
	}
	b.ctrl.Click(target, b.width)
}

// hitTest maps a cell to the part of the screen it belongs to. The toggle
// sits at the right end of the header row and the panel fills the right
// columns below it.
func (b *Browser) hitTest(x, y int) controller.Target {
	toggleStart := b.width - lipgloss.Width(toggleLabel)
	switch {
	case y == 0 && x >= toggleStart:
		return controller.TargetToggle
	case b.ctrl.PanelOpen() && y > 0 && y <= b.bodyHeight() && x >= b.width-panelWidth:
		return controller.TargetPanel
	default:
		return controller.TargetOutside
	}
}

// syncLayout keeps the card width in step with the space left by the panel.
func (b *Browser) syncLayout() {
	width := b.contentWidth()
	if width != b.term.Width() {
		b.term.SetWidth(width)
		b.ctrl.Refresh()
	}
	b.scroll(0)
}

func (b *Browser) contentWidth() int {
	width := b.width
	if b.ctrl.PanelOpen() {
		width -= panelWidth
	}
	return max(width, 1)
}

func (b *Browser) bodyHeight() int {
	if b.height <= chromeLines {
		return max(b.height, 1)
	}
	return b.height - chromeLines
}

func (b *Browser) contentLines() []string {
	return strings.Split(strings.TrimRight(b.doc.Content, "\n"), "\n")
}

func (b *Browser) scroll(delta int) {
	maxOffset := max(len(b.contentLines())-b.bodyHeight(), 0)
	b.offset = min(max(b.offset+delta, 0), maxOffset)
}

func (b *Browser) View() string {
	header := b.header()
	body := b.body()
	if b.ctrl.PanelOpen() {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(b.contentWidth()).Render(body),
			b.panel(),
		)
	}
	return header + "\n" + body + "\n" + b.helpStyle.Render(helpText)
}

func (b *Browser) header() string {
	left := b.doc.ItemCount
	if left == "" {
		left = "…"
	}
	left = b.headerStyle.Render(left) + "  Sort: " + b.ctrl.SortKey().Label()
	toggle := b.toggleStyle.Render(toggleLabel)
	padding := max(1, b.width-lipgloss.Width(left)-lipgloss.Width(toggle))
	return left + strings.Repeat(" ", padding) + toggle
}

func (b *Browser) body() string {
	lines := b.contentLines()
	end := min(b.offset+b.bodyHeight(), len(lines))
	return strings.Join(lines[b.offset:end], "\n")
}

func (b *Browser) panel() string {
	var sb strings.Builder
	sb.WriteString(b.headerStyle.Render("Filters"))
	sb.WriteString("\n\n")
	for i, k := range catalog.SortKeys {
		marker := " "
		if k == b.ctrl.SortKey() {
			marker = "›"
		}
		fmt.Fprintf(&sb, "%s %d %s\n", marker, i+1, k.Label())
	}
	sb.WriteString("\nesc or click outside to close")
	return b.panelStyle.Width(panelWidth - 1).Height(b.bodyHeight()).Render(sb.String())
}

// Err returns the fetch error, if the load failed.
func (b *Browser) Err() error {
	return b.err
}

func (b *Browser) Controller() *controller.Controller {
	return b.ctrl
}

func (b *Browser) Document() *controller.MemoryDocument {
	return b.doc
}

// RunBrowser runs the program until the user quits and returns the load
// error, if any.
func RunBrowser(ctx context.Context, b *Browser, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}, opts...)
	if _, err := tea.NewProgram(b, opts...).Run(); err != nil {
		return fmt.Errorf("browse failed: %w", err)
	}
	return b.Err()
}
