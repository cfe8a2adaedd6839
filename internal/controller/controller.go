package controller

import (
	"context"
	"fmt"
	"shelf/internal/catalog"
	"shelf/internal/render"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultNarrowWidth is the widest viewport at which an outside click
// dismisses the side panel.
const DefaultNarrowWidth = 768

type State int

const (
	StateLoading State = iota
	StateLoaded
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateErrored:
		return "errored"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Target says where a click landed relative to the side panel.
type Target int

const (
	TargetOutside Target = iota
	TargetPanel
	TargetToggle
)

// ParseTarget maps "panel" and "toggle" to their targets; anything else is
// outside.
func ParseTarget(s string) Target {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "panel":
		return TargetPanel
	case "toggle":
		return TargetToggle
	default:
		return TargetOutside
	}
}

type Fetcher interface {
	FetchCatalog(ctx context.Context) ([]catalog.Product, error)
}

// Controller reacts to load results and user events by updating the store
// and writing fresh markup to the document. It is not safe for concurrent
// use; adapters serialize calls.
type Controller struct {
	fetcher  Fetcher
	renderer render.Renderer
	doc      Document
	store    *catalog.Store
	log      zerolog.Logger

	narrowWidth int
	state       State
	sortKey     catalog.SortKey
	panelOpen   bool
}

type Option func(*Controller)

func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithNarrowWidth sets the dismiss threshold. Values below 1 are ignored.
func WithNarrowWidth(width int) Option {
	return func(c *Controller) {
		if width > 0 {
			c.narrowWidth = width
		}
	}
}

func New(fetcher Fetcher, renderer render.Renderer, doc Document, opts ...Option) *Controller {
	c := &Controller{
		fetcher:     fetcher,
		renderer:    renderer,
		doc:         doc,
		store:       catalog.NewStore(),
		log:         zerolog.Nop(),
		narrowWidth: DefaultNarrowWidth,
		state:       StateLoading,
		sortKey:     catalog.DefaultSortKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start runs the whole load: placeholder, one fetch, then the loaded or
// error view. The fetch error is returned after the document is updated.
func (c *Controller) Start(ctx context.Context) error {
	c.Begin()
	items, err := c.fetcher.FetchCatalog(ctx)
	return c.Complete(items, err)
}

// Begin enters Loading and shows the loading placeholder. Adapters that run
// the fetch themselves call Complete with its result.
func (c *Controller) Begin() {
	c.state = StateLoading
	c.doc.ReplaceContent(c.renderer.Loading())
}

// Fetch calls the configured fetcher without touching controller state.
func (c *Controller) Fetch(ctx context.Context) ([]catalog.Product, error) {
	return c.fetcher.FetchCatalog(ctx)
}

func (c *Controller) Complete(items []catalog.Product, err error) error {
	if err != nil {
		c.log.Error().Err(err).Msg("failed to load products")
		c.state = StateErrored
		c.doc.ReplaceContent(c.renderer.Error())
		return err
	}

	c.store.Load(items)
	c.state = StateLoaded
	c.log.Debug().Int("count", c.store.Count()).Msg("products loaded")
	c.doc.SetItemCount(ItemCountLabel(c.store.Count()))
	c.doc.ReplaceContent(c.renderer.Render(c.store.CurrentView()))
	return nil
}

// ChangeSort re-sorts and re-renders the view. Unknown keys fall back to
// the default key. Outside Loaded there is nothing to sort and the event is
// dropped.
func (c *Controller) ChangeSort(value string) {
	key := catalog.ParseSortKey(value)
	if c.state != StateLoaded {
		c.log.Debug().Str("sort", string(key)).Stringer("state", c.state).Msg("sort ignored")
		return
	}

	c.sortKey = key
	c.store.Sort(key)
	c.doc.ReplaceContent(c.renderer.Render(c.store.CurrentView()))
}

// Refresh writes the content for the current state again, for renderers
// whose layout changed.
func (c *Controller) Refresh() {
	switch c.state {
	case StateLoaded:
		c.doc.ReplaceContent(c.renderer.Render(c.store.CurrentView()))
	case StateErrored:
		c.doc.ReplaceContent(c.renderer.Error())
	default:
		c.doc.ReplaceContent(c.renderer.Loading())
	}
}

func (c *Controller) TogglePanel() {
	c.panelOpen = !c.panelOpen
	c.doc.SetPanelOpen(c.panelOpen)
}

// Click closes the side panel when a click outside both the panel and its
// toggle happens on a narrow viewport.
func (c *Controller) Click(target Target, viewportWidth int) {
	if viewportWidth > c.narrowWidth || target != TargetOutside {
		return
	}
	c.panelOpen = false
	c.doc.SetPanelOpen(false)
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) SortKey() catalog.SortKey {
	return c.sortKey
}

func (c *Controller) PanelOpen() bool {
	return c.panelOpen
}

func (c *Controller) NarrowWidth() int {
	return c.narrowWidth
}

func (c *Controller) Store() *catalog.Store {
	return c.store
}

func ItemCountLabel(n int) string {
	return fmt.Sprintf("%d ITEMS", n)
}
