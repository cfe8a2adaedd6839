package proptest

import (
	"context"
	"errors"
	"shelf/internal/catalog"
	"shelf/internal/controller"
	"shelf/internal/fetch"
	"shelf/internal/render"

	"pgregory.net/rapid"
)

// ControllerModel is the expected observable state of a controller.
type ControllerModel struct {
	State     controller.State
	PanelOpen bool
	SortKey   catalog.SortKey
	Label     string
	Loaded    []catalog.Product
	Sorted    bool
}

func NewControllerModel() *ControllerModel {
	return &ControllerModel{
		State:   controller.StateLoading,
		SortKey: catalog.DefaultSortKey,
	}
}

func (m *ControllerModel) Begin() {
	m.State = controller.StateLoading
}

func (m *ControllerModel) Complete(items []catalog.Product, err error) {
	if err != nil {
		m.State = controller.StateErrored
		return
	}
	m.State = controller.StateLoaded
	m.Loaded = items
	m.Label = controller.ItemCountLabel(len(items))
	m.Sorted = false
}

func (m *ControllerModel) ChangeSort(raw string) {
	if m.State != controller.StateLoaded {
		return
	}
	m.SortKey = catalog.ParseSortKey(raw)
	m.Sorted = true
}

func (m *ControllerModel) TogglePanel() {
	m.PanelOpen = !m.PanelOpen
}

func (m *ControllerModel) Click(target controller.Target, width, narrow int) {
	if target == controller.TargetOutside && width <= narrow {
		m.PanelOpen = false
	}
}

// CheckedController drives a real controller and its model side by side and
// compares them after every event.
type CheckedController struct {
	t     *rapid.T
	real  *controller.Controller
	doc   *controller.MemoryDocument
	html  *render.HTML
	model *ControllerModel
}

func NewCheckedController(t *rapid.T) *CheckedController {
	doc := &controller.MemoryDocument{}
	html := render.NewHTML()
	return &CheckedController{
		t:     t,
		real:  controller.New(nil, html, doc),
		doc:   doc,
		html:  html,
		model: NewControllerModel(),
	}
}

func (c *CheckedController) Model() *ControllerModel {
	return c.model
}

func (c *CheckedController) Begin() {
	c.real.Begin()
	c.model.Begin()
	c.verify()
	if c.doc.Content != c.html.Loading() {
		c.t.Fatalf("Begin left %q in the grid", c.doc.Content)
	}
}

func (c *CheckedController) CompleteOK(items []catalog.Product) {
	if err := c.real.Complete(items, nil); err != nil {
		c.t.Fatalf("Complete returned %v for a successful load", err)
	}
	c.model.Complete(items, nil)
	c.verify()
}

func (c *CheckedController) CompleteErr() {
	cause := &fetch.FetchError{Source: "test", Err: errors.New("connection refused")}
	if err := c.real.Complete(nil, cause); !errors.Is(err, fetch.ErrFetch) {
		c.t.Fatalf("Complete returned %v, want the fetch error", err)
	}
	c.model.Complete(nil, cause)
	c.verify()
	if c.doc.Content != c.html.Error() {
		c.t.Fatalf("failed load left %q in the grid", c.doc.Content)
	}
}

func (c *CheckedController) ChangeSort(raw string) {
	c.real.ChangeSort(raw)
	c.model.ChangeSort(raw)
	c.verify()
}

func (c *CheckedController) TogglePanel() {
	c.real.TogglePanel()
	c.model.TogglePanel()
	c.verify()
}

func (c *CheckedController) Click(target controller.Target, width int) {
	wasOpen := c.real.PanelOpen()
	c.real.Click(target, width)
	c.model.Click(target, width, c.real.NarrowWidth())
	c.verify()
	if width > c.real.NarrowWidth() && c.real.PanelOpen() != wasOpen {
		c.t.Fatalf("[%s] violated: click at width %d changed the panel", InvPanelDismiss, width)
	}
}

func (c *CheckedController) Refresh() {
	before := c.doc.Content
	c.real.Refresh()
	c.verify()
	if c.doc.Content != before {
		c.t.Fatalf("Refresh changed the grid in state %s", c.real.State())
	}
}

func (c *CheckedController) verify() {
	c.t.Helper()
	m := c.model

	if c.real.State() != m.State {
		c.t.Fatalf("state = %s, model says %s", c.real.State(), m.State)
	}
	if c.real.PanelOpen() != m.PanelOpen || c.doc.PanelOpen != m.PanelOpen {
		c.t.Fatalf("panel open = %v (document %v), model says %v", c.real.PanelOpen(), c.doc.PanelOpen, m.PanelOpen)
	}
	if c.real.SortKey() != m.SortKey {
		c.t.Fatalf("sort key = %s, model says %s", c.real.SortKey(), m.SortKey)
	}
	if c.doc.ItemCount != m.Label {
		c.t.Fatalf("[%s] violated: label = %q, model says %q", InvLabelStable, c.doc.ItemCount, m.Label)
	}

	store := c.real.Store()
	verifyStoreInvariants(c.t, store, m.Loaded)

	if m.State != controller.StateLoaded {
		return
	}
	view := store.CurrentView()
	if m.Sorted {
		assertSortedBy(c.t, view, m.SortKey)
	} else {
		assertSamePointers(c.t, store.All(), view)
	}
	if c.doc.Content != c.html.Render(view) {
		c.t.Fatalf("grid does not match the current view")
	}
}

// failingSource always fails, for runs through Start.
type failingSource struct{}

func (failingSource) FetchCatalog(ctx context.Context) ([]catalog.Product, error) {
	return nil, &fetch.FetchError{Source: "test", Err: errors.New("unreachable")}
}
