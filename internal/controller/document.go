package controller

// Document is the surface the controller writes to: the product grid, the
// item count label and the side panel.
type Document interface {
	ReplaceContent(markup string)
	SetItemCount(label string)
	SetPanelOpen(open bool)
}

// MemoryDocument keeps the last value written to each part of the document.
// Adapters that rebuild their output from state, such as the HTTP page and
// the terminal program, read it back after each event.
type MemoryDocument struct {
	Content   string
	ItemCount string
	PanelOpen bool
}

var _ Document = (*MemoryDocument)(nil)

func (d *MemoryDocument) ReplaceContent(markup string) {
	d.Content = markup
}

func (d *MemoryDocument) SetItemCount(label string) {
	d.ItemCount = label
}

func (d *MemoryDocument) SetPanelOpen(open bool) {
	d.PanelOpen = open
}
