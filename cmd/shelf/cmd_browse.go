package main

import (
	"shelf/internal/controller"
	"shelf/internal/ui"
)

type BrowseCmd struct{}

func (cmd *BrowseCmd) Run(g *Globals) error {
	ctx := g.context()
	b := ui.NewBrowser(ctx, g.Source, g.Terminal, controller.WithLogger(g.Log))
	return ui.RunBrowser(ctx, b)
}
