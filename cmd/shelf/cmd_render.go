package main

import (
	"bytes"
	"fmt"
	"os"
	"shelf/internal/render"
	"shelf/internal/server"
)

type RenderCmd struct {
	Sort  string `short:"s" help:"Sort key: recommended, price-low, price-high, newest"`
	Out   string `short:"o" help:"Output file (defaults to stdout)" type:"path"`
	Title string `help:"Page title"`
}

func (cmd *RenderCmd) Run(g *Globals) error {
	ctrl, doc, fetchErr := g.load(g.context(), g.HTML, cmd.Sort)

	var buf bytes.Buffer
	err := g.HTML.Page(&buf, render.Page{
		Title:     cmd.title(),
		ItemCount: doc.ItemCount,
		Content:   doc.Content,
		PanelOpen: ctrl.PanelOpen(),
		Sort:      ctrl.SortKey(),
	})
	if err != nil {
		return err
	}

	if cmd.Out == "" {
		if _, err := g.Out.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write page: %w", err)
		}
		return fetchErr
	}

	if err := os.WriteFile(cmd.Out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	return fetchErr
}

func (cmd *RenderCmd) title() string {
	if cmd.Title == "" {
		return server.DefaultTitle
	}
	return cmd.Title
}
