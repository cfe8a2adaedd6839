package main

import (
	"fmt"
	"shelf/internal/catalog"
	"shelf/internal/ui"
)

type ListCmd struct {
	Sort  string `short:"s" help:"Sort key: recommended, price-low, price-high, newest"`
	Pick  bool   `short:"p" help:"Choose the sort key interactively"`
	Width int    `short:"w" help:"Layout width (defaults to the terminal width)"`
}

func (cmd *ListCmd) Run(g *Globals) error {
	sort := cmd.Sort
	if cmd.Pick {
		key, err := g.PickSort(catalog.ParseSortKey(sort))
		if err != nil {
			return err
		}
		sort = string(key)
		fmt.Fprint(g.Out, ui.RenderSummary("Sort products", []ui.Field{
			{Label: "Sort", Value: key.Label()},
		}))
	}

	if cmd.Width > 0 {
		g.Terminal.SetWidth(cmd.Width)
	}

	ctrl, doc, err := g.load(g.context(), g.Terminal, sort)
	if err != nil {
		fmt.Fprint(g.Out, doc.Content)
		return err
	}

	header := doc.ItemCount
	if sort != "" {
		header += " · " + ctrl.SortKey().Label()
	}
	fmt.Fprintf(g.Out, "%s\n\n", header)
	fmt.Fprint(g.Out, doc.Content)
	return nil
}
