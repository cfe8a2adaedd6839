package main

import (
	"bytes"
	"fmt"
	"os"
	"shelf/internal/fetch"
	"shelf/internal/ui"
)

type ExportCmd struct {
	Sort string `short:"s" help:"Sort key applied before export"`
	Out  string `short:"o" help:"Output file (defaults to stdout)" type:"path"`
}

func (cmd *ExportCmd) Run(g *Globals) error {
	ctrl, _, err := g.load(g.context(), g.HTML, cmd.Sort)
	if err != nil {
		return err
	}

	view := ctrl.Store().CurrentView()
	var buf bytes.Buffer
	if err := fetch.WriteYAML(&buf, view); err != nil {
		return err
	}

	if cmd.Out == "" {
		_, err := g.Out.Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(cmd.Out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	order := "original order"
	if cmd.Sort != "" {
		order = "sorted by " + ctrl.SortKey().Label()
	}
	fmt.Fprint(g.Out, ui.RenderDone(fmt.Sprintf("Exported %d products", len(view)), cmd.Out, []string{order}))
	return nil
}
