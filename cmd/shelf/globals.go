package main

import (
	"context"
	"io"
	"shelf/internal/catalog"
	"shelf/internal/config"
	"shelf/internal/controller"
	"shelf/internal/fetch"
	"shelf/internal/logging"
	"shelf/internal/render"
	"shelf/internal/ui"

	"github.com/rs/zerolog"
)

type Globals struct {
	Config   config.Config
	Source   fetch.Source
	Out      io.Writer
	Log      zerolog.Logger
	Terminal *render.Terminal
	HTML     *render.HTML
	PickSort func(current catalog.SortKey) (catalog.SortKey, error)
}

func newGlobals(cfg config.Config, out, logOut io.Writer) *Globals {
	log := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: logOut,
	})
	currency := render.WithCurrency(cfg.Currency)
	return &Globals{
		Config:   cfg,
		Source:   fetch.NewSource(cfg.Source, fetch.WithTimeout(cfg.Timeout), fetch.WithLogger(log)),
		Out:      out,
		Log:      log,
		Terminal: render.NewTerminalAuto(out, currency),
		HTML:     render.NewHTML(currency),
		PickSort: ui.PickSort,
	}
}

func (g *Globals) context() context.Context {
	return logging.WithLogger(context.Background(), &g.Log)
}

// load runs the startup flow against r and applies sort once the catalog is
// in. The document holds the placeholder when the fetch fails.
func (g *Globals) load(ctx context.Context, r render.Renderer, sort string) (*controller.Controller, *controller.MemoryDocument, error) {
	doc := &controller.MemoryDocument{}
	ctrl := controller.New(g.Source, r, doc,
		controller.WithLogger(*logging.FromContext(ctx)),
		controller.WithNarrowWidth(g.Config.NarrowWidth),
	)
	if err := ctrl.Start(ctx); err != nil {
		return ctrl, doc, err
	}
	if sort != "" {
		ctrl.ChangeSort(sort)
	}
	return ctrl, doc, nil
}
