package main

import (
	"os"
	"os/signal"
	"shelf/internal/server"
	"syscall"
)

type ServeCmd struct {
	Addr  string `short:"a" help:"Listen address (overrides config)"`
	Title string `help:"Page title"`
}

func (cmd *ServeCmd) Run(g *Globals) error {
	addr := g.Config.Addr
	if cmd.Addr != "" {
		addr = cmd.Addr
	}

	ctx, stop := signal.NotifyContext(g.context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(g.Source, g.HTML, server.Config{
		Addr:        addr,
		Title:       cmd.Title,
		NarrowWidth: g.Config.NarrowWidth,
	}, g.Log)
	srv.Load(ctx)
	return srv.ListenAndServe(ctx)
}
