// Package server hosts the document view over HTTP. Sort and panel events
// arrive as htmx requests and are applied to one shared controller.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"shelf/internal/controller"
	"shelf/internal/render"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const (
	DefaultTitle    = "Shop"
	shutdownTimeout = 10 * time.Second
)

type Config struct {
	Addr        string
	Title       string
	NarrowWidth int
}

// Server owns a single session: one controller and the document it writes
// to. The mutex serializes events the way a browser serializes callbacks.
type Server struct {
	cfg    Config
	html   *render.HTML
	log    zerolog.Logger
	router chi.Router

	mu       sync.Mutex
	ctrl     *controller.Controller
	doc      *controller.MemoryDocument
	loadOnce sync.Once
	loaded   chan struct{}
}

func New(fetcher controller.Fetcher, html *render.HTML, cfg Config, log zerolog.Logger) *Server {
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	doc := &controller.MemoryDocument{}
	s := &Server{
		cfg:  cfg,
		html: html,
		log:  log,
		doc:  doc,
		ctrl: controller.New(fetcher, html, doc,
			controller.WithLogger(log),
			controller.WithNarrowWidth(cfg.NarrowWidth),
		),
		loaded: make(chan struct{}),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(htmx)
	r.Use(requestLogger(s.log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Get("/", s.handlePage)
	r.Get("/products", s.handleProducts)
	r.Route("/panel", func(r chi.Router) {
		r.Post("/toggle", s.handleToggle)
		r.Post("/dismiss", s.handleDismiss)
	})
	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Load shows the loading placeholder and fetches the catalog in the
// background. Loaded is closed once the result has been applied. Only the
// first call starts a fetch.
func (s *Server) Load(ctx context.Context) {
	s.loadOnce.Do(func() {
		s.mu.Lock()
		s.ctrl.Begin()
		s.mu.Unlock()

		go func() {
			defer close(s.loaded)
			items, err := s.ctrl.Fetch(ctx)

			s.mu.Lock()
			defer s.mu.Unlock()
			_ = s.ctrl.Complete(items, err)
		}()
	})
}

func (s *Server) Loaded() <-chan struct{} {
	return s.loaded
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		s.log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if sort := r.URL.Query().Get("sort"); sort != "" {
		s.ctrl.ChangeSort(sort)
	}
	page := render.Page{
		Title:       s.cfg.Title,
		ItemCount:   s.doc.ItemCount,
		Content:     s.doc.Content,
		PanelOpen:   s.doc.PanelOpen,
		Sort:        s.ctrl.SortKey(),
		Interactive: true,
	}
	s.mu.Unlock()

	var buf bytes.Buffer
	if err := s.html.Page(&buf, page); err != nil {
		s.log.Error().Err(err).Msg("failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	writeHTML(w, buf.String())
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	sort := r.URL.Query().Get("sort")
	if !isHTMX(r) {
		http.Redirect(w, r, "/?sort="+url.QueryEscape(sort), http.StatusSeeOther)
		return
	}

	s.mu.Lock()
	if sort != "" {
		s.ctrl.ChangeSort(sort)
	}
	content := s.doc.Content
	s.mu.Unlock()

	writeHTML(w, content)
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.ctrl.TogglePanel()
	open := s.doc.PanelOpen
	s.mu.Unlock()

	s.writeSidebar(w, r, open)
}

func (s *Server) handleDismiss(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	width, err := strconv.Atoi(r.PostForm.Get("width"))
	if err != nil || width < 0 {
		http.Error(w, "invalid width", http.StatusBadRequest)
		return
	}
	target := controller.ParseTarget(r.PostForm.Get("target"))

	s.mu.Lock()
	s.ctrl.Click(target, width)
	open := s.doc.PanelOpen
	s.mu.Unlock()

	s.writeSidebar(w, r, open)
}

func (s *Server) writeSidebar(w http.ResponseWriter, r *http.Request, open bool) {
	if !isHTMX(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	writeHTML(w, s.html.Sidebar(open))
}

func writeHTML(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(body))
}
