package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/helpdoc/internal/config"
	"github.com/dgallion1/helpdoc/internal/helptree"
	"github.com/dgallion1/helpdoc/internal/live"
	"github.com/dgallion1/helpdoc/internal/stats"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP help host.
type Server struct {
	router   chi.Router
	pages    *helptree.Registry
	fallback helptree.Page
	live     *live.Registry
	render   *stats.Window
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server. fallback is served for
// unknown page identifiers.
func NewServer(pages *helptree.Registry, fallback helptree.Page, reg *live.Registry, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		pages:    pages,
		fallback: fallback,
		live:     reg,
		render:   stats.NewWindow(cfg.StatsWindow),
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/pages", s.handleTree)
		r.Get("/pages/{pageID}", s.handlePage)
		r.Get("/messages", s.handleMessages)
		r.Post("/extract", s.handleExtract)
		r.Get("/stats/render", s.handleRenderStats)
	})

	s.router = r
}

// session builds the Env pages are evaluated against for one request.
func (s *Server) session(r *http.Request) *helptree.Session {
	return &helptree.Session{
		Translator: helptree.Identity{},
		Live:       s.live,
		Pages:      s.pages,
		Info:       s.cfg.Meta(),
		LinkPrefix: s.cfg.LinkPrefix,
		Log:        s.log.With("request_id", middleware.GetReqID(r.Context())),
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
