// Package server composes the HTTP surface: middleware, CORS, the rendered
// page, and the mount point feature packages register their routes on.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/gkcodebase/folio/internal/portfolio"
	"github.com/gkcodebase/folio/internal/site"
	"github.com/gkcodebase/folio/internal/theme"
)

// Config holds server configuration.
type Config struct {
	Port           int
	AssetsDir      string   // directory served under /assets/
	AllowedOrigins []string // CORS origins; a single "*" allows any
}

// Server is the folio portfolio server.
type Server struct {
	cfg        Config
	session    *portfolio.Session
	themes     *theme.Store
	renderer   *site.Renderer
	router     chi.Router
	httpServer *http.Server
}

// New creates a server around the edit session and theme store.
func New(cfg Config, session *portfolio.Session, themes *theme.Store, renderer *site.Renderer) *Server {
	s := &Server{
		cfg:      cfg,
		session:  session,
		themes:   themes,
		renderer: renderer,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	r.Use(cors.Handler(corsOpts))

	// Health check, including whether the last write reached storage.
	r.Get("/healthz", s.handleHealth)

	// Rendered portfolio page and its stylesheet.
	r.Get("/", s.handlePage)
	r.Get("/style.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Write(site.Stylesheet())
	})

	// Static assets.
	if s.cfg.AssetsDir != "" {
		fs := http.StripPrefix("/assets/", http.FileServer(http.Dir(s.cfg.AssetsDir)))
		r.Get("/assets/*", fs.ServeHTTP)
	}

	// API routes are registered by feature packages via Router().

	return r
}

// healthResponse is the /healthz payload.
type healthResponse struct {
	Status    string `json:"status"`
	Version   uint64 `json:"version"`
	Persisted bool   `json:"persisted"`
	EditMode  bool   `json:"editMode"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:    "ok",
		Version:   s.session.Version(),
		Persisted: s.session.Persisted() && s.themes.Persisted(),
		EditMode:  s.session.EditMode(),
	}
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	doc := s.session.Document()
	settings := s.themes.Settings()

	page, err := s.renderer.RenderPage(doc, settings)
	if err != nil {
		log.Printf("server: rendering page: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("folio server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
