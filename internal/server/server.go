// Package server exposes the widget-facing HTTP surface: markdown
// rendering, conversation persistence, theme delivery and the chat relay.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/softsage/chatembed/internal/markdown"
	"github.com/softsage/chatembed/internal/store"
	"github.com/softsage/chatembed/internal/theme"
)

// Config holds server configuration.
type Config struct {
	Port           int
	ChatflowID     string   // default chatflow for the ws relay
	APIHost        string   // upstream prediction host; empty means echo mode
	AllowAll       bool     // allow all CORS origins (dev mode)
	AllowedOrigins []string // origin allow-list when AllowAll is off
}

// Server is the chatembed widget backend.
type Server struct {
	cfg        Config
	store      *store.Store
	safe       *markdown.Renderer
	unsafe     *markdown.Renderer
	theme      theme.Theme
	router     chi.Router
	httpServer *http.Server
}

// New creates a server with all dependencies.
func New(cfg Config, st *store.Store, safe, unsafe *markdown.Renderer, th theme.Theme) *Server {
	s := &Server{
		cfg:    cfg,
		store:  st,
		safe:   safe,
		unsafe: unsafe,
		theme:  th,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS: the widget runs inside third-party pages, so the origin
	// allow-list is part of the deployment contract.
	corsOpts := cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll || len(corsOpts.AllowedOrigins) == 0 {
		corsOpts.AllowedOrigins = []string{"*"}
		corsOpts.AllowCredentials = false
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Get("/theme", s.handleTheme)
		r.Route("/conversations/{chatflowID}", func(r chi.Router) {
			r.Get("/", s.handleGetConversation)
			r.Put("/", s.handlePutConversation)
			r.Delete("/", s.handleClearConversation)
		})
	})

	r.Get("/ws/chat", s.handleWebSocket)

	return r
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

	log.Printf("chatembed server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
