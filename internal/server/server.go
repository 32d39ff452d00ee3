// Package server exposes the rendering engine over HTTP.
//
// The API is a thin layer over the engine: validation and rendering accept
// the same graph envelope the CLI reads, rendered scenes are cached by a
// digest of the request body, and figures can be persisted to a store and
// fetched later by ID.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tracekit/tracekit/pkg/cache"
	"github.com/tracekit/tracekit/pkg/figstore"
)

// Options configures a Server.
type Options struct {
	// Logger receives request and engine logs. Required.
	Logger *log.Logger
	// Cache stores rendered scenes keyed by request digest. A nil cache
	// disables caching.
	Cache cache.Cache
	// Store persists figures for retrieval by ID. A nil store disables
	// the /api/figures routes' persistence (an in-memory store is used).
	Store figstore.Store
	// CacheTTL bounds the lifetime of cached scenes. Zero means no
	// expiration.
	CacheTTL time.Duration
}

// Server routes rendering requests to the engine.
type Server struct {
	logger   *log.Logger
	cache    cache.Cache
	keyer    cache.Keyer
	store    figstore.Store
	cacheTTL time.Duration
	router   chi.Router
}

// New assembles a server from its options.
func New(opts Options) *Server {
	s := &Server{
		logger:   opts.Logger,
		cache:    opts.Cache,
		keyer:    cache.NewDefaultKeyer(),
		store:    opts.Store,
		cacheTTL: opts.CacheTTL,
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.cache == nil {
		s.cache = cache.NewNullCache()
	}
	if s.store == nil {
		s.store = figstore.NewMemoryStore()
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/validate", s.handleValidate)
		r.Post("/render", s.handleRender)
		r.Route("/figures", func(r chi.Router) {
			r.Get("/", s.handleListFigures)
			r.Post("/", s.handleSaveFigure)
			r.Get("/{id}", s.handleGetFigure)
			r.Delete("/{id}", s.handleDeleteFigure)
		})
	})
	s.router = r
	return s
}

// Router returns the HTTP handler.
func (s *Server) Router() http.Handler { return s.router }

// logRequests logs method, path, status and latency per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
