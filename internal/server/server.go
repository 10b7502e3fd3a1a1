// Package server implements the daxport HTTP service.
//
// The service exposes two groups of endpoints under /v1:
//   - POST /v1/render renders a workflow document sent in the request body
//   - /v1/workflows stores named workflow documents and renders them on demand
//
// Rendered documents are cached by content hash, so repeated renders of the
// same graph are served from the configured cache backend.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/pegflow/daxport/pkg/buildinfo"
	"github.com/pegflow/daxport/pkg/cache"
	"github.com/pegflow/daxport/pkg/errors"
	"github.com/pegflow/daxport/pkg/store"
)

// Config holds the dependencies of a Server.
type Config struct {
	// Store persists named workflow documents. Required.
	Store store.Store

	// Cache holds rendered documents keyed by content hash.
	// A nil cache disables caching.
	Cache cache.Cache

	// CacheTTL is the lifetime of cached render results.
	CacheTTL time.Duration

	// Logger receives request logs. Defaults to log.Default().
	Logger *log.Logger
}

// Server handles the daxport HTTP API.
type Server struct {
	store    store.Store
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *log.Logger
}

// New creates a Server from cfg, filling in defaults for optional fields.
func New(cfg Config) *Server {
	// Render results live under one namespace so a backend shared with
	// other concerns never collides on keys.
	c := cache.NewScopedCache(cfg.Cache, "render:")
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		store:    cfg.Store,
		cache:    c,
		cacheTTL: cfg.CacheTTL,
		logger:   logger,
	}
}

// Handler returns the routed HTTP handler for the service.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Get("/workflows", s.handleListWorkflows)
		r.Route("/workflows/{name}", func(r chi.Router) {
			r.Put("/", s.handlePutWorkflow)
			r.Get("/", s.handleGetWorkflow)
			r.Delete("/", s.handleDeleteWorkflow)
			r.Get("/dax", s.handleWorkflowDAX)
		})
	})

	return r
}

// handleHealth reports service liveness and build information.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the JSON shape of error responses.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps a coded error to an HTTP status and writes the JSON body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidGraph, errors.ErrCodeInvalidManifest,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidName, errors.ErrCodeInvalidPath,
		errors.ErrCodePrecondition:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound, errors.ErrCodeWorkflowNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeUnsupported:
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		s.logger.Errorf("internal error: %v", err)
	}
	writeJSON(w, status, errorBody{Code: string(code), Message: errors.UserMessage(err)})
}
