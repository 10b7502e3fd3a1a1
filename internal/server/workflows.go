package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pegflow/daxport/pkg/errors"
	pkgio "github.com/pegflow/daxport/pkg/io"
	"github.com/pegflow/daxport/pkg/render/dax"
)

// handlePutWorkflow stores the workflow document in the request body under
// the name in the URL. The document is parsed and validated before storing,
// so only well-formed acyclic workflows are accepted.
func (s *Server) handlePutWorkflow(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := errors.ValidateWorkflowName(name); err != nil {
		s.writeError(w, err)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeIO, err, "read request body"))
		return
	}

	var doc pkgio.Graph
	if err := json.Unmarshal(body, &doc); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode workflow document"))
		return
	}
	g, err := pkgio.ToWorkflow(doc)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := g.Validate(); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidGraph, err, "validate workflow %q", name))
		return
	}

	doc.Name = name
	if err := s.store.Put(r.Context(), name, doc); err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"name":         name,
		"jobs":         g.VertexCount(),
		"dependencies": g.EdgeCount(),
	})
}

// handleGetWorkflow returns the stored workflow document as JSON.
func (s *Server) handleGetWorkflow(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// handleDeleteWorkflow removes a stored workflow document.
func (s *Server) handleDeleteWorkflow(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListWorkflows returns the names of all stored workflows.
func (s *Server) handleListWorkflows(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"workflows": names})
}

// handleWorkflowDAX renders a stored workflow as the DAG XML document.
//
// Query parameters:
//   - encoding: encoding name for the XML declaration
func (s *Server) handleWorkflowDAX(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	doc, err := s.store.Get(r.Context(), name)
	if err != nil {
		s.writeError(w, err)
		return
	}

	g, err := pkgio.ToWorkflow(doc)
	if err != nil {
		s.writeError(w, err)
		return
	}

	data, err := dax.Marshal(g, dax.Options{Encoding: r.URL.Query().Get("encoding")})
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	_, _ = w.Write(data)
}
