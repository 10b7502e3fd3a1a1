package server

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/pegflow/daxport/pkg/cache"
	"github.com/pegflow/daxport/pkg/errors"
	pkgio "github.com/pegflow/daxport/pkg/io"
	"github.com/pegflow/daxport/pkg/observability"
	"github.com/pegflow/daxport/pkg/render/dax"
	"github.com/pegflow/daxport/pkg/render/dot"
	"github.com/pegflow/daxport/pkg/workflow"
)

// maxBodySize caps the request body for render and store endpoints.
const maxBodySize = 8 << 20 // 8 MiB

// contentTypes maps render formats to their response content type.
var contentTypes = map[string]string{
	"xml": "application/xml",
	"dot": "text/vnd.graphviz",
}

// handleRender renders the workflow document in the request body.
//
// Query parameters:
//   - format: "xml" (default) or "dot"
//   - encoding: encoding name for the XML declaration
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xml"
	}
	if _, ok := contentTypes[format]; !ok {
		s.writeError(w, errors.New(errors.ErrCodeInvalidFormat, "unknown render format %q", format))
		return
	}
	encoding := r.URL.Query().Get("encoding")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeIO, err, "read request body"))
		return
	}

	// Identical body and parameters always produce the same document, so
	// the content hash is a safe cache key. The server's cache is scoped
	// to a render namespace, so the key carries only the parameters.
	key := cache.Key(format, encoding, cache.Hash(body))
	if data, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
		observability.Cache().OnCacheHit(r.Context(), "render")
		w.Header().Set("Content-Type", contentTypes[format])
		_, _ = w.Write(data)
		return
	}
	observability.Cache().OnCacheMiss(r.Context(), "render")

	g, err := decodeGraph(body)
	if err != nil {
		s.writeError(w, err)
		return
	}

	data, err := s.render(r, g, format, encoding)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.cache.Set(r.Context(), key, data, s.cacheTTL); err != nil {
		s.logger.Warnf("cache render result: %v", err)
	} else {
		observability.Cache().OnCacheSet(r.Context(), "render", len(data))
	}

	w.Header().Set("Content-Type", contentTypes[format])
	_, _ = w.Write(data)
}

// decodeGraph parses a JSON workflow document and builds a validated graph.
func decodeGraph(body []byte) (*workflow.Graph, error) {
	g, err := pkgio.ReadJSON(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "decode workflow document")
	}
	if err := g.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "validate workflow document")
	}
	return g, nil
}

// render produces the requested document format for g.
func (s *Server) render(r *http.Request, g *workflow.Graph, format, encoding string) (data []byte, err error) {
	start := time.Now()
	observability.Render().OnRenderStart(r.Context(), format, g.VertexCount())
	defer func() {
		observability.Render().OnRenderComplete(r.Context(), format, time.Since(start), err)
	}()

	switch format {
	case "xml":
		return dax.Marshal(g, dax.Options{Encoding: encoding})
	case "dot":
		return []byte(dot.ToDOT(g, dot.Options{})), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown render format %q", format)
	}
}
