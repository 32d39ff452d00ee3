package server

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tracekit/tracekit/pkg/chart"
	"github.com/tracekit/tracekit/pkg/errors"
	tkio "github.com/tracekit/tracekit/pkg/io"
	"github.com/tracekit/tracekit/pkg/observability"
	"github.com/tracekit/tracekit/pkg/render"
)

// maxBodyBytes bounds request bodies; graph documents are data-heavy but
// a scene request should never approach this.
const maxBodyBytes = 32 << 20

// validateResponse is the body of a validation reply.
type validateResponse struct {
	Valid   bool   `json:"valid"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
}

// handleValidate decodes and validates a graph without rendering it.
// Invalid graphs are a successful validation request: the verdict comes
// back with 200 and Valid false.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	g, _, err := s.readGraph(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	start := time.Now()
	kind := string(g.Kind())
	observability.Render().OnValidateStart(r.Context(), kind)
	invalid := g.Validate()

	resp := validateResponse{Valid: invalid == nil, Kind: kind}
	var verdictErr error
	if invalid != nil {
		resp.Message = invalid.Message
		verdictErr = invalid
	}
	observability.Render().OnValidateComplete(r.Context(), kind, time.Since(start), verdictErr)
	writeJSON(w, http.StatusOK, resp)
}

// handleRender renders a graph into its figure scene. Scenes are cached
// by the digest of the request body; the X-Cache header reports hit or
// miss.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	g, body, err := s.readGraph(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	scene, cached, err := s.renderScene(r, g, body)
	if err != nil {
		writeError(w, err)
		return
	}

	if cached {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(scene)
}

// handleSaveFigure renders a graph and persists the scene, returning the
// assigned figure ID.
func (s *Server) handleSaveFigure(w http.ResponseWriter, r *http.Request) {
	g, body, err := s.readGraph(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	scene, _, err := s.renderScene(r, g, body)
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := s.store.Save(r.Context(), string(g.Kind()), scene)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// handleGetFigure returns a stored figure's scene.
func (s *Server) handleGetFigure(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Scene)
}

// handleListFigures lists stored figures, newest first. The limit query
// parameter caps the listing (default 50).
func (s *Server) handleListFigures(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid limit: %q", raw))
			return
		}
		limit = parsed
	}

	docs, err := s.store.List(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"figures": docs})
}

// handleDeleteFigure removes a stored figure.
func (s *Server) handleDeleteFigure(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// readGraph reads and decodes the request body into a graph, returning
// the raw body for cache keying.
func (s *Server) readGraph(w http.ResponseWriter, r *http.Request) (chart.Graph, []byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	g, err := tkio.ReadGraph(bytes.NewReader(body))
	if err != nil {
		return nil, nil, err
	}
	return g, body, nil
}

// renderScene validates and renders a graph, going through the scene
// cache keyed by the raw request body.
func (s *Server) renderScene(r *http.Request, g chart.Graph, body []byte) (scene []byte, cached bool, err error) {
	ctx := r.Context()
	kind := string(g.Kind())

	if invalid := g.Validate(); invalid != nil {
		return nil, false, errors.New(errors.ErrCodeInvalidInput, "invalid %s graph: %s", kind, invalid.Message)
	}

	key := s.keyer.RenderKey(body)
	if data, hit, cacheErr := s.cache.Get(ctx, key); cacheErr == nil && hit {
		observability.Cache().OnCacheHit(ctx, "render")
		return data, true, nil
	} else if cacheErr != nil {
		s.logger.Warn("render cache read failed", "err", cacheErr)
	}
	observability.Cache().OnCacheMiss(ctx, "render")

	start := time.Now()
	observability.Render().OnBuildStart(ctx, kind)
	fig, err := render.Build(g)
	traces := 0
	if fig != nil {
		traces = len(fig.Traces)
	}
	observability.Render().OnBuildComplete(ctx, kind, traces, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	scene, err = fig.MarshalIndent()
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "encode figure")
	}

	if err := s.cache.Set(ctx, key, scene, s.cacheTTL); err != nil {
		s.logger.Warn("render cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "render", len(scene))
	}
	return scene, false, nil
}
