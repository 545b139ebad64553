package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"github.com/katalvlaran/floydcycle/floyd"
	"github.com/katalvlaran/floydcycle/internal/cyclecache"
)

// MaxBodyBytes bounds request bodies.
const MaxBodyBytes = 8 << 20

// Handlers serves detection requests through a shared result cache.
type Handlers struct {
	cache *cyclecache.Cache
}

func NewHandlers(cache *cyclecache.Cache) *Handlers {
	return &Handlers{cache: cache}
}

// graphRequest is the body of every POST endpoint. Graph is either an
// indexed array of nodes or a label-keyed adjacency object.
type graphRequest struct {
	Graph   json.RawMessage `json:"graph"`
	Options floyd.Options   `json:"options"`
	Start   *int            `json:"start,omitempty"`
}

type detectResponse struct {
	Cycles  []floyd.Cycle   `json:"cycles"`
	Labeled []floyd.Labeled `json:"labeled,omitempty"`
}

type floydResponse struct {
	Found      bool         `json:"found"`
	Reachable  bool         `json:"reachable"`
	Cycle      *floyd.Cycle `json:"cycle,omitempty"`
	FirstLabel string       `json:"firstLabel,omitempty"`
}

type normalizeResponse struct {
	Graph  floyd.Graph `json:"graph"`
	Labels []string    `json:"labels,omitempty"`
}

// healthz reports that the server is up.
func (h *Handlers) healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (h *Handlers) stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cache.Stats())
}

func (h *Handlers) detectCycles(w http.ResponseWriter, r *http.Request) {
	req, g, labels, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	cycles, err := h.cache.Detect(r.Context(), g, req.Options)
	if err != nil {
		logctx.Error(r.Context(), "detecting cycles", zap.Error(err))
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	if cycles == nil {
		cycles = []floyd.Cycle{}
	}

	resp := detectResponse{Cycles: cycles}
	if labels != nil {
		resp.Labeled = floyd.LabelCycles(cycles, labels)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) findCycle(w http.ResponseWriter, r *http.Request) {
	req, g, labels, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	if req.Start == nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("start required"))
		return
	}
	if err := floyd.ValidateStart(g, *req.Start); err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}

	c, found, err := h.cache.Find(r.Context(), g, *req.Start, req.Options)
	if err != nil {
		logctx.Error(r.Context(), "finding cycle", zap.Error(err))
		writeErr(w, http.StatusInternalServerError, err)
		return
	}

	resp := floydResponse{
		Found:     found,
		Reachable: floyd.ReachesCycle(g, *req.Start, floyd.WithOptions(req.Options)),
	}
	if found {
		resp.Cycle = &c
		if c.FirstIndex < len(labels) {
			resp.FirstLabel = labels[c.FirstIndex]
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) normalize(w http.ResponseWriter, r *http.Request) {
	req, g, labels, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	out := floyd.NormalizePath(g, floyd.WithOptions(req.Options))
	writeJSON(w, http.StatusOK, normalizeResponse{Graph: out, Labels: labels})
}

// decodeRequest parses and validates the body. On failure it has already
// written a 400 response and ok is false.
func decodeRequest(w http.ResponseWriter, r *http.Request) (req graphRequest, g floyd.Graph, labels []string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return req, nil, nil, false
	}

	g, labels, err := floyd.DecodeGraph(req.Graph)
	if err != nil {
		if errors.Is(err, floyd.ErrEmptyGraph) {
			err = fmt.Errorf("graph required: %w", err)
		}
		writeErr(w, http.StatusBadRequest, err)
		return req, nil, nil, false
	}
	if err := floyd.Validate(g, floyd.WithOptions(req.Options)); err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return req, nil, nil, false
	}

	return req, g, labels, true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
