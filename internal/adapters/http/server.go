// Package http exposes the symbol engine as a small JSON rendering
// service.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/notatehq/notate/pkg/symbol"
)

// RenderCache is the optional read-through cache in front of the
// engine. The redis adapter implements it.
type RenderCache interface {
	Get(ctx context.Context, f symbol.Format, expr string) (string, bool, error)
	Set(ctx context.Context, f symbol.Format, expr, code string) error
}

// Server handles rendering requests against one engine. The engine is
// read-only after construction, so one Server serves all requests
// concurrently.
type Server struct {
	engine  *symbol.Engine
	cache   RenderCache
	logger  *slog.Logger
	metrics *metrics
}

type metrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
	registry *prometheus.Registry
}

type Option func(*Server)

// WithCache installs a render cache.
func WithCache(cache RenderCache) Option {
	return func(s *Server) {
		s.cache = cache
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a rendering server around an engine.
func NewServer(engine *symbol.Engine, opts ...Option) *Server {
	s := &Server{
		engine:  engine,
		logger:  slog.Default(),
		metrics: newMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newMetrics() *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notate_render_requests_total",
				Help: "Total number of render requests",
			},
			[]string{"status"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "notate_render_duration_seconds",
				Help: "Duration of render requests",
			},
		),
		registry: prometheus.NewRegistry(),
	}
	m.registry.MustRegister(m.requests, m.duration)
	return m
}

// Handler builds the chi router for the service.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Post("/render", s.handleRender)
	r.Get("/formats", s.handleFormats)
	r.Get("/tables/{format}", s.handleTables)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics",
		promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	return r
}

type renderRequest struct {
	Expr   string `json:"expr"`
	Strict bool   `json:"strict,omitempty"`
}

type renderResponse struct {
	Expr    string `json:"expr"`
	Plain   string `json:"plain"`
	Unicode string `json:"unicode"`
	HTML    string `json:"html"`
	LaTeX   string `json:"latex"`
}

type parseErrorResponse struct {
	Error  string `json:"error"`
	Source string `json:"source"`
	Offset int    `json:"offset"`
}

// handleRender renders one expression in all four formats. Malformed
// notation is the client's problem: it maps to 422 with the parser's
// message, source and byte offset, and is not logged as a server error.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.count("bad_request")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := s.render(r.Context(), req)
	if err != nil {
		var perr *symbol.ParseError
		if errors.As(err, &perr) {
			s.count("unprocessable")
			writeJSON(w, http.StatusUnprocessableEntity, parseErrorResponse{
				Error:  perr.Msg,
				Source: perr.Source,
				Offset: perr.Offset,
			})
			return
		}
		s.count("error")
		s.logger.Error("render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	s.metrics.duration.Observe(time.Since(start).Seconds())
	s.count("ok")
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) render(ctx context.Context, req renderRequest) (*renderResponse, error) {
	if req.Strict || s.cache == nil {
		return s.renderDirect(req)
	}

	resp := &renderResponse{Expr: req.Expr}
	out := map[symbol.Format]*string{
		symbol.Plain:   &resp.Plain,
		symbol.Unicode: &resp.Unicode,
		symbol.HTML:    &resp.HTML,
		symbol.LaTeX:   &resp.LaTeX,
	}
	for _, f := range symbol.AllFormats() {
		code, ok, err := s.cache.Get(ctx, f, req.Expr)
		if err != nil {
			s.logger.Warn("cache get failed", "error", err)
		}
		if ok {
			*out[f] = code
			continue
		}
		code, err = s.engine.Parse(f, req.Expr)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, f, req.Expr, code); err != nil {
			s.logger.Warn("cache set failed", "error", err)
		}
		*out[f] = code
	}
	return resp, nil
}

func (s *Server) renderDirect(req renderRequest) (*renderResponse, error) {
	var (
		rendering *symbol.Rendering
		err       error
	)
	if req.Strict {
		rendering, err = s.engine.RenderStrict(req.Expr)
	} else {
		rendering, err = s.engine.Render(req.Expr)
	}
	if err != nil {
		return nil, err
	}
	return &renderResponse{
		Expr:    req.Expr,
		Plain:   rendering.Plain(),
		Unicode: rendering.Unicode(),
		HTML:    rendering.HTML(),
		LaTeX:   rendering.LaTeX(),
	}, nil
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, 4)
	for _, f := range symbol.AllFormats() {
		names = append(names, f.String())
	}
	writeJSON(w, http.StatusOK, names)
}

type tableInfo struct {
	ID   string `json:"id"`
	Desc string `json:"desc"`
}

func (s *Server) handleTables(w http.ResponseWriter, r *http.Request) {
	f, err := symbol.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	tables := s.engine.Tables()
	infos := make([]tableInfo, 0)
	for _, tid := range tables.TableIDs(f) {
		desc, err := tables.Description(f, tid)
		if err != nil {
			continue
		}
		infos = append(infos, tableInfo{ID: tid, Desc: desc})
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) count(status string) {
	s.metrics.requests.WithLabelValues(status).Inc()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("encode response", "error", err)
	}
}
