// Package server provides the HTTP handlers and routing for the MCP server.
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/metrics"
	"github.com/effective-security/xlog"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"doordash-mcp/internal/dispatch"
	"doordash-mcp/internal/mcpserver"
)

var logger = xlog.NewPackageLogger("doordash-mcp/internal", "server")

// SessionHeader carries the session id the streamable transport issues on
// initialize.
const SessionHeader = "Mcp-Session-Id"

const maxBodySize = 4 << 20

// Config contains HTTP server configuration values.
type Config struct {
	Token string
	// Metrics, when set, is served on GET /metrics.
	Metrics *metrics.InmemSink
}

// Server contains the configured router, MCP handler, and config for the MCP server.
type Server struct {
	cfg     Config
	router  *chi.Mux
	handler *mcpserver.Handler
}

// New constructs a Server with middleware and routes configured.
func New(cfg Config, h *mcpserver.Handler) *Server {
	s := &Server{
		cfg:     cfg,
		router:  chi.NewRouter(),
		handler: h,
	}
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Get("/health", s.handleHealth)

	s.router.Group(func(r chi.Router) {
		r.Use(s.auth)
		r.Get("/metrics", s.handleMetrics)
	})

	s.router.Route("/mcp", func(r chi.Router) {
		r.Use(s.auth)
		r.Handle("/", h.HTTPHandler())
		r.Get("/tools", s.handleListTools)
		r.Post("/call", s.handleCall)
	})

	return s
}

// Router exposes the root HTTP handler for the server.
func (s *Server) Router() http.Handler { return s.router }

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.Token == "" {
			next.ServeHTTP(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+s.cfg.Token {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListTools(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, &mcp.ListToolsResult{Tools: mcpserver.ListTools()})
}

func (s *Server) handleCall(w http.ResponseWriter, r *http.Request) {
	var req CallRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid json"})
		return
	}

	res, err := s.handler.CallTool(r.Context(), req.Name, req.Args)
	if err != nil {
		status := statusFor(err)
		logger.ContextKV(r.Context(), xlog.DEBUG,
			"tool", req.Name,
			"status", status,
			"err", err.Error(),
		)
		writeJSON(w, status, errorBody{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	if s.cfg.Metrics == nil {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "metrics disabled"})
		return
	}
	summary, err := s.cfg.Metrics.DisplayMetrics()
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, dispatch.ErrClientUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, dispatch.ErrUnknownTool):
		return http.StatusNotFound
	case errors.Is(err, dispatch.ErrInvalidArguments):
		return http.StatusBadRequest
	case errors.Is(err, dispatch.ErrBackend):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

