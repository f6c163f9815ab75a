// Package http exposes the conversation engine over a JSON HTTP API.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/forkpath-dev/forkpath"
	"github.com/forkpath-dev/forkpath/api"
	"github.com/forkpath-dev/forkpath/internal/observability"
	"github.com/forkpath-dev/forkpath/pkg/domain"
)

const apiVersion = "1.0.0"

// Engine defines the interface for the conversation core.
type Engine interface {
	Advance(ctx context.Context, userInput string, transcript domain.Transcript) (*domain.Result, error)
	Inspect() []domain.Question
}

// Server holds the HTTP handlers for the engine.
type Server struct {
	Engine Engine
	Logger *slog.Logger
}

// Option configures the handler.
type Option func(*options)

type options struct {
	metricsPath string
	logger      *slog.Logger
}

// WithMetrics mounts the Prometheus endpoint at the given path.
func WithMetrics(path string) Option {
	return func(o *options) { o.metricsPath = path }
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	server := &Server{Engine: engine, Logger: o.logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(observability.Middleware)

	r.Post("/chat", server.Chat)
	r.Get("/graph", server.GetGraph)
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(api.Spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	if o.metricsPath != "" {
		r.Handle(o.metricsPath, promhttp.Handler())
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Chat handles POST /chat: one conversation turn.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	var body ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, &APIError{
			Type:    ErrorTypeInvalidRequest,
			Message: "invalid request body",
		})
		return
	}

	res, err := s.Engine.Advance(r.Context(), body.UserInput, domain.Transcript(body.ConversationHistory))
	if err != nil {
		s.Logger.Warn("chat turn rejected", "error", err)
		writeEngineError(w, err)
		return
	}

	observability.TurnsTotal.Inc()
	if res.Complete {
		observability.ConversationsCompletedTotal.Inc()
	}

	writeJSON(w, http.StatusOK, chatResponseFromResult(res))
}

// GetGraph handles GET /graph: full tree introspection.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Engine.Inspect())
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "forkpath-http",
		"version":     strings.TrimSpace(forkpath.Version),
		"api_version": apiVersion,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Forkpath API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`
