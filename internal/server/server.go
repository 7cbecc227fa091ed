// Package server exposes the formatter core over a small JSON HTTP API, for
// editors and tools that want a long-lived formatting daemon instead of a
// process-per-file CLI invocation.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/awsqed/config-formatter/internal/config"
	"github.com/awsqed/config-formatter/internal/plugin"
)

// Config controls how the server rate-limits requests. The listen address
// is the caller's concern (see cmd/serve.go), not the router's.
type Config struct {
	RequestsPerSecond int
}

// formatRequest is the JSON body accepted by POST /v1/format.
type formatRequest struct {
	Path     string         `json:"path" validate:"required"`
	Contents string         `json:"contents" validate:"required"`
	Options  map[string]any `json:"options"`
}

// formatResponse is returned for a successful /v1/format call.
type formatResponse struct {
	Changed     bool         `json:"changed"`
	Contents    string       `json:"contents,omitempty"`
	Diagnostics []diagnostic `json:"diagnostics,omitempty"`
}

type diagnostic struct {
	Property string `json:"property"`
	Message  string `json:"message"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId"`
}

var validate = validator.New()

// New builds the chi router backing the formatting daemon: request ID,
// logging and optional rate-limit middleware wrap the GET /v1/info and
// POST /v1/format routes.
func New(cfg Config, log *logrus.Logger) http.Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(log))

	if cfg.RequestsPerSecond > 0 {
		r.Use(httprate.Limit(
			cfg.RequestsPerSecond,
			1*time.Second,
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				writeError(w, r, http.StatusTooManyRequests, "rate limit exceeded")
			}),
		))
	}

	r.Get("/v1/info", handleInfo)
	r.Post("/v1/format", handleFormat)

	return r
}

type requestIDKey struct{}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		ctx := contextWithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func loggingMiddleware(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.WithFields(logrus.Fields{
				"request_id": requestIDFromContext(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"duration":   time.Since(start).String(),
			}).Info("handled request")
		})
	}
}

func handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, plugin.Describe())
}

func handleFormat(w http.ResponseWriter, r *http.Request) {
	var req formatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "malformed JSON body")
		return
	}

	if err := validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	resolved, diagnostics := config.Resolve(req.Options)

	out, err := plugin.Format(req.Path, []byte(req.Contents), resolved)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp := formatResponse{Changed: out != nil}
	if out != nil {
		resp.Contents = string(out)
	}
	for _, d := range diagnostics {
		resp.Diagnostics = append(resp.Diagnostics, diagnostic{Property: d.PropertyName, Message: d.Message})
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, errorResponse{
		Error:     message,
		RequestID: requestIDFromContext(r.Context()),
	})
}
