package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mwiater/mealdb/internal/logging"
	"github.com/mwiater/mealdb/mcp/tools"
)

// NewHTTPHandler exposes discovery and tool calls as JSON over HTTP:
//
//	GET  /healthz
//	GET  /tools
//	POST /tools/call   {"name": "...", "arguments": {...}}
func NewHTTPHandler(d *tools.Dispatcher, info Info) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "name": info.Name, "version": info.Version})
	})
	r.Get("/tools", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"tools": d.ListTools()})
	})
	r.Post("/tools/call", func(w http.ResponseWriter, req *http.Request) {
		var call tools.CallRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, req.Body, 1<<20)).Decode(&call); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
			return
		}
		if call.Arguments == nil {
			call.Arguments = map[string]any{}
		}
		// Tool failures are part of the result envelope, not HTTP errors.
		writeJSON(w, http.StatusOK, d.Call(req.Context(), call))
	})
	return r
}

// NewHTTPServer wraps the handler with the listen address and sane timeouts.
func NewHTTPServer(addr string, d *tools.Dispatcher, info Info) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewHTTPHandler(d, info),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logging.LogEvent("http %s %s status=%d request_id=%s elapsed=%s",
			r.Method, r.URL.Path, ww.Status(), middleware.GetReqID(r.Context()), time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
