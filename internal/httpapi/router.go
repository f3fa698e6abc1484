// Package httpapi exposes the translation relay over HTTP: a small JSON API
// for synchronous translation and stats, and the websocket endpoint that
// carries real-time sessions.
package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/vmarik/lingo/internal/lang"
	"github.com/vmarik/lingo/internal/stt"
	"github.com/vmarik/lingo/internal/translate"
)

// RouterConfig carries session defaults applied to new connections.
type RouterConfig struct {
	DefaultSourceLang lang.Code
	DefaultTargetLang lang.Code
	DefaultSampleRate int
}

// Router wires handlers to the engine and owns the live session registry.
type Router struct {
	cfg         RouterConfig
	logger      *log.Logger
	engine      *translate.Engine
	transcriber stt.Transcriber
	sessions    *sessionRegistry
	mux         *http.ServeMux
	started     time.Time
}

// NewRouter builds the HTTP surface around engine and transcriber.
func NewRouter(cfg RouterConfig, logger *log.Logger, engine *translate.Engine, transcriber stt.Transcriber) *Router {
	if cfg.DefaultSourceLang == "" {
		cfg.DefaultSourceLang = "en"
	}
	if cfg.DefaultTargetLang == "" {
		cfg.DefaultTargetLang = "ar"
	}
	if cfg.DefaultSampleRate <= 0 {
		cfg.DefaultSampleRate = 16000
	}

	r := &Router{
		cfg:         cfg,
		logger:      logger,
		engine:      engine,
		transcriber: transcriber,
		sessions:    newSessionRegistry(),
		mux:         http.NewServeMux(),
		started:     time.Now().UTC(),
	}
	r.routes()
	return r
}

func (r *Router) routes() {
	r.mux.HandleFunc("GET /healthz", r.handleHealthz)
	r.mux.HandleFunc("GET /api/health", r.handleHealth)
	r.mux.HandleFunc("GET /api/languages", r.handleLanguages)
	r.mux.HandleFunc("GET /api/stats", r.handleStats)
	r.mux.HandleFunc("POST /api/cache/clear", r.handleCacheClear)
	r.mux.HandleFunc("POST /api/translate", r.handleTranslate)
	r.mux.HandleFunc("GET /ws", r.handleSessionWS)
}

// Handler returns the router wrapped in recovery and CORS middleware.
func (r *Router) Handler() http.Handler {
	return withSentryRecovery(withCORS(r.mux))
}

// Close terminates all live websocket sessions. Used during shutdown, since
// http.Server.Shutdown does not close hijacked connections.
func (r *Router) Close() {
	r.sessions.closeAll()
}

func (r *Router) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func withSentryRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				hub := sentry.CurrentHub().Clone()
				hub.Scope().SetRequest(req)
				hub.RecoverWithContext(req.Context(), err)
				hub.Flush(2 * time.Second)
				http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, req)
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, req)
	})
}

// captureError sends an error to Sentry with request context.
func captureError(req *http.Request, err error, msg string) {
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetRequest(req)
		scope.SetExtra("message", msg)
		sentry.CaptureException(err)
	})
}

func nowRFC3339() string { return time.Now().UTC().Format(time.RFC3339) }
