package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Dylan-PlymouthUni/trailhead/internal/auth"
	"github.com/Dylan-PlymouthUni/trailhead/internal/metrics"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Pinger checks database connectivity for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps holds all dependencies for the API router.
type RouterDeps struct {
	Trails         TrailStore
	Users          UserStore
	Verifier       CredentialVerifier
	Tokens         *auth.TokenService
	Metrics        *metrics.Metrics
	DB             Pinger
	AllowedOrigins []string
}

// NewRouter builds the chi router with all routes and middleware.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chimw.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(secureHeaders)
	r.Use(corsMiddleware(deps.AllowedOrigins))
	r.Use(slogRequestLogger)
	r.Use(metricsMiddleware(deps.Metrics))

	// Handlers.
	authh := newAuthHandler(deps.Users, deps.Verifier, deps.Tokens, deps.Metrics)
	trails := newTrailsHandler(deps.Trails)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Welcome to the Trail API. See /openapi.json for the API description."))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok", "database": "connected"}
		code := http.StatusOK
		if deps.DB != nil {
			if err := deps.DB.Ping(r.Context()); err != nil {
				status["database"] = "unavailable"
				code = http.StatusServiceUnavailable
			}
		}
		writeJSON(w, code, status)
	})

	r.Get("/openapi.json", OpenAPIHandler)

	if deps.Metrics != nil {
		r.Get("/metrics/summary", deps.Metrics.Handler())
	}

	r.Post("/login", authh.Login)

	r.Route("/trails", func(tr chi.Router) {
		// Read routes: credential optional on the wire, but the role check
		// still runs against the (possibly empty) claim set.
		tr.Group(func(g chi.Router) {
			g.Use(auth.ViewerAuthMiddleware(deps.Tokens))
			g.Get("/", trails.ListTrails)
			g.Get("/{id}", trails.GetTrail)
		})

		// Mutation routes: valid Admin credential required.
		tr.Group(func(g chi.Router) {
			g.Use(auth.AdminAuthMiddleware(deps.Tokens))
			g.Post("/", trails.CreateTrail)
			g.Put("/{id}", trails.UpdateTrail)
			g.Delete("/{id}", trails.DeleteTrail)
		})
	})

	return r
}

// slogRequestLogger is a simple structured logging middleware using slog.
func slogRequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"bytes", ww.BytesWritten(),
			"request_id", RequestIDFromContext(r.Context()),
		)
	})
}

// metricsMiddleware records request counts and latencies per route pattern.
func metricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			pattern := chi.RouteContext(r.Context()).RoutePattern()
			if pattern == "" {
				pattern = "unmatched"
			}
			m.HTTPRequestsTotal.WithLabelValues(r.Method, pattern, strconv.Itoa(ww.Status())).Inc()
			m.HTTPRequestDuration.WithLabelValues(r.Method, pattern).Observe(time.Since(start).Seconds())
		})
	}
}
