package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"go-todo-api/internal/config"
	"go-todo-api/internal/handler"
	"go-todo-api/internal/metrics"
	"go-todo-api/internal/middleware"
)

// HealthCheck reports whether the backing store is reachable; nil means
// the process itself is the only readiness signal.
type HealthCheck func(ctx context.Context) error

func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	recorder metrics.Recorder,
	gatherer prometheus.Gatherer,
	healthCheck HealthCheck,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	todoHandler *handler.TodoHandler,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics(recorder))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if healthCheck != nil {
			if err := healthCheck(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("unavailable"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler(gatherer))

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Post("/auth/token", authHandler.Token)
		api.Post("/users", userHandler.Register)

		api.Group(func(protected chi.Router) {
			protected.Use(authMiddleware.RequireAuth)

			protected.Get("/users/me", userHandler.Me)
			protected.Patch("/users/me", userHandler.Update)
			protected.Delete("/users/me", userHandler.Delete)

			protected.Post("/todos", todoHandler.Create)
			protected.Get("/todos", todoHandler.List)
			protected.Get("/todos/{todo_id}", todoHandler.Get)
			protected.Patch("/todos/{todo_id}", todoHandler.Update)
			protected.Delete("/todos/{todo_id}", todoHandler.Delete)
		})
	})

	return r
}
