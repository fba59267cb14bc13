package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forgo/users/api/internal/metrics"
	"github.com/forgo/users/api/internal/middleware"
	"github.com/forgo/users/api/internal/model"
)

// RouterConfig holds what NewRouter wires together
type RouterConfig struct {
	Users   UserService
	Logger  *slog.Logger
	Metrics *metrics.Metrics // nil disables /metrics and HTTP metrics
	CORS    middleware.CORSConfig
	Service string
	Version string
}

// NewRouter builds the full HTTP handler: routes plus the middleware chain
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	users := NewUserHandler(cfg.Users)
	health := NewHealthHandler(cfg.Service, cfg.Version)

	r := chi.NewRouter()
	r.Use(middleware.Tracing, middleware.Metrics(cfg.Metrics))

	r.Get("/", health.Root)
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	r.Route(model.APIBasePath, func(r chi.Router) {
		r.Get("/health", health.Health)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", users.ListUsers)
			r.Post("/", users.CreateUser)
			r.Get("/{id}", users.GetUser)
			r.Put("/{id}", users.UpdateUser)
			r.Delete("/{id}", users.DeleteUser)
			r.Get("/{id}/profile", users.GetUserProfile)
		})
	})

	return middleware.Chain(r,
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Compress,
	)
}
