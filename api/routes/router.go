package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mavazidev/mavazi-backend/api/middleware"
	"github.com/mavazidev/mavazi-backend/api/responses"
	"github.com/mavazidev/mavazi-backend/internal/transactions"
	"github.com/mavazidev/mavazi-backend/pkg/config"
	"github.com/mavazidev/mavazi-backend/pkg/db"
	pkgerrors "github.com/mavazidev/mavazi-backend/pkg/errors"
	"github.com/mavazidev/mavazi-backend/pkg/logger"
	"github.com/mavazidev/mavazi-backend/pkg/redis"
)

// NewRouter assembles the HTTP surface: health probes, prometheus metrics,
// the back-office ledger endpoint, and the GraphQL endpoint.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	ledger transactions.Service,
	graphHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", healthLive(cfg))
		r.Get("/ready", healthReady(cfg, logg, dbP, redisP))
	})

	r.Handle("/metrics", promhttp.Handler())

	if ledger != nil {
		r.Post("/admin/transactions", recordTransaction(logg, ledger))
	}

	r.Handle("/graphql", graphHandler)

	return r
}

func healthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Mavazi-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func healthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Mavazi-Env", cfg.App.Env)

		ctx := r.Context()
		if dbP != nil {
			if err := dbP.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unavailable"))
				return
			}
		}
		if redisP != nil {
			if err := redisP.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
