package controllers

import (
	"net/http"

	"github.com/glowmart/cosmetics-backend/api/responses"
	"github.com/glowmart/cosmetics-backend/pkg/config"
	"github.com/glowmart/cosmetics-backend/pkg/db"
	pkgerrors "github.com/glowmart/cosmetics-backend/pkg/errors"
	"github.com/glowmart/cosmetics-backend/pkg/logger"
	"github.com/glowmart/cosmetics-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Glowmart-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady checks the database and, when configured, Redis. A dead cache
// does not fail readiness; it is reported as degraded.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, cache redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Glowmart-Env", cfg.App.Env)

		if dbP != nil {
			if err := dbP.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unavailable"))
				return
			}
		}

		status := map[string]string{"status": "ready"}
		if cache != nil {
			if err := cache.Ping(r.Context()); err != nil {
				status["cache"] = "degraded"
			}
		}

		responses.WriteSuccess(w, status)
	}
}
