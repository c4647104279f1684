// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	announcementsfeature "github.com/dalemusser/schoolhub/internal/app/features/announcements"
	healthfeature "github.com/dalemusser/schoolhub/internal/app/features/health"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app. WAFFLE calls this after configuration, DB connections,
// schema setup, and Startup have completed.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// The announcements resource. Teacher credentials are checked per
	// request inside the handlers, so no auth middleware is mounted.
	announcementsHandler := announcementsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Route("/announcements", announcementsHandler.MountRoutes)

	return r, nil
}
