// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	teacherstore "github.com/dalemusser/schoolhub/internal/app/store/teachers"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// An empty teacher directory means every mutating request will be
// rejected, which is worth a loud warning at boot.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	teachers, err := teacherstore.New(deps.MongoDatabase).List(ctx)
	if err != nil {
		return err
	}
	if len(teachers) == 0 {
		logger.Warn("teacher directory is empty; announcement writes will be unauthorized")
	} else {
		logger.Info("teacher directory loaded", zap.Int("teachers", len(teachers)))
	}
	return nil
}
