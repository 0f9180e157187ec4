// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/volunteerhub/internal/app/system/gazetteer"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// shared holds the resources Startup loads for BuildHandler.
var shared struct {
	mu        sync.Mutex
	gazetteer *gazetteer.Gazetteer
	location  *time.Location
}

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It
// applies the timeout overrides and loads the province gazetteer and the
// dashboard time zone.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Ping:   appCfg.TimeoutPing,
		Short:  appCfg.TimeoutShort,
		Medium: appCfg.TimeoutMedium,
		Long:   appCfg.TimeoutLong,
	})
	cur := timeouts.Current()
	logger.Info("timeouts configured",
		zap.Duration("ping", cur.Ping),
		zap.Duration("short", cur.Short),
		zap.Duration("medium", cur.Medium),
		zap.Duration("long", cur.Long),
	)

	gz, err := loadGazetteer(appCfg.GazetteerPath)
	if err != nil {
		logger.Error("gazetteer load failed", zap.String("path", appCfg.GazetteerPath), zap.Error(err))
		return err
	}
	loc, err := time.LoadLocation(appCfg.TimeZone)
	if err != nil {
		return err
	}
	logger.Info("gazetteer loaded",
		zap.Int("provinces", gz.Len()),
		zap.String("time_zone", loc.String()),
	)

	shared.mu.Lock()
	shared.gazetteer, shared.location = gz, loc
	shared.mu.Unlock()
	return nil
}

func loadGazetteer(path string) (*gazetteer.Gazetteer, error) {
	if path == "" {
		return gazetteer.Default(), nil
	}
	return gazetteer.LoadFile(path)
}

// sharedResources returns what Startup loaded, loading it on demand when
// BuildHandler runs without Startup (as in tests).
func sharedResources(appCfg AppConfig) (*gazetteer.Gazetteer, *time.Location, error) {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	if shared.gazetteer != nil && shared.location != nil {
		return shared.gazetteer, shared.location, nil
	}
	gz, err := loadGazetteer(appCfg.GazetteerPath)
	if err != nil {
		return nil, nil, err
	}
	loc, err := time.LoadLocation(appCfg.TimeZone)
	if err != nil {
		return nil, nil, err
	}
	return gz, loc, nil
}
