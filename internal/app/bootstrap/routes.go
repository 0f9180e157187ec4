// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"

	activitiesfeature "github.com/dalemusser/volunteerhub/internal/app/features/activities"
	dashboardfeature "github.com/dalemusser/volunteerhub/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/volunteerhub/internal/app/features/health"
	managefeature "github.com/dalemusser/volunteerhub/internal/app/features/manage"
	userstore "github.com/dalemusser/volunteerhub/internal/app/store/users"
	"github.com/dalemusser/volunteerhub/internal/app/system/auth"
	"github.com/dalemusser/volunteerhub/internal/app/system/bilingual"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. VolunteerHub applies session middleware
// and mounts the health, metrics, activity feed, dashboard, and manage
// routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Role changes and disabled accounts take effect on the next request.
	sessionMgr.SetUserFetcher(userstore.NewFetcher(deps.MongoDatabase))

	gz, loc, err := sharedResources(appCfg)
	if err != nil {
		logger.Error("dashboard resources unavailable", zap.Error(err))
		return nil, err
	}

	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Handle("/metrics", promhttp.Handler())

	// Public activity feed
	activitiesHandler := activitiesfeature.NewHandler(deps.MongoDatabase, appCfg.FeedPageSize, errLog, logger)
	r.Mount("/activities", activitiesfeature.Routes(activitiesHandler))

	// Admin dashboard
	dashboardHandler := dashboardfeature.NewHandler(deps.MongoDatabase, dashboardfeature.Options{
		Gazetteer:  gz,
		Location:   loc,
		WindowDays: appCfg.SignupWindowDays,
		Locale:     bilingual.Locale(strings.ToLower(strings.TrimSpace(appCfg.DefaultLocale))),
	}, errLog, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	// Record management
	manageHandler := managefeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/manage", managefeature.Routes(manageHandler, sessionMgr))

	return r, nil
}
