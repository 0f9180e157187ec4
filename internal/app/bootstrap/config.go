// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/volunteerhub/internal/app/system/activityfeed"
	"github.com/dalemusser/volunteerhub/internal/app/system/bilingual"
	"github.com/dalemusser/volunteerhub/internal/app/system/timeseries"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for VolunteerHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: VOLUNTEERHUB_MONGO_URI, VOLUNTEERHUB_TIME_ZONE, etc.
//   - Command-line flags: --mongo_uri, --time_zone, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "volunteerhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},
	{Name: "mongo_connect_timeout", Default: "10s", Desc: "MongoDB connect and initial ping timeout"},
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "volunteerhub-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	{Name: "gazetteer_path", Default: "", Desc: "Province gazetteer JSON file (blank uses the built-in list)"},
	{Name: "signup_window_days", Default: timeseries.DefaultWindowDays, Desc: "Days covered by the signup chart"},
	{Name: "feed_page_size", Default: activityfeed.DefaultPageSize, Desc: "Default number of activities per page"},
	{Name: "time_zone", Default: "Asia/Ulaanbaatar", Desc: "Time zone used for calendar days on the dashboard"},
	{Name: "default_locale", Default: string(bilingual.Default), Desc: "Dashboard label language: mn or en"},

	{Name: "timeout_ping", Default: "2s", Desc: "Health check ping timeout"},
	{Name: "timeout_short", Default: "5s", Desc: "Single-document operation timeout"},
	{Name: "timeout_medium", Default: "10s", Desc: "Feed and dashboard query timeout"},
	{Name: "timeout_long", Default: "30s", Desc: "Delete-with-cleanup timeout"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges .env files, config files,
// VOLUNTEERHUB_* environment variables, and command-line flags with
// precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "VOLUNTEERHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:            appValues.String("mongo_uri"),
		MongoDatabase:       appValues.String("mongo_database"),
		MongoMaxPoolSize:    uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize:    uint64(appValues.Int("mongo_min_pool_size")),
		MongoConnectTimeout: appValues.Duration("mongo_connect_timeout", 10*time.Second),
		SessionKey:          appValues.String("session_key"),
		SessionName:         appValues.String("session_name"),
		SessionDomain:       appValues.String("session_domain"),

		GazetteerPath:    strings.TrimSpace(appValues.String("gazetteer_path")),
		SignupWindowDays: appValues.Int("signup_window_days"),
		FeedPageSize:     appValues.Int("feed_page_size"),
		TimeZone:         appValues.String("time_zone"),
		DefaultLocale:    appValues.String("default_locale"),

		TimeoutPing:   appValues.Duration("timeout_ping", 2*time.Second),
		TimeoutShort:  appValues.Duration("timeout_short", 5*time.Second),
		TimeoutMedium: appValues.Duration("timeout_medium", 10*time.Second),
		TimeoutLong:   appValues.Duration("timeout_long", 30*time.Second),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// It rejects a malformed MongoDB URI, an unknown time zone, an unsupported
// locale, and out-of-range window and page sizes, so a bad deployment fails
// before it connects to anything.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if strings.TrimSpace(appCfg.MongoDatabase) == "" {
		return fmt.Errorf("mongo_database must not be empty")
	}
	if _, err := time.LoadLocation(appCfg.TimeZone); err != nil {
		return fmt.Errorf("invalid time_zone %q: %w", appCfg.TimeZone, err)
	}
	if loc := bilingual.Locale(strings.ToLower(strings.TrimSpace(appCfg.DefaultLocale))); !bilingual.Valid(loc) {
		return fmt.Errorf("default_locale must be %q or %q, got %q", bilingual.MN, bilingual.EN, appCfg.DefaultLocale)
	}
	if appCfg.SignupWindowDays < 1 || appCfg.SignupWindowDays > timeseries.MaxWindowDays {
		return fmt.Errorf("signup_window_days must be between 1 and %d, got %d", timeseries.MaxWindowDays, appCfg.SignupWindowDays)
	}
	if appCfg.FeedPageSize < 1 || appCfg.FeedPageSize > activityfeed.MaxPageSize {
		return fmt.Errorf("feed_page_size must be between 1 and %d, got %d", activityfeed.MaxPageSize, appCfg.FeedPageSize)
	}
	return nil
}
