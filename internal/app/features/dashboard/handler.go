// internal/app/features/dashboard/handler.go
package dashboard

import (
	"time"

	uierrors "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	"github.com/dalemusser/volunteerhub/internal/app/system/bilingual"
	"github.com/dalemusser/volunteerhub/internal/app/system/gazetteer"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the admin dashboard data: headline counts, the daily
// signup series, and the volunteer map.
type Handler struct {
	DB         *mongo.Database
	Gazetteer  *gazetteer.Gazetteer
	Location   *time.Location
	WindowDays int
	Locale     bilingual.Locale
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger

	// Now is the clock for the signup window. Tests replace it.
	Now func() time.Time
}

// Options carries the dashboard settings taken from app config.
type Options struct {
	Gazetteer  *gazetteer.Gazetteer
	Location   *time.Location
	WindowDays int
	Locale     bilingual.Locale
}

func NewHandler(db *mongo.Database, opts Options, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	if opts.Gazetteer == nil {
		opts.Gazetteer = gazetteer.Default()
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if !bilingual.Valid(opts.Locale) {
		opts.Locale = bilingual.Default
	}
	return &Handler{
		DB:         db,
		Gazetteer:  opts.Gazetteer,
		Location:   opts.Location,
		WindowDays: opts.WindowDays,
		Locale:     opts.Locale,
		ErrLog:     errLog,
		Log:        logger,
		Now:        time.Now,
	}
}

// now returns the current time in the dashboard's calendar.
func (h *Handler) now() time.Time {
	return h.Now().In(h.Location)
}
