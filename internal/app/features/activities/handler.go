// internal/app/features/activities/handler.go
package activities

import (
	"context"
	"time"

	uierrors "github.com/dalemusser/volunteerhub/internal/app/features/errors"
	eventstore "github.com/dalemusser/volunteerhub/internal/app/store/events"
	opportunitystore "github.com/dalemusser/volunteerhub/internal/app/store/opportunities"
	programstore "github.com/dalemusser/volunteerhub/internal/app/store/programs"
	"github.com/dalemusser/volunteerhub/internal/app/system/activityfeed"
	"github.com/dalemusser/volunteerhub/internal/app/system/metrics"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the public activity feed.
type Handler struct {
	DB       *mongo.Database
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
	PageSize int

	// Now is the clock used to derive statuses. Tests replace it.
	Now func() time.Time
}

func NewHandler(db *mongo.Database, pageSize int, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		ErrLog:   errLog,
		Log:      logger,
		PageSize: pageSize,
		Now:      time.Now,
	}
}

// loadFeed reads every source collection and normalizes the records into
// one feed. Malformed records are dropped and counted.
func (h *Handler) loadFeed(ctx context.Context) ([]activityfeed.Activity, error) {
	events, err := eventstore.New(h.DB).List(ctx)
	if err != nil {
		return nil, err
	}
	opps, err := opportunitystore.New(h.DB).List(ctx)
	if err != nil {
		return nil, err
	}
	progs, err := programstore.New(h.DB).List(ctx)
	if err != nil {
		return nil, err
	}

	feed, dropped := activityfeed.Build(h.Now(), activityfeed.Sources{
		Events:        events,
		Opportunities: opps,
		Programs:      progs,
	}, h.Log)
	for _, d := range dropped {
		metrics.RecordDropped(string(d.Kind))
	}
	metrics.RecordFeedBuild(len(feed))
	return feed, nil
}
