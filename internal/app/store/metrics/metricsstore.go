package metricsstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Counts is the set of totals shown on the admin dashboard.
type Counts struct {
	Events        int64 `json:"events"`
	Opportunities int64 `json:"opportunities"`
	Programs      int64 `json:"programs"`
	Members       int64 `json:"members"`
	Admins        int64 `json:"admins"`
	Signups       int64 `json:"signups"`
}

// FetchDashboardCounts returns the high-level counts used by the dashboard.
// Intentionally tolerant: on error it returns 0 for that counter.
func FetchDashboardCounts(ctx context.Context, db *mongo.Database) Counts {
	var out Counts

	count := func(coll string, filter bson.M, dst *int64) {
		if n, err := db.Collection(coll).CountDocuments(ctx, filter); err == nil {
			*dst = n
		}
	}

	count("events", bson.M{}, &out.Events)
	count("opportunities", bson.M{}, &out.Opportunities)
	count("programs", bson.M{}, &out.Programs)
	count("users", bson.M{"role": "member"}, &out.Members)
	count("users", bson.M{"role": "admin"}, &out.Admins)
	count("signups", bson.M{}, &out.Signups)

	return out
}
