// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup from EnsureSchema. Each ensure* function is
idempotent. Problems are aggregated so every failing collection shows up in
one error and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	sets := []struct {
		name string
		fn   func(context.Context, *mongo.Database) error
	}{
		{"events", ensureEvents},
		{"opportunities", ensureOpportunities},
		{"programs", ensurePrograms},
		{"users", ensureUsers},
		{"signups", ensureSignups},
	}

	var problems []string
	for _, s := range sets {
		if err := s.fn(ctx, db); err != nil {
			problems = append(problems, s.name+": "+err.Error())
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Reconcile a desired index set against what the collection already has      */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func boolVal(b *bool) bool { return b != nil && *b }

// Best-effort duplicate-detector (works cross-vendors)
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "E11000") || strings.Contains(strings.ToLower(s), "duplicate key")
}

func listExisting(ctx context.Context, coll *mongo.Collection) map[string]existingIndex {
	out := map[string]existingIndex{}
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return out
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			zap.L().Warn("failed to decode existing index",
				zap.String("collection", coll.Name()),
				zap.Error(err))
			continue
		}
		out[keySig(idx.Key)] = idx
	}
	return out
}

// desired unpacks the name and uniqueness requested by an IndexModel.
func desired(m mongo.IndexModel) (name string, unique bool) {
	if m.Options != nil {
		if m.Options.Name != nil {
			name = *m.Options.Name
		}
		unique = boolVal(m.Options.Unique)
	}
	return name, unique
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	var errs []string
	existing := listExisting(ctx, coll)

	for _, m := range models {
		name, unique := desired(m)
		sig := keySig(m.Keys.(bson.D))
		start := time.Now()
		log := zap.L().With(
			zap.String("collection", coll.Name()),
			zap.String("name", name),
			zap.String("keys", sig),
			zap.Bool("unique", unique))

		ex, found := existing[sig]
		switch {
		case found && boolVal(ex.Unique) == unique && (name == "" || ex.Name == name):
			log.Info("reusing existing index", zap.Duration("took", time.Since(start)))
			continue

		case found:
			// Same keys under another name or with other options: drop and recreate.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				log.Warn("drop existing index failed", zap.String("existing", ex.Name), zap.Error(err))
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), name, err))
				continue
			}
		}

		created, err := coll.Indexes().CreateOne(ctx, m)
		if err != nil {
			log.Warn("index ensure failed", zap.Duration("took", time.Since(start)), zap.Error(err))
			if isDuplicateKeyErr(err) && unique {
				errs = append(errs, fmt.Sprintf("%s(%s): cannot create unique index (duplicates present)", coll.Name(), name))
			} else {
				errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), name, err))
			}
			continue
		}
		log.Info("index ensured",
			zap.String("created_name", created),
			zap.Bool("replaced", found),
			zap.Duration("took", time.Since(start)))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Collection-specific index sets                                              */
/* -------------------------------------------------------------------------- */

// The feed reads every event, opportunity, and program on each request, so
// content indexes only need to serve the manage screens and date ordering.

func ensureEvents(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("events"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "start_date", Value: -1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_events_start_desc__id"),
		},
		{
			Keys:    bson.D{{Key: "city", Value: 1}},
			Options: options.Index().SetName("idx_events_city"),
		},
	})
}

func ensureOpportunities(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("opportunities"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "registration_start", Value: -1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_opps_regstart_desc__id"),
		},
		{
			Keys:    bson.D{{Key: "department", Value: 1}},
			Options: options.Index().SetName("idx_opps_department"),
		},
	})
}

func ensurePrograms(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("programs"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "start_date", Value: -1}},
			Options: options.Index().SetName("idx_programs_status_start"),
		},
	})
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("users"), []mongo.IndexModel{
		// Email must be unique across all users.
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_users_email"),
		},
		// Volunteer map reads members with their province.
		{
			Keys:    bson.D{{Key: "role", Value: 1}, {Key: "province", Value: 1}},
			Options: options.Index().SetName("idx_users_role_province"),
		},
		{
			Keys:    bson.D{{Key: "role", Value: 1}, {Key: "full_name_ci", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_users_role_fullnameci__id"),
		},
	})
}

func ensureSignups(ctx context.Context, db *mongo.Database) error {
	return ensureIndexSet(ctx, db.Collection("signups"), []mongo.IndexModel{
		// The signup chart scans a trailing window by created_at.
		{
			Keys:    bson.D{{Key: "created_at", Value: 1}},
			Options: options.Index().SetName("idx_signups_created"),
		},
		// One signup per user per activity.
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "activity_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_signups_user_activity"),
		},
		{
			Keys:    bson.D{{Key: "confirmation_code", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_signups_code"),
		},
	})
}
