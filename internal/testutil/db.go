// Package testutil provides shared helpers for tests that need MongoDB or
// an HTTP request with a signed-in user.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DefaultTestMongoURI is used when VOLUNTEERHUB_TEST_MONGO_URI is unset.
const DefaultTestMongoURI = "mongodb://localhost:27017"

var (
	clientOnce sync.Once
	client     *mongo.Client
	clientErr  error
)

func sharedClient() (*mongo.Client, error) {
	clientOnce.Do(func() {
		uri := os.Getenv("VOLUNTEERHUB_TEST_MONGO_URI")
		if uri == "" {
			uri = DefaultTestMongoURI
		}
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		c, err := mongo.Connect(ctx, options.Client().
			ApplyURI(uri).
			SetServerSelectionTimeout(2*time.Second))
		if err != nil {
			clientErr = err
			return
		}
		if err := c.Ping(ctx, readpref.Primary()); err != nil {
			_ = c.Disconnect(context.Background())
			clientErr = err
			return
		}
		client = c
	})
	return client, clientErr
}

// SetupTestDB returns a fresh, uniquely named database that is dropped when
// the test finishes. The test is skipped when MongoDB is unreachable.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping MongoDB test in -short mode")
	}

	c, err := sharedClient()
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}

	name := fmt.Sprintf("vh_test_%s_%s", sanitize(t.Name()), primitive.NewObjectID().Hex()[16:])
	db := c.Database(name)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
	})
	return db
}

// TestContext returns a context bounded for a single test's database work.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// Mongo database names are limited to 64 bytes and may not contain /\. "$
func sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		}
		return '_'
	}, s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
