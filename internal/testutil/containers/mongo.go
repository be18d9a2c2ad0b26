//go:build integration

package containers

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	tcmongodb "github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/yigit/records/internal/config"
	"github.com/yigit/records/internal/db"
)

// MongoContainer wraps a testcontainers MongoDB instance.
type MongoContainer struct {
	Container *tcmongodb.MongoDBContainer
	URI       string
	DB        *db.MongoDB
}

// NewMongoContainer starts MongoDB and connects the document gateway to it.
func NewMongoContainer(t *testing.T) *MongoContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcmongodb.Run(ctx, "mongo:7")
	if err != nil {
		t.Fatalf("failed to start mongodb container: %v", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get mongodb connection string: %v", err)
	}

	cfg := &config.Config{}
	cfg.Mongo.URL = uri
	cfg.Mongo.Database = "records_test"
	cfg.Mongo.ConnectTimeout = "20s"

	mongo, err := db.NewMongoDB(ctx, cfg, nil)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to connect to mongodb: %v", err)
	}

	mc := &MongoContainer{Container: container, URI: uri, DB: mongo}
	testcontainers.CleanupContainer(t, container)
	t.Cleanup(func() { _ = mongo.Close(context.Background()) })
	return mc
}

// Drop removes the test database. Use between tests to ensure isolation.
func (m *MongoContainer) Drop(ctx context.Context) error {
	return m.DB.DB.Drop(ctx)
}
