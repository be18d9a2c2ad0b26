package db

import (
	"context"
	"errors"
	"time"

	"github.com/yigit/records/internal/config"
	"github.com/yigit/records/internal/pkg/apperrors"
	"github.com/yigit/records/internal/pkg/dberrors"
	"github.com/yigit/records/internal/pkg/logger"
	"github.com/yigit/records/internal/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DocumentStore is the collection-scoped surface the document repositories
// depend on. Documents are keyed by a string _id.
type DocumentStore interface {
	FindAll(ctx context.Context, collection string, out interface{}) error
	FindByID(ctx context.Context, collection, id string, out interface{}) error
	InsertOne(ctx context.Context, collection string, doc interface{}) error
	DeleteOne(ctx context.Context, collection, id string) (int64, error)
}

// MongoDB holds the single client shared by the whole process.
type MongoDB struct {
	Client  *mongo.Client
	DB      *mongo.Database
	metrics *metrics.Metrics
}

// NewMongoDB connects to the document store and verifies the connection.
// It fails fast; reconnecting is left to the caller.
func NewMongoDB(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (*MongoDB, error) {
	timeout := cfg.MongoConnectTimeout()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.Mongo.URL).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, apperrors.NewConnectionError("failed to connect to MongoDB", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, apperrors.NewConnectionError("failed to ping MongoDB", err)
	}

	logger.Info().Str("database", cfg.Mongo.Database).Msg("MongoDB connection established")

	return &MongoDB{
		Client:  client,
		DB:      client.Database(cfg.Mongo.Database),
		metrics: m,
	}, nil
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	if m.Client == nil {
		return nil
	}
	return m.Client.Disconnect(ctx)
}

// Ping checks that the primary is reachable.
func (m *MongoDB) Ping(ctx context.Context) error {
	if err := m.Client.Ping(ctx, nil); err != nil {
		return apperrors.NewConnectionError("mongo ping failed", err)
	}
	return nil
}

// FindAll decodes every document of collection, ordered by _id, into out,
// which must be a pointer to a slice.
func (m *MongoDB) FindAll(ctx context.Context, collection string, out interface{}) (err error) {
	started := time.Now()
	defer func() { m.metrics.ObserveStore(metrics.StoreMongo, "find", started, err) }()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := m.DB.Collection(collection).Find(ctx, bson.D{}, opts)
	if err != nil {
		logger.Error().Err(err).Str("collection", collection).Msg("Error finding documents")
		return apperrors.NewQueryError("document find failed", err)
	}
	if err = cursor.All(ctx, out); err != nil {
		logger.Error().Err(err).Str("collection", collection).Msg("Error decoding documents")
		return apperrors.NewQueryError("document decode failed", err)
	}
	return nil
}

// FindByID decodes the document with the given _id into out.
func (m *MongoDB) FindByID(ctx context.Context, collection, id string, out interface{}) error {
	started := time.Now()
	res := m.DB.Collection(collection).FindOne(ctx, bson.M{"_id": id})

	err := decodeOne(res, out, func(err error) {
		m.metrics.ObserveStore(metrics.StoreMongo, "find_one", started, err)
	})
	if errors.Is(err, apperrors.ErrQuery) {
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error finding document")
	}
	return err
}

type decoder interface {
	Decode(v interface{}) error
}

// decodeOne decodes a single lookup result. A missing document is observed
// as a successful lookup and returned as not found.
func decodeOne(res decoder, out interface{}, done func(error)) error {
	err := res.Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		done(nil)
		return apperrors.NewResourceNotFoundError("document not found")
	}
	done(err)
	if err != nil {
		return apperrors.NewQueryError("document find failed", err)
	}
	return nil
}

// InsertOne stores doc. A duplicate _id is reported as a duplicate key.
func (m *MongoDB) InsertOne(ctx context.Context, collection string, doc interface{}) (err error) {
	started := time.Now()
	defer func() { m.metrics.ObserveStore(metrics.StoreMongo, "insert_one", started, err) }()

	if _, err = m.DB.Collection(collection).InsertOne(ctx, doc); err != nil {
		if dberrors.IsDuplicateDocumentError(err) {
			return apperrors.NewDuplicateKeyError("document already exists")
		}
		logger.Error().Err(err).Str("collection", collection).Msg("Error inserting document")
		return apperrors.NewQueryError("document insert failed", err)
	}
	return nil
}

// DeleteOne removes the document with the given _id and returns how many
// documents were removed (0 or 1).
func (m *MongoDB) DeleteOne(ctx context.Context, collection, id string) (deleted int64, err error) {
	started := time.Now()
	defer func() { m.metrics.ObserveStore(metrics.StoreMongo, "delete_one", started, err) }()

	res, err := m.DB.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("Error deleting document")
		return 0, apperrors.NewQueryError("document delete failed", err)
	}
	return res.DeletedCount, nil
}
