package storage

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dexfetch/internal/types"
)

// MongoStorage writes results to a MongoDB collection, one document per
// Pokémon.
type MongoStorage struct {
	client     *mongo.Client
	collection *mongo.Collection
	mu         sync.Mutex
	count      int
	logger     *slog.Logger
}

// NewMongoStorage creates a new MongoDB storage backend.
func NewMongoStorage(uri, database, collection string, logger *slog.Logger) (*MongoStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongodb ping: %w", err)
	}

	return &MongoStorage{
		client:     client,
		collection: client.Database(database).Collection(collection),
		logger:     logger.With("component", "mongo_storage"),
	}, nil
}

func (s *MongoStorage) Name() string { return "mongodb" }

func (s *MongoStorage) Store(rec *types.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := map[string]any{
		"name":       rec.Result.DisplayName,
		"url":        rec.Result.URL,
		"title":      rec.Result.Title,
		"japanese":   rec.Result.Japanese,
		"dex_number": rec.Result.DexNumber,
		"record":     rec.Text,
		"_timestamp": rec.CreatedAt,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return &types.StorageError{Backend: s.Name(), Err: fmt.Errorf("mongodb insert: %w", err)}
	}

	s.count++
	s.logger.Debug("record stored in mongodb", "name", rec.Result.DisplayName, "total", s.count)
	return nil
}

func (s *MongoStorage) Close() error {
	s.logger.Info("mongodb storage closing", "total_records", s.count)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
