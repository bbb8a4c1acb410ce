package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/example/english-for-kids/internal/dal"
)

const connectTimeout = 10 * time.Second

// Store implements dal.DocumentStore on top of a MongoDB database handle.
// The handle is safe for concurrent use; no additional synchronization is
// needed here.
type Store struct {
	db  *mongo.Database
	log *slog.Logger
}

// Connect establishes a client connection. The caller owns the client and is
// responsible for Disconnect on shutdown.
func Connect(ctx context.Context, url string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	return client, nil
}

func NewStore(db *mongo.Database, log *slog.Logger) *Store {
	return &Store{db: db, log: log}
}

func (s *Store) CreateDocument(ctx context.Context, collection string, data any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, data)
	if err != nil {
		return "", fmt.Errorf("insert into %q: %w", collection, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (s *Store) GetDocuments(ctx context.Context, collection string, filter dal.Filter, limit int64) ([]dal.Document, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, toBSON(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find in %q: %w", collection, err)
	}
	defer cursor.Close(ctx) //nolint:errcheck // ignore close errors

	var docs []dal.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode documents from %q: %w", collection, err)
	}

	return docs, nil
}

func (s *Store) FindLatestDocument(ctx context.Context, collection string, filter dal.Filter) (dal.Document, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})

	var doc dal.Document
	err := s.db.Collection(collection).FindOne(ctx, toBSON(filter), opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, dal.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find latest in %q: %w", collection, err)
	}

	return doc, nil
}

func (s *Store) CountDocuments(ctx context.Context, collection string, filter dal.Filter) (int64, error) {
	count, err := s.db.Collection(collection).CountDocuments(ctx, toBSON(filter))
	if err != nil {
		return 0, fmt.Errorf("count in %q: %w", collection, err)
	}
	return count, nil
}

func (s *Store) ListCollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongodb: %w", err)
	}
	return nil
}

func toBSON(filter dal.Filter) bson.M {
	if filter == nil {
		return bson.M{}
	}
	return bson.M(filter)
}
