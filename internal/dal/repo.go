package dal

import (
	"context"
	"errors"
)

const (
	CollectionLesson   = "lesson"
	CollectionWord     = "word"
	CollectionProgress = "progress"
)

var (
	ErrNotFound = errors.New("not found")
)

type (
	// Document is a single schemaless record as stored in a collection.
	Document map[string]any

	// Filter matches documents by exact equality on the provided fields.
	// An empty filter matches every document in a collection.
	Filter map[string]any

	// DocumentStore is the generic contract against the underlying document
	// database. Collections are created lazily by the store on first insert;
	// this layer performs no schema validation and manages no indexes.
	DocumentStore interface {
		// CreateDocument inserts data into the named collection and returns
		// the store-assigned identifier in its string form.
		CreateDocument(ctx context.Context, collection string, data any) (string, error)
		// GetDocuments returns documents matching filter in store-native
		// order. limit <= 0 means no limit.
		GetDocuments(ctx context.Context, collection string, filter Filter, limit int64) ([]Document, error)
		// FindLatestDocument returns the most recently inserted document
		// matching filter, or ErrNotFound when none matches.
		FindLatestDocument(ctx context.Context, collection string, filter Filter) (Document, error)
		CountDocuments(ctx context.Context, collection string, filter Filter) (int64, error)
		ListCollectionNames(ctx context.Context) ([]string, error)
		Ping(ctx context.Context) error
	}
)
