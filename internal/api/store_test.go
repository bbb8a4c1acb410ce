package api

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/example/english-for-kids/internal/dal"
)

// memStore is an in-memory dal.DocumentStore for handler tests. Setting
// failWith makes every call fail with that error.
type memStore struct {
	mu          sync.Mutex
	collections map[string][]dal.Document
	failWith    error
}

func newMemStore() *memStore {
	return &memStore{collections: make(map[string][]dal.Document)}
}

func (s *memStore) CreateDocument(_ context.Context, collection string, data any) (string, error) {
	if s.failWith != nil {
		return "", s.failWith
	}

	doc, err := toDocument(data)
	if err != nil {
		return "", err
	}

	id := primitive.NewObjectID()
	doc["_id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], doc)

	return id.Hex(), nil
}

func (s *memStore) GetDocuments(_ context.Context, collection string, filter dal.Filter, limit int64) ([]dal.Document, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var res []dal.Document
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			res = append(res, doc)
			if limit > 0 && int64(len(res)) == limit {
				break
			}
		}
	}

	return res, nil
}

func (s *memStore) FindLatestDocument(_ context.Context, collection string, filter dal.Filter) (dal.Document, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i := len(docs) - 1; i >= 0; i-- {
		if matches(docs[i], filter) {
			return docs[i], nil
		}
	}

	return nil, dal.ErrNotFound
}

func (s *memStore) CountDocuments(_ context.Context, collection string, filter dal.Filter) (int64, error) {
	if s.failWith != nil {
		return 0, s.failWith
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			count++
		}
	}

	return count, nil
}

func (s *memStore) ListCollectionNames(_ context.Context) ([]string, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}

	return names, nil
}

func (s *memStore) Ping(_ context.Context) error {
	return s.failWith
}

func matches(doc dal.Document, filter dal.Filter) bool {
	for k, v := range filter {
		if doc[k] != v {
			return false
		}
	}
	return true
}

// toDocument round-trips through bson so typed records land in the store the
// same way the real driver would persist them.
func toDocument(data any) (dal.Document, error) {
	raw, err := bson.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}

	var doc dal.Document
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}

	return doc, nil
}
