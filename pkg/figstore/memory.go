package figstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tracekit/tracekit/pkg/errors"
	"github.com/tracekit/tracekit/pkg/observability"
)

// MemoryStore keeps figure documents in process memory, for tests and
// single-process deployments without a database.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() Store {
	return &MemoryStore{docs: make(map[string]Document)}
}

// Save implements Store.
func (s *MemoryStore) Save(ctx context.Context, kind string, scene []byte) (string, error) {
	start := time.Now()
	doc := Document{
		ID:        uuid.NewString(),
		Kind:      kind,
		Scene:     append([]byte(nil), scene...),
		CreatedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	s.docs[doc.ID] = doc
	s.mu.Unlock()
	observability.Store().OnStoreSave(ctx, doc.ID, time.Since(start), nil)
	return doc.ID, nil
}

// Load implements Store.
func (s *MemoryStore) Load(ctx context.Context, id string) (*Document, error) {
	start := time.Now()
	s.mu.RLock()
	doc, ok := s.docs[id]
	s.mu.RUnlock()
	if !ok {
		err := errors.New(errors.ErrCodeFigureNotFound, "figure not found: %s", id)
		observability.Store().OnStoreLoad(ctx, id, time.Since(start), err)
		return nil, err
	}
	observability.Store().OnStoreLoad(ctx, id, time.Since(start), nil)
	return &doc, nil
}

// List implements Store.
func (s *MemoryStore) List(ctx context.Context, limit int) ([]Document, error) {
	s.mu.RLock()
	docs := make([]Document, 0, len(s.docs))
	for _, doc := range s.docs {
		doc.Scene = nil
		docs = append(docs, doc)
	}
	s.mu.RUnlock()

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.docs, id)
	s.mu.Unlock()
	return nil
}

// Close implements Store.
func (s *MemoryStore) Close(ctx context.Context) error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
