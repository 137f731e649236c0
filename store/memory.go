package store

import (
	"context"
	"sync"

	"TaskFilterService/models"
)

// MemoryStore keeps the document in process memory. It never fails.
type MemoryStore struct {
	base
	mu  sync.RWMutex
	doc models.PreferenceDocument
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	return &MemoryStore{base: newBase("memory", opts), doc: models.EmptyDocument()}
}

func (s *MemoryStore) Init(ctx context.Context) error { return nil }

func (s *MemoryStore) Load(ctx context.Context) models.PreferenceDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

func (s *MemoryStore) Save(ctx context.Context, entry models.Preference) error {
	doc := models.PreferenceDocument{SavedPreferences: []models.Preference{s.stamp(entry)}}
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	s.wrote("save preferences", doc)
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.doc = models.EmptyDocument()
	s.mu.Unlock()
	s.wrote("clear preferences", models.EmptyDocument())
	return nil
}
