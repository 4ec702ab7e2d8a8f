package catalog

import (
	"context"
	"sync"
)

// MemoryDocumentRepository is an in-memory implementation for scaffolding and tests.
type MemoryDocumentRepository struct {
	mu        sync.RWMutex
	documents map[string]Catalog
}

// NewMemoryDocumentRepository creates an empty in-memory document repository.
func NewMemoryDocumentRepository() *MemoryDocumentRepository {
	return &MemoryDocumentRepository{
		documents: make(map[string]Catalog),
	}
}

// Get retrieves the catalog document stored under key.
func (m *MemoryDocumentRepository) Get(_ context.Context, key string) (Catalog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.documents[key]
	if !ok {
		return Catalog{}, &NotFoundError{Resource: "catalog document", Key: key}
	}
	return doc.Clone(), nil
}

// Put stores the whole catalog document under key.
func (m *MemoryDocumentRepository) Put(_ context.Context, key string, catalog Catalog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.documents[key] = catalog.Clone()
	return nil
}
