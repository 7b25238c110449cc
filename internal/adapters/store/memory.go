// Package store provides document store adapters implementing
// ports.DocumentStore. The in-memory store is the default; the SQLite store
// is a drop-in durable backing behind the same port.
package store

import (
	"context"
	"sync"

	"github.com/omnichat/omnichat-go/internal/domain/entities"
)

// MemoryStore holds documents in process memory, insertion order preserved.
// State lives from process start to process stop; nothing survives a restart.
// All mutation is serialized behind a single RWMutex.
type MemoryStore struct {
	mu   sync.RWMutex
	docs []entities.Document
}

// NewMemoryStore creates an empty in-memory document store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append adds a document to the end of the sequence.
func (s *MemoryStore) Append(ctx context.Context, doc entities.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs = append(s.docs, doc)
	return nil
}

// All returns a snapshot of the stored documents in insertion order. The
// returned slice is a copy; callers never alias live state.
func (s *MemoryStore) All(ctx context.Context) ([]entities.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Document, len(s.docs))
	copy(out, s.docs)
	return out, nil
}

// Len reports the current number of documents.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
