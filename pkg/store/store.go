// Package store persists named workflow documents for the HTTP service.
//
// Two backends are available: MemoryStore for single-process use and
// tests, and MongoStore for durable shared storage. Both hold the
// serialized graph format from pkg/io, keyed by workflow name.
package store

import (
	"context"
	"sync"

	"github.com/pegflow/daxport/pkg/errors"
	"github.com/pegflow/daxport/pkg/io"
)

// Store persists workflow documents by name.
type Store interface {
	// Put stores doc under name, replacing any existing document.
	Put(ctx context.Context, name string, doc io.Graph) error

	// Get retrieves the document stored under name. Returns a coded
	// WORKFLOW_NOT_FOUND error if the name is unknown.
	Get(ctx context.Context, name string) (io.Graph, error)

	// Delete removes the document stored under name. Returns a coded
	// WORKFLOW_NOT_FOUND error if the name is unknown.
	Delete(ctx context.Context, name string) error

	// List returns the names of all stored workflows.
	List(ctx context.Context) ([]string, error)

	// Close releases any resources held by the store.
	Close(ctx context.Context) error
}

// MemoryStore is an in-process store backed by a map.
// It is safe for concurrent use. Names are returned by List in
// insertion order.
type MemoryStore struct {
	mu    sync.RWMutex
	docs  map[string]io.Graph
	order []string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]io.Graph)}
}

// Put stores doc under name, replacing any existing document.
func (s *MemoryStore) Put(ctx context.Context, name string, doc io.Graph) error {
	if err := errors.ValidateWorkflowName(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.docs[name]; !exists {
		s.order = append(s.order, name)
	}
	s.docs[name] = doc
	return nil
}

// Get retrieves the document stored under name.
func (s *MemoryStore) Get(ctx context.Context, name string) (io.Graph, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[name]
	if !ok {
		return io.Graph{}, errors.New(errors.ErrCodeWorkflowNotFound, "workflow %q not found", name)
	}
	return doc, nil
}

// Delete removes the document stored under name.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[name]; !ok {
		return errors.New(errors.ErrCodeWorkflowNotFound, "workflow %q not found", name)
	}
	delete(s.docs, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns stored workflow names in insertion order.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names, nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
