// Package memstore is an in-memory store.Store for tests and one-shot runs.
package memstore

import (
	"context"
	"crypto/rand"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/benhorvath/tempo-tfidf/pkg/tempo/store"
)

// Store keeps the archive in a map guarded by a RWMutex.
type Store struct {
	mu      sync.RWMutex
	docs    map[string]store.Doc
	entropy *ulid.MonotonicEntropy
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		docs:    make(map[string]store.Doc),
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// Put archives a document, assigning a ULID when the ID is empty.
func (s *Store) Put(ctx context.Context, d store.Doc) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.ID == "" {
		d.ID = ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
	}
	if d.AddedAt.IsZero() {
		d.AddedAt = time.Now().UTC()
	}
	s.docs[d.ID] = d
	return d.ID, nil
}

// Get returns a document by ID.
func (s *Store) Get(ctx context.Context, id string) (store.Doc, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	return doc, ok, nil
}

// List returns all documents ordered by ID.
func (s *Store) List(ctx context.Context) ([]store.Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Doc, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, doc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Count reports the number of archived documents.
func (s *Store) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.docs)), nil
}
