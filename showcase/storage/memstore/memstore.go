// Package memstore provides the in-memory catalog store. It is the default
// store for tests and demos and one of the two substitutable implementations
// the storetest suite holds to the same contract.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/goprinciples/solid/showcase/catalog"
)

// Store is a mutex-guarded in-memory catalog.Store. All accessors work on
// copies; callers can never mutate stored state through a returned Book.
type Store struct {
	mu    sync.RWMutex
	books map[string]catalog.Book
}

var _ catalog.Store = &Store{}

// New creates an empty Store.
func New() *Store {
	return &Store{books: make(map[string]catalog.Book)}
}

// NewSeeded creates a Store preloaded with the given books.
func NewSeeded(books ...catalog.Book) *Store {
	s := New()
	for _, b := range books {
		s.books[b.ID] = b
	}

	return s
}

// Add stores a new book.
func (s *Store) Add(_ context.Context, b catalog.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[b.ID]; ok {
		return fmt.Errorf("id %q: %w", b.ID, catalog.ErrDuplicate)
	}
	s.books[b.ID] = b

	return nil
}

// Update replaces an existing book.
func (s *Store) Update(_ context.Context, b catalog.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[b.ID]; !ok {
		return fmt.Errorf("id %q: %w", b.ID, catalog.ErrNotFound)
	}
	s.books[b.ID] = b

	return nil
}

// Get returns the book with the given ID.
func (s *Store) Get(_ context.Context, id string) (catalog.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.books[id]
	if !ok {
		return catalog.Book{}, fmt.Errorf("id %q: %w", id, catalog.ErrNotFound)
	}

	return b, nil
}

// Filter returns the books passing every filter, ordered by ID.
func (s *Store) Filter(_ context.Context, filters ...catalog.FilterFunc) ([]catalog.Book, error) {
	s.mu.RLock()
	books := make([]catalog.Book, 0, len(s.books))
	for _, b := range s.books {
		books = append(books, b)
	}
	s.mu.RUnlock()

	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })

	for _, f := range filters {
		books = f(books)
	}

	return books, nil
}
