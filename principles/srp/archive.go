package srp

import (
	"errors"
	"fmt"
	"sync"
)

// ErrBookNotFound is returned by Archive lookups when no book matches.
var ErrBookNotFound = errors.New("book not found")

// Archive is the persistence boundary for books. Storage medium changes land
// here, not on Book.
type Archive struct {
	mu    sync.RWMutex
	books map[string]Book
}

// NewArchive creates an empty Archive.
func NewArchive() *Archive {
	return &Archive{books: make(map[string]Book)}
}

// Store persists the book, overwriting any previous copy with the same ID.
func (a *Archive) Store(b Book) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.books[b.ID] = b
}

// Fetch returns the stored book with the given ID.
func (a *Archive) Fetch(id string) (Book, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	b, ok := a.books[id]
	if !ok {
		return Book{}, fmt.Errorf("id %q: %w", id, ErrBookNotFound)
	}

	return b, nil
}

// Len returns the number of stored books.
func (a *Archive) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.books)
}
