// Package catalog is the principles applied to one real component: a small
// book catalog service. The service is the high-level module; it depends on
// the Store and Notifier abstractions and an injected logger, never on a
// concrete storage engine or delivery mechanism.
package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/segmentio/ksuid"
)

var (
	// ErrNotFound is returned when no book matches.
	ErrNotFound = errors.New("book not found")
	// ErrDuplicate is returned when a book with the same title and author is
	// already registered.
	ErrDuplicate = errors.New("book already registered")
	// ErrInvalid is returned when a book record fails validation.
	ErrInvalid = errors.New("invalid book")
)

// Book is one catalog record.
type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Year      int       `json:"year"`
	Shelved   bool      `json:"shelved"`
	CreatedAt time.Time `json:"created_at"`
}

// NewBook creates a Book with a generated ID and creation timestamp.
func NewBook(title, author string, year int) Book {
	return Book{
		ID:        ksuid.New().String(),
		Title:     title,
		Author:    author,
		Year:      year,
		CreatedAt: time.Now().UTC(),
	}
}

// Reader is the read half of the storage contract.
type Reader interface {
	Get(ctx context.Context, id string) (Book, error)
	Filter(ctx context.Context, filters ...FilterFunc) ([]Book, error)
}

// Writer is the write half of the storage contract.
type Writer interface {
	Add(ctx context.Context, b Book) error
	Update(ctx context.Context, b Book) error
}

// Store composes the two halves. Implementations satisfy Reader and Writer;
// consumers that only read ask for Reader.
type Store interface {
	Reader
	Writer
}

// FilterFunc narrows a result set. Filters are composable: each one receives
// the records the previous ones let through.
type FilterFunc func([]Book) []Book

func filter(predicate func(Book) bool) FilterFunc {
	return func(books []Book) []Book {
		filtered := make([]Book, 0, len(books))
		for _, b := range books {
			if predicate(b) {
				filtered = append(filtered, b)
			}
		}

		return filtered
	}
}

// ByAuthor returns a filter that only includes books by the given author.
func ByAuthor(author string) FilterFunc {
	return filter(func(b Book) bool { return b.Author == author })
}

// ByYear returns a filter that only includes books published in the given year.
func ByYear(year int) FilterFunc {
	return filter(func(b Book) bool { return b.Year == year })
}

// Shelved returns a filter that only includes books on or off the shelf.
func Shelved(shelved bool) FilterFunc {
	return filter(func(b Book) bool { return b.Shelved == shelved })
}
