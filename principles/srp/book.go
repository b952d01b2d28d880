package srp

import (
	"errors"
	"fmt"

	"github.com/segmentio/ksuid"
)

// ErrPageOutOfRange is returned when a requested page does not exist.
var ErrPageOutOfRange = errors.New("page out of range")

// Book holds a book's content. It knows nothing about presentation or
// persistence; those concerns live in PageRenderer, Printer, and Archive.
type Book struct {
	ID     string
	Title  string
	Author string
	pages  []string
}

// NewBook creates a Book with a generated ID and the given pages.
func NewBook(title, author string, pages ...string) Book {
	return Book{
		ID:     ksuid.New().String(),
		Title:  title,
		Author: author,
		pages:  pages,
	}
}

// PageCount returns the number of pages in the book.
func (b Book) PageCount() int { return len(b.pages) }

// Page returns the 1-indexed page n.
func (b Book) Page(n int) (string, error) {
	if n < 1 || n > len(b.pages) {
		return "", fmt.Errorf("page %d of %q: %w", n, b.Title, ErrPageOutOfRange)
	}

	return b.pages[n-1], nil
}
