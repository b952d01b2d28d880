package srp

import (
	"context"
	"fmt"
	"io"
)

// Lesson narrates the single responsibility example.
type Lesson struct{}

func (Lesson) Slug() string  { return "srp" }
func (Lesson) Title() string { return "Single Responsibility Principle" }

// Demonstrate registers a book, prints its first page through the dedicated
// printer, and archives it, showing each collaborator doing its one job.
func (Lesson) Demonstrate(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	book := NewBook("The Pragmatic Gopher", "R. Pike", "Page one.", "Page two.")

	fmt.Fprintf(w, "Book %q has %d pages and exactly one job: holding them.\n", book.Title, book.PageCount())

	printer := NewPrinter(w)
	if err := printer.Print(book, 1); err != nil {
		return err
	}

	archive := NewArchive()
	archive.Store(book)
	fmt.Fprintf(w, "Archived %d book(s); the Book type never saw a storage concern.\n", archive.Len())

	return nil
}
