package srp

import (
	"fmt"
	"io"
)

// OmnibusBook is the smell: one type that owns content, presentation, and
// persistence. It changes when the content model changes, when the page
// format changes, and when the storage medium changes.
type OmnibusBook struct {
	Title  string
	Author string
	Pages  []string

	shelf map[string][]string
}

// PrintPage formats and writes page n. Presentation logic living on the book.
func (b *OmnibusBook) PrintPage(w io.Writer, n int) error {
	if n < 1 || n > len(b.Pages) {
		return fmt.Errorf("page %d of %q: %w", n, b.Title, ErrPageOutOfRange)
	}

	_, err := fmt.Fprintf(w, "%s — p.%d\n\n%s\n", b.Title, n, b.Pages[n-1])

	return err
}

// Save persists the book into its own private shelf. Storage logic living on
// the book.
func (b *OmnibusBook) Save() {
	if b.shelf == nil {
		b.shelf = make(map[string][]string)
	}
	b.shelf[b.Title] = b.Pages
}
