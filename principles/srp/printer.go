package srp

import (
	"fmt"
	"io"
)

// PageRenderer formats a single page for display. Presentation changes land
// here, not on Book.
type PageRenderer struct {
	// Header is prepended to every rendered page. Defaults to the book title.
	Header string
}

// Render formats page n of the book.
func (r PageRenderer) Render(b Book, n int) (string, error) {
	text, err := b.Page(n)
	if err != nil {
		return "", err
	}

	header := r.Header
	if header == "" {
		header = b.Title
	}

	return fmt.Sprintf("%s — p.%d\n\n%s\n", header, n, text), nil
}

// Printer writes rendered pages to an output device.
type Printer struct {
	out      io.Writer
	renderer PageRenderer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Print renders page n of the book and writes it to the printer's output.
func (p *Printer) Print(b Book, n int) error {
	page, err := p.renderer.Render(b, n)
	if err != nil {
		return err
	}

	_, err = io.WriteString(p.out, page)

	return err
}
