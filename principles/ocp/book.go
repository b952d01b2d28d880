package ocp

import "fmt"

// Book is the closed module: everything below extends it without editing it.
type Book struct {
	Title  string
	Author string
	Cents  int
}

// Describe returns a one-line description of the book.
func (b Book) Describe() string {
	return fmt.Sprintf("%s by %s", b.Title, b.Author)
}

// Price returns the list price in cents.
func (b Book) Price() int { return b.Cents }

// Textbook extends Book by embedding: it adds study aids and refines the
// description without a single change to Book.
type Textbook struct {
	Book
	Subject   string
	Exercises int
}

// Describe extends the embedded description with the subject.
func (t Textbook) Describe() string {
	return fmt.Sprintf("%s (%s textbook, %d exercises)", t.Book.Describe(), t.Subject, t.Exercises)
}

// Describer is the extension point consumers depend on. Book, Textbook, and
// any future kind satisfy it without coordination.
type Describer interface {
	Describe() string
}

var (
	_ Describer = Book{}
	_ Describer = Textbook{}
)
