package ocp

import (
	"context"
	"fmt"
	"io"
)

// Lesson narrates the open/closed example.
type Lesson struct{}

func (Lesson) Slug() string  { return "ocp" }
func (Lesson) Title() string { return "Open/Closed Principle" }

// Demonstrate extends a Book twice, by embedding and by a plugged-in discount
// policy, without modifying Book either time.
func (Lesson) Demonstrate(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	book := Book{Title: "The Go Programming Language", Author: "Donovan & Kernighan", Cents: 4999}
	text := Textbook{Book: book, Subject: "Go", Exercises: 120}

	fmt.Fprintf(w, "Base: %s\n", book.Describe())
	fmt.Fprintf(w, "Extended by embedding: %s\n", text.Describe())

	registry := NewPolicyRegistry()
	if err := registry.Register("student", DiscountFunc(func(b Book) int {
		return b.Cents * 80 / 100
	})); err != nil {
		return err
	}

	fmt.Fprintf(w, "List price %d, student price %d; Book was never edited.\n",
		book.Price(), registry.Price("student", book))

	return nil
}
