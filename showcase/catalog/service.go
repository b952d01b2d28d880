package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/goprinciples/solid/pkg/logger"
	"github.com/goprinciples/solid/showcase/notify"
)

// Service registers and shelves books. The constructor takes abstractions
// only; wiring a concrete store and notifier happens at the composition root.
type Service struct {
	store    Store
	notifier notify.Notifier
	lggr     logger.Logger
}

// NewService creates a Service over the given store and notifier.
func NewService(store Store, notifier notify.Notifier, lggr logger.Logger) *Service {
	return &Service{store: store, notifier: notifier, lggr: lggr}
}

// Register validates and stores a new book and announces it. A book with the
// same title and author as an existing one is rejected with ErrDuplicate.
func (s *Service) Register(ctx context.Context, title, author string, year int) (Book, error) {
	if strings.TrimSpace(title) == "" {
		return Book{}, fmt.Errorf("title is required: %w", ErrInvalid)
	}
	if strings.TrimSpace(author) == "" {
		return Book{}, fmt.Errorf("author is required: %w", ErrInvalid)
	}

	existing, err := s.store.Filter(ctx, ByAuthor(author))
	if err != nil {
		return Book{}, fmt.Errorf("failed to check for duplicates: %w", err)
	}
	for _, b := range existing {
		if b.Title == title {
			return Book{}, fmt.Errorf("%q by %s: %w", title, author, ErrDuplicate)
		}
	}

	book := NewBook(title, author, year)
	if err := s.store.Add(ctx, book); err != nil {
		return Book{}, fmt.Errorf("failed to store book: %w", err)
	}

	s.lggr.Infow("book registered", "id", book.ID, "title", book.Title)

	if err := s.notifier.Notify(ctx, fmt.Sprintf("registered %q by %s", book.Title, book.Author)); err != nil {
		// Registration already succeeded; the announcement is best effort.
		s.lggr.Warnw("failed to notify", "id", book.ID, "err", err)
	}

	return book, nil
}

// Find returns the books matching all the given filters.
func (s *Service) Find(ctx context.Context, filters ...FilterFunc) ([]Book, error) {
	return s.store.Filter(ctx, filters...)
}

// Get returns the book with the given ID.
func (s *Service) Get(ctx context.Context, id string) (Book, error) {
	return s.store.Get(ctx, id)
}

// Shelve marks the book as shelved.
func (s *Service) Shelve(ctx context.Context, id string) error {
	book, err := s.store.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load book %q: %w", id, err)
	}
	if book.Shelved {
		return nil
	}

	book.Shelved = true
	if err := s.store.Update(ctx, book); err != nil {
		return fmt.Errorf("failed to shelve book %q: %w", id, err)
	}

	s.lggr.Infow("book shelved", "id", id)

	return nil
}
