// Package sqlstore provides the database/sql catalog store. Production runs
// it against PostgreSQL via lib/pq; tests run the identical code against
// ramsql, a pure-Go SQL engine, so the contract suite stays hermetic.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/goprinciples/solid/showcase/catalog"
)

const schema = `
	CREATE TABLE books (
		id         varchar(255) not null,
		title      varchar(255) not null,
		author     varchar(255) not null,
		pub_year   bigint not null,
		shelved    bigint not null,
		created_at varchar(255) not null,

		PRIMARY KEY(id)
	);`

// Store is a catalog.Store backed by a SQL database.
type Store struct {
	db *sql.DB
}

var _ catalog.Store = &Store{}

// Open connects to PostgreSQL with the given DSN.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return New(db), nil
}

// New wraps an existing database handle. The caller keeps ownership of db.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the books table.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Add stores a new book.
func (s *Store) Add(ctx context.Context, b catalog.Book) error {
	if _, err := s.get(ctx, b.ID); err == nil {
		return fmt.Errorf("id %q: %w", b.ID, catalog.ErrDuplicate)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO books (id, title, author, pub_year, shelved, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID, b.Title, b.Author, b.Year, boolToInt(b.Shelved), b.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to insert book %q: %w", b.ID, err)
	}

	return nil
}

// Update replaces an existing book.
func (s *Store) Update(ctx context.Context, b catalog.Book) error {
	if _, err := s.get(ctx, b.ID); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`UPDATE books SET title = $1, author = $2, pub_year = $3, shelved = $4 WHERE id = $5`,
		b.Title, b.Author, b.Year, boolToInt(b.Shelved), b.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update book %q: %w", b.ID, err)
	}

	return nil
}

// Get returns the book with the given ID.
func (s *Store) Get(ctx context.Context, id string) (catalog.Book, error) {
	return s.get(ctx, id)
}

func (s *Store) get(ctx context.Context, id string) (catalog.Book, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, author, pub_year, shelved, created_at FROM books WHERE id = $1`, id)

	b, err := scanBook(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Book{}, fmt.Errorf("id %q: %w", id, catalog.ErrNotFound)
	}
	if err != nil {
		return catalog.Book{}, fmt.Errorf("failed to load book %q: %w", id, err)
	}

	return b, nil
}

// Filter returns the books passing every filter, ordered by ID. Filters run
// in memory over the loaded rows so the same composable FilterFuncs work
// against every store.
func (s *Store) Filter(ctx context.Context, filters ...catalog.FilterFunc) ([]catalog.Book, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, author, pub_year, shelved, created_at FROM books ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]catalog.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}

	for _, f := range filters {
		books = f(books)
	}

	return books, nil
}

func scanBook(scan func(dest ...any) error) (catalog.Book, error) {
	var (
		b       catalog.Book
		shelved int64
		created string
	)
	if err := scan(&b.ID, &b.Title, &b.Author, &b.Year, &shelved, &created); err != nil {
		return catalog.Book{}, err
	}

	b.Shelved = shelved != 0
	ts, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return catalog.Book{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	b.CreatedAt = ts

	return b, nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}

	return 0
}
