// Package storetest holds every catalog.Store implementation to the same
// behavioral contract. It is the substitution principle made executable at
// production scale: memstore and sqlstore both pass this suite, so the
// catalog service cannot tell them apart.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goprinciples/solid/showcase/catalog"
)

// MakeStore returns a fresh, empty store for one subtest.
type MakeStore func(t *testing.T) catalog.Store

// Run asserts the catalog.Store contract against the given implementation.
func Run(t *testing.T, makeStore MakeStore) {
	t.Helper()

	ctx := context.Background()

	t.Run("get missing returns ErrNotFound", func(t *testing.T) {
		store := makeStore(t)

		_, err := store.Get(ctx, "missing")
		require.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("add then get round-trips", func(t *testing.T) {
		store := makeStore(t)
		book := catalog.NewBook("The Go Programming Language", "Donovan & Kernighan", 2015)

		require.NoError(t, store.Add(ctx, book))

		got, err := store.Get(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, book.ID, got.ID)
		assert.Equal(t, book.Title, got.Title)
		assert.Equal(t, book.Author, got.Author)
		assert.Equal(t, book.Year, got.Year)
		assert.False(t, got.Shelved)
	})

	t.Run("add duplicate id returns ErrDuplicate", func(t *testing.T) {
		store := makeStore(t)
		book := catalog.NewBook("Once", "A. Author", 2020)

		require.NoError(t, store.Add(ctx, book))
		err := store.Add(ctx, book)
		require.ErrorIs(t, err, catalog.ErrDuplicate)
	})

	t.Run("update persists changes", func(t *testing.T) {
		store := makeStore(t)
		book := catalog.NewBook("Mutable", "A. Author", 2020)
		require.NoError(t, store.Add(ctx, book))

		book.Shelved = true
		require.NoError(t, store.Update(ctx, book))

		got, err := store.Get(ctx, book.ID)
		require.NoError(t, err)
		assert.True(t, got.Shelved)
	})

	t.Run("update missing returns ErrNotFound", func(t *testing.T) {
		store := makeStore(t)

		err := store.Update(ctx, catalog.NewBook("Ghost", "A. Author", 2020))
		require.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("filter composes", func(t *testing.T) {
		store := makeStore(t)

		pike2015 := catalog.NewBook("A", "R. Pike", 2015)
		pike2009 := catalog.NewBook("B", "R. Pike", 2009)
		other := catalog.NewBook("C", "Someone Else", 2015)
		for _, b := range []catalog.Book{pike2015, pike2009, other} {
			require.NoError(t, store.Add(ctx, b))
		}

		all, err := store.Filter(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		got, err := store.Filter(ctx, catalog.ByAuthor("R. Pike"), catalog.ByYear(2015))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, pike2015.ID, got[0].ID)
	})

	t.Run("filter on empty store returns empty", func(t *testing.T) {
		store := makeStore(t)

		got, err := store.Filter(ctx, catalog.Shelved(true))
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
