package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/goprinciples/solid/pkg/logger"
	"github.com/goprinciples/solid/showcase/catalog"
	"github.com/goprinciples/solid/showcase/notify"
	"github.com/goprinciples/solid/showcase/storage/memstore"
)

func newService(t *testing.T, n notify.Notifier) (*catalog.Service, *memstore.Store) {
	t.Helper()

	store := memstore.New()
	if n == nil {
		n = notify.Nop()
	}

	return catalog.NewService(store, n, logger.Test(t)), store
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("stores and notifies", func(t *testing.T) {
		t.Parallel()

		var messages []string
		svc, store := newService(t, notify.Func(func(_ context.Context, m string) error {
			messages = append(messages, m)
			return nil
		}))

		book, err := svc.Register(ctx, "The Go Programming Language", "Donovan & Kernighan", 2015)
		require.NoError(t, err)
		require.NotEmpty(t, book.ID)

		stored, err := store.Get(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, book.Title, stored.Title)

		require.Len(t, messages, 1)
		assert.Contains(t, messages[0], "The Go Programming Language")
	})

	t.Run("rejects blank title", func(t *testing.T) {
		t.Parallel()

		svc, _ := newService(t, nil)
		_, err := svc.Register(ctx, "  ", "A. Author", 2020)
		require.ErrorIs(t, err, catalog.ErrInvalid)
	})

	t.Run("rejects blank author", func(t *testing.T) {
		t.Parallel()

		svc, _ := newService(t, nil)
		_, err := svc.Register(ctx, "Title", "", 2020)
		require.ErrorIs(t, err, catalog.ErrInvalid)
	})

	t.Run("rejects duplicate title and author", func(t *testing.T) {
		t.Parallel()

		svc, _ := newService(t, nil)
		_, err := svc.Register(ctx, "Same", "Same Author", 2020)
		require.NoError(t, err)

		_, err = svc.Register(ctx, "Same", "Same Author", 2021)
		require.ErrorIs(t, err, catalog.ErrDuplicate)
	})

	t.Run("same title by another author is fine", func(t *testing.T) {
		t.Parallel()

		svc, _ := newService(t, nil)
		_, err := svc.Register(ctx, "Same", "First Author", 2020)
		require.NoError(t, err)

		_, err = svc.Register(ctx, "Same", "Second Author", 2021)
		require.NoError(t, err)
	})

	t.Run("notify failure does not fail registration", func(t *testing.T) {
		t.Parallel()

		store := memstore.New()
		lggr, logs := logger.TestObserved(t, zapcore.WarnLevel)
		svc := catalog.NewService(store, notify.Func(func(context.Context, string) error {
			return errors.New("broker down")
		}), lggr)

		book, err := svc.Register(ctx, "Resilient", "A. Author", 2020)
		require.NoError(t, err)

		_, err = store.Get(ctx, book.ID)
		require.NoError(t, err)
		require.Equal(t, 1, logs.FilterMessage("failed to notify").Len())
	})
}

func TestService_Find(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newService(t, nil)

	_, err := svc.Register(ctx, "A", "R. Pike", 2015)
	require.NoError(t, err)
	_, err = svc.Register(ctx, "B", "R. Pike", 2009)
	require.NoError(t, err)
	_, err = svc.Register(ctx, "C", "Someone Else", 2015)
	require.NoError(t, err)

	got, err := svc.Find(ctx, catalog.ByAuthor("R. Pike"), catalog.ByYear(2015))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Title)
}

func TestService_Shelve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("marks the book shelved", func(t *testing.T) {
		t.Parallel()

		svc, store := newService(t, nil)
		book, err := svc.Register(ctx, "Shelvable", "A. Author", 2020)
		require.NoError(t, err)

		require.NoError(t, svc.Shelve(ctx, book.ID))

		got, err := store.Get(ctx, book.ID)
		require.NoError(t, err)
		assert.True(t, got.Shelved)

		// Shelving twice is a no-op.
		require.NoError(t, svc.Shelve(ctx, book.ID))
	})

	t.Run("missing book", func(t *testing.T) {
		t.Parallel()

		svc, _ := newService(t, nil)
		err := svc.Shelve(ctx, "missing")
		require.ErrorIs(t, err, catalog.ErrNotFound)
	})
}
