package lsp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// CheckDriver asserts the behavioral contract every Driver must keep. It is
// the executable form of substitutability: a caller holding any conforming
// Driver observes the same guarantees. newCar must return a fresh car with at
// least 10km of range.
func CheckDriver(t *testing.T, newCar func() Driver) {
	t.Helper()

	t.Run("drive before start fails", func(t *testing.T) {
		c := newCar()
		_, err := c.Drive(1)
		require.ErrorIs(t, err, ErrNotStarted)
	})

	t.Run("drive consumes range", func(t *testing.T) {
		c := newCar()
		require.NoError(t, c.Start())

		before := c.RangeKM()
		covered, err := c.Drive(5)
		require.NoError(t, err)
		require.Equal(t, 5, covered)
		require.Equal(t, before-5, c.RangeKM())
	})

	t.Run("negative distance rejected", func(t *testing.T) {
		c := newCar()
		require.NoError(t, c.Start())

		before := c.RangeKM()
		_, err := c.Drive(-10)
		require.ErrorIs(t, err, ErrNegativeDistance)
		require.Equal(t, before, c.RangeKM())
	})

	t.Run("drive never exceeds range", func(t *testing.T) {
		c := newCar()
		require.NoError(t, c.Start())

		covered, err := c.Drive(c.RangeKM() + 100)
		require.NoError(t, err)
		require.Equal(t, 0, c.RangeKM())
		require.Positive(t, covered)
	})
}
