package dip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/goprinciples/solid/pkg/logger"
)

// recordedDeveloper is a test double; the Project accepts it because it asks
// only for the Developer abstraction.
type recordedDeveloper struct {
	calls int
}

func (d *recordedDeveloper) Develop() Contribution {
	d.calls++
	return Contribution{Author: "double", Work: "recorded work"}
}

func TestProject_Sprint(t *testing.T) {
	t.Parallel()

	t.Run("every developer contributes once", func(t *testing.T) {
		t.Parallel()

		double := &recordedDeveloper{}
		p := NewProject("launch", logger.Test(t),
			FrontendDeveloper{Name: "Ada"},
			BackendDeveloper{Name: "Grace"},
			double,
		)

		contributions, err := p.Sprint()
		require.NoError(t, err)
		require.Len(t, contributions, 3)
		assert.Equal(t, 1, double.calls)
		assert.Equal(t, "Ada", contributions[0].Author)
		assert.Equal(t, "user interface", contributions[0].Work)
	})

	t.Run("empty team fails", func(t *testing.T) {
		t.Parallel()

		p := NewProject("ghost town", logger.Nop())
		_, err := p.Sprint()
		require.ErrorIs(t, err, ErrNoTeam)
	})

	t.Run("contributions are logged", func(t *testing.T) {
		t.Parallel()

		lggr, logs := logger.TestObserved(t, zapcore.DebugLevel)
		p := NewProject("launch", lggr, BackendDeveloper{Name: "Grace"})

		_, err := p.Sprint()
		require.NoError(t, err)
		require.Equal(t, 1, logs.FilterMessage("contribution delivered").Len())
	})
}

func TestRigidProject_Sprint(t *testing.T) {
	t.Parallel()

	p := NewRigidProject("welded")
	contributions := p.Sprint()

	require.Len(t, contributions, 2)
	assert.Equal(t, "in-house frontend", contributions[0].Author)
	assert.Equal(t, "in-house backend", contributions[1].Author)
}
