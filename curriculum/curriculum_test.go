package curriculum

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	c, err := Load()
	require.NoError(t, err)

	all := c.All()
	require.Len(t, all, 5)

	var letters string
	for _, p := range all {
		letters += p.Letter
	}
	assert.Equal(t, Acronym, letters)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			give:    "principles: [unterminated",
			wantErr: "failed to parse curriculum manifest",
		},
		{
			name:    "too few principles",
			give:    "principles:\n  - {slug: srp, letter: S, name: SRP, definition: d, order: 1, version: 1.0.0, package: p}",
			wantErr: "exactly 5 principles",
		},
		{
			name: "letters out of order",
			give: `principles:
  - {slug: a, letter: O, name: n1, definition: d1, order: 1, version: 1.0.0, package: p1}
  - {slug: b, letter: S, name: n2, definition: d2, order: 2, version: 1.0.0, package: p2}
  - {slug: c, letter: L, name: n3, definition: d3, order: 3, version: 1.0.0, package: p3}
  - {slug: d, letter: I, name: n4, definition: d4, order: 4, version: 1.0.0, package: p4}
  - {slug: e, letter: D, name: n5, definition: d5, order: 5, version: 1.0.0, package: p5}`,
			wantErr: "out of acronym order",
		},
		{
			name: "gapped order",
			give: `principles:
  - {slug: a, letter: S, name: n1, definition: d1, order: 1, version: 1.0.0, package: p1}
  - {slug: b, letter: O, name: n2, definition: d2, order: 3, version: 1.0.0, package: p2}
  - {slug: c, letter: L, name: n3, definition: d3, order: 3, version: 1.0.0, package: p3}
  - {slug: d, letter: I, name: n4, definition: d4, order: 4, version: 1.0.0, package: p4}
  - {slug: e, letter: D, name: n5, definition: d5, order: 5, version: 1.0.0, package: p5}`,
			wantErr: "order 3, want 2",
		},
		{
			name: "duplicate slug",
			give: `principles:
  - {slug: a, letter: S, name: n1, definition: d1, order: 1, version: 1.0.0, package: p1}
  - {slug: a, letter: O, name: n2, definition: d2, order: 2, version: 1.0.0, package: p2}
  - {slug: c, letter: L, name: n3, definition: d3, order: 3, version: 1.0.0, package: p3}
  - {slug: d, letter: I, name: n4, definition: d4, order: 4, version: 1.0.0, package: p4}
  - {slug: e, letter: D, name: n5, definition: d5, order: 5, version: 1.0.0, package: p5}`,
			wantErr: "duplicate principle slug",
		},
		{
			name: "duplicate definition",
			give: `principles:
  - {slug: a, letter: S, name: n1, definition: d1, order: 1, version: 1.0.0, package: p1}
  - {slug: b, letter: O, name: n2, definition: d1, order: 2, version: 1.0.0, package: p2}
  - {slug: c, letter: L, name: n3, definition: d3, order: 3, version: 1.0.0, package: p3}
  - {slug: d, letter: I, name: n4, definition: d4, order: 4, version: 1.0.0, package: p4}
  - {slug: e, letter: D, name: n5, definition: d5, order: 5, version: 1.0.0, package: p5}`,
			wantErr: "duplicate principle definition",
		},
		{
			name: "invalid version",
			give: `principles:
  - {slug: a, letter: S, name: n1, definition: d1, order: 1, version: not-semver, package: p1}
  - {slug: b, letter: O, name: n2, definition: d2, order: 2, version: 1.0.0, package: p2}
  - {slug: c, letter: L, name: n3, definition: d3, order: 3, version: 1.0.0, package: p3}
  - {slug: d, letter: I, name: n4, definition: d4, order: 4, version: 1.0.0, package: p4}
  - {slug: e, letter: D, name: n5, definition: d5, order: 5, version: 1.0.0, package: p5}`,
			wantErr: "invalid version",
		},
		{
			name: "missing version",
			give: `principles:
  - {slug: a, letter: S, name: n1, definition: d1, order: 1, package: p1}
  - {slug: b, letter: O, name: n2, definition: d2, order: 2, version: 1.0.0, package: p2}
  - {slug: c, letter: L, name: n3, definition: d3, order: 3, version: 1.0.0, package: p3}
  - {slug: d, letter: I, name: n4, definition: d4, order: 4, version: 1.0.0, package: p4}
  - {slug: e, letter: D, name: n5, definition: d5, order: 5, version: 1.0.0, package: p5}`,
			wantErr: "version is required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.give))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCurriculum_BySlug(t *testing.T) {
	t.Parallel()

	c, err := Load()
	require.NoError(t, err)

	p, err := c.BySlug("lsp")
	require.NoError(t, err)
	assert.Equal(t, "Liskov Substitution Principle", p.Name)

	_, err = c.BySlug("grasp")
	require.ErrorIs(t, err, ErrPrincipleNotFound)
}

func TestCurriculum_ByLetter(t *testing.T) {
	t.Parallel()

	c, err := Load()
	require.NoError(t, err)

	p, err := c.ByLetter("d")
	require.NoError(t, err)
	assert.Equal(t, "dip", p.Slug)

	_, err = c.ByLetter("X")
	require.ErrorIs(t, err, ErrPrincipleNotFound)
}

type stubLesson struct{ slug string }

func (s stubLesson) Slug() string  { return s.slug }
func (s stubLesson) Title() string { return s.slug }
func (s stubLesson) Demonstrate(_ context.Context, _ io.Writer) error {
	return nil
}

func TestCurriculum_CrossCheck(t *testing.T) {
	t.Parallel()

	c, err := Load()
	require.NoError(t, err)

	full := []Lesson{
		stubLesson{"srp"}, stubLesson{"ocp"}, stubLesson{"lsp"},
		stubLesson{"isp"}, stubLesson{"dip"},
	}

	t.Run("one to one", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, c.CrossCheck(full))
	})

	t.Run("missing lesson", func(t *testing.T) {
		t.Parallel()
		err := c.CrossCheck(full[:4])
		require.ErrorContains(t, err, `principle "dip" has no registered lesson`)
	})

	t.Run("orphan lesson", func(t *testing.T) {
		t.Parallel()
		err := c.CrossCheck(append(full[:5:5], stubLesson{"grasp"}))
		require.ErrorContains(t, err, `lesson "grasp" has no manifest entry`)
	})

	t.Run("duplicate lesson", func(t *testing.T) {
		t.Parallel()
		err := c.CrossCheck(append(full[:5:5], stubLesson{"srp"}))
		require.ErrorContains(t, err, "duplicate lesson")
	})
}

func TestCurriculum_Versions(t *testing.T) {
	t.Parallel()

	c, err := Load()
	require.NoError(t, err)

	for _, p := range c.All() {
		assert.NotNil(t, p.Version, p.Slug)
		assert.GreaterOrEqual(t, p.Version.Major(), uint64(1), p.Slug)
	}
}
