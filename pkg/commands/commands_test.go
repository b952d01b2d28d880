package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goprinciples/solid/internal/config"
	"github.com/goprinciples/solid/pkg/logger"
)

// execute runs cmd with args and returns its combined output.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return buf.String(), err
}

func TestList(t *testing.T) {
	t.Parallel()

	cmds := New(logger.Nop(), nil)
	out, err := execute(t, cmds.List())
	require.NoError(t, err)

	for _, want := range []string{
		"srp", "ocp", "lsp", "isp", "dip",
		"Single Responsibility Principle",
		"Dependency Inversion Principle",
	} {
		assert.Contains(t, out, want)
	}
}

func TestShow(t *testing.T) {
	t.Parallel()

	t.Run("by slug", func(t *testing.T) {
		t.Parallel()

		cmds := New(logger.Nop(), nil)
		out, err := execute(t, cmds.Show(), "lsp")
		require.NoError(t, err)
		assert.Contains(t, out, "Liskov Substitution Principle")
		assert.Contains(t, out, "Definition: subtypes must be usable")
		assert.Contains(t, out, "principles/lsp")
	})

	t.Run("by letter", func(t *testing.T) {
		t.Parallel()

		cmds := New(logger.Nop(), nil)
		out, err := execute(t, cmds.Show(), "O")
		require.NoError(t, err)
		assert.Contains(t, out, "Open/Closed Principle")
	})

	t.Run("with demo", func(t *testing.T) {
		t.Parallel()

		cmds := New(logger.Test(t), nil)
		out, err := execute(t, cmds.Show(), "srp", "--demo")
		require.NoError(t, err)
		assert.Contains(t, out, "--- Single Responsibility Principle ---")
		assert.Contains(t, out, "Archived 1 book(s)")
	})

	t.Run("unknown argument", func(t *testing.T) {
		t.Parallel()

		cmds := New(logger.Nop(), nil)
		_, err := execute(t, cmds.Show(), "grasp")
		require.ErrorContains(t, err, "principle not found")
	})
}

func TestVerify(t *testing.T) {
	t.Parallel()

	t.Run("repo readme passes", func(t *testing.T) {
		t.Parallel()

		cmds := New(logger.Nop(), nil)
		out, err := execute(t, cmds.Verify(), "--readme", "../../README.md")
		require.NoError(t, err)
		assert.Contains(t, out, "PASS")
		assert.NotContains(t, out, "FAIL")
	})

	t.Run("json output", func(t *testing.T) {
		t.Parallel()

		cmds := New(logger.Nop(), nil)
		out, err := execute(t, cmds.Verify(), "--readme", "../../README.md", "--json")
		require.NoError(t, err)
		assert.Contains(t, out, `"findings"`)
	})

	t.Run("failing document exits non-zero", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "README.md")
		require.NoError(t, os.WriteFile(path, []byte("# Not the course\n"), 0o600))

		cmds := New(logger.Nop(), nil)
		out, err := execute(t, cmds.Verify(), "--readme", path)
		require.ErrorIs(t, err, ErrVerificationFailed)
		assert.Contains(t, out, "FAIL")
	})

	t.Run("missing document", func(t *testing.T) {
		t.Parallel()

		cmds := New(logger.Nop(), nil)
		_, err := execute(t, cmds.Verify(), "--readme", filepath.Join(t.TempDir(), "absent.md"))
		require.ErrorContains(t, err, "failed to read document")
	})

	t.Run("default path comes from config", func(t *testing.T) {
		t.Parallel()

		cmds := New(logger.Nop(), &config.Config{ReadmePath: "custom/README.md"})
		cmd := cmds.Verify()
		assert.Equal(t, "custom/README.md", cmd.Flag("readme").DefValue)
	})
}

func TestVersion(t *testing.T) {
	t.Parallel()

	cmds := New(logger.Nop(), nil)
	out, err := execute(t, cmds.Version())
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
}
