package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	t.Setenv("TICTACTOE_STORAGE_DRIVER", "file")
	t.Setenv("TICTACTOE_STORAGE_FILE", filepath.Join(t.TempDir(), "scores.json"))

	out := &bytes.Buffer{}
	cmd := Root()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yml")}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestRoot(t *testing.T) {
	t.Run("Plays with flag overrides", func(t *testing.T) {
		// When: starting in pvc mode with no delay
		output, err := execute(t, "quit\n", "--mode", "pvc", "--delay", "0s")

		// Then: the board is shown in the requested mode
		require.NoError(t, err)
		assert.Contains(t, output, "Mode: Player vs Computer")
	})

	t.Run("Unknown mode fails", func(t *testing.T) {
		_, err := execute(t, "", "--mode", "chess")

		require.Error(t, err)
	})

	t.Run("Scores are shown and cleared", func(t *testing.T) {
		output, err := execute(t, "", "scores")
		require.NoError(t, err)
		assert.Equal(t, "X: 0\nO: 0\nTies: 0\n", output)

		output, err = execute(t, "", "clear-scores")
		require.NoError(t, err)
		assert.Equal(t, "Scores cleared.\n", output)
	})

	t.Run("Rejects extra arguments", func(t *testing.T) {
		_, err := execute(t, "", "extra")

		require.Error(t, err)
	})
}
