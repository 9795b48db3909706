package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fileConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Mode: "pvp",
		Storage: config.Storage{
			Driver: config.DriverFile,
			Key:    "xo_scores",
			File:   filepath.Join(t.TempDir(), "scores.json"),
		},
	}
}

func TestOpenScoreRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		conf := &config.Config{Storage: config.Storage{Driver: config.DriverMemory}}

		repo, closeRepo, err := OpenScoreRepository(ctx, newLogger(), conf)

		require.NoError(t, err)
		defer closeRepo()
		require.NoError(t, repo.Save(ctx, entity.ScoreTally{X: 1}))
	})

	t.Run("Redis", func(t *testing.T) {
		// Given: a running Redis
		mini := miniredis.RunT(t)
		conf := &config.Config{
			Storage: config.Storage{Driver: config.DriverRedis, Key: "scores:test"},
			Redis:   config.Redis{Host: mini.Host(), Port: mini.Port()},
		}

		// When: opening the repository and saving
		repo, closeRepo, err := OpenScoreRepository(ctx, newLogger(), conf)
		require.NoError(t, err)
		defer closeRepo()
		require.NoError(t, repo.Save(ctx, entity.ScoreTally{O: 2}))

		// Then: the record lands under the configured key
		stored, err := mini.Get("scores:test")
		require.NoError(t, err)
		assert.JSONEq(t, `{"x":0,"o":2,"t":0}`, stored)
	})

	t.Run("Redis without an address", func(t *testing.T) {
		conf := &config.Config{Storage: config.Storage{Driver: config.DriverRedis}}

		_, closeRepo, err := OpenScoreRepository(ctx, newLogger(), conf)

		require.ErrorIs(t, err, apperror.ErrAddrNotFound)
		closeRepo()
	})

	t.Run("Unknown driver", func(t *testing.T) {
		conf := &config.Config{Storage: config.Storage{Driver: "sqlite"}}

		_, _, err := OpenScoreRepository(ctx, newLogger(), conf)

		require.ErrorIs(t, err, apperror.ErrUnknownStorageDriver)
	})
}

func TestRunApp(t *testing.T) {
	t.Run("Plays a game and keeps the score between runs", func(t *testing.T) {
		// Given: file storage in a temp dir
		conf := fileConfig(t)

		// When: X wins one game
		out := &bytes.Buffer{}
		err := RunApp(newLogger(), conf, strings.NewReader("1\n4\n2\n5\n3\nquit\n"), out)

		// Then: the win is shown
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Winner: ")

		// When: the scores are shown on a later run
		scores := &bytes.Buffer{}
		require.NoError(t, ShowScores(context.Background(), newLogger(), conf, scores))

		// Then: the win was persisted
		assert.Equal(t, "X: 1\nO: 0\nTies: 0\n", scores.String())

		// When: the scores are cleared
		require.NoError(t, ClearScores(context.Background(), newLogger(), conf))

		// Then: they read back as zero
		scores.Reset()
		require.NoError(t, ShowScores(context.Background(), newLogger(), conf, scores))
		assert.Equal(t, "X: 0\nO: 0\nTies: 0\n", scores.String())
	})

	t.Run("Starts in the configured mode", func(t *testing.T) {
		conf := fileConfig(t)
		conf.Mode = "pvc"

		out := &bytes.Buffer{}
		require.NoError(t, RunApp(newLogger(), conf, strings.NewReader("quit\n"), out))

		assert.Contains(t, out.String(), "Mode: Player vs Computer")
	})

	t.Run("Rejects an unknown mode", func(t *testing.T) {
		conf := fileConfig(t)
		conf.Mode = "online"

		err := RunApp(newLogger(), conf, strings.NewReader(""), io.Discard)

		require.ErrorIs(t, err, apperror.ErrUnknownMode)
	})
}
