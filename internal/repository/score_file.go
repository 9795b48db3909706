package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// DefaultScoresFile - $XDG_DATA_HOME/tictactoe/scores.json, creating the directory if needed.
func DefaultScoresFile() (string, error) {
	path, err := xdg.DataFile(filepath.Join("tictactoe", "scores.json"))
	if err != nil {
		return "", fmt.Errorf("could not resolve data file: %w", err)
	}

	return path, nil
}

// fileScores - a JSON object of key to record, so several namespaces can share one file.
type fileScores struct {
	path string
	key  string
}

func NewFileScoreRepository(path, key string) ScoreRepository {
	if key == "" {
		key = DefaultScoresKey
	}

	return &fileScores{
		path: path,
		key:  key,
	}
}

func (that *fileScores) Get(_ context.Context) (entity.ScoreTally, error) {
	records, err := that.load()
	if err != nil {
		return entity.ScoreTally{}, err
	}

	record, ok := records[that.key]
	if !ok {
		return entity.ScoreTally{}, apperror.ErrScoresNotFound
	}

	return decodeScores(record)
}

func (that *fileScores) Save(_ context.Context, tally entity.ScoreTally) error {
	records, err := that.load()
	if err != nil && !errors.Is(err, apperror.ErrScoresNotFound) && !errors.Is(err, apperror.ErrMalformedScores) {
		return err
	}
	if records == nil {
		records = make(map[string]json.RawMessage)
	}

	data, err := encodeScores(tally)
	if err != nil {
		return err
	}
	records[that.key] = data

	return that.store(records)
}

func (that *fileScores) Delete(_ context.Context) error {
	records, err := that.load()
	if errors.Is(err, apperror.ErrScoresNotFound) {
		return nil
	}
	if err != nil && !errors.Is(err, apperror.ErrMalformedScores) {
		return err
	}

	delete(records, that.key)

	return that.store(records)
}

func (that *fileScores) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperror.ErrScoresNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read scores file: %w", err)
	}

	var records map[string]json.RawMessage
	if err = json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedScores, err)
	}

	return records, nil
}

// store - replaces the file through a temp file and rename.
func (that *fileScores) store(records map[string]json.RawMessage) error {
	if records == nil {
		records = make(map[string]json.RawMessage)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal scores file: %w", err)
	}

	dir := filepath.Dir(that.path)
	if err = os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("failed to create scores directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".scores-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp scores file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write scores file: %w", err)
	}
	if err = tmp.Chmod(filePermissions); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to chmod scores file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close scores file: %w", err)
	}

	if err = os.Rename(tmp.Name(), that.path); err != nil {
		return fmt.Errorf("failed to replace scores file: %w", err)
	}

	return nil
}
