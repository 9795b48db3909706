package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const DefaultScoresKey = "xo_scores"

// ScoreRepository - key-value storage for the score tally under one namespaced key.
// Get returns apperror.ErrScoresNotFound for a missing key and
// apperror.ErrMalformedScores for a record that cannot be decoded.
type ScoreRepository interface {
	Get(ctx context.Context) (entity.ScoreTally, error)
	Save(ctx context.Context, tally entity.ScoreTally) error
	Delete(ctx context.Context) error
}

// dbScores - stored record, {"x":0,"o":0,"t":0}. Missing fields decode as zero.
type dbScores struct {
	X int `json:"x"`
	O int `json:"o"`
	T int `json:"t"`
}

func encodeScores(tally entity.ScoreTally) ([]byte, error) {
	data, err := json.Marshal(dbScores{X: tally.X, O: tally.O, T: tally.Ties})
	if err != nil {
		return nil, fmt.Errorf("could not marshal scores: %w", err)
	}

	return data, nil
}

func decodeScores(data []byte) (entity.ScoreTally, error) {
	var record dbScores
	if err := json.Unmarshal(data, &record); err != nil {
		return entity.ScoreTally{}, fmt.Errorf("%w: %w", apperror.ErrMalformedScores, err)
	}

	tally := entity.ScoreTally{X: record.X, O: record.O, Ties: record.T}
	if !tally.IsValid() {
		return entity.ScoreTally{}, fmt.Errorf("%w: negative counter", apperror.ErrMalformedScores)
	}

	return tally, nil
}
