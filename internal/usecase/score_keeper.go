package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const saveTimeout = 5 * time.Second

type scoreRepo interface {
	Get(ctx context.Context) (entity.ScoreTally, error)
	Save(ctx context.Context, tally entity.ScoreTally) error
	Delete(ctx context.Context) error
}

// ScoreKeeper holds the tally in memory and writes it through to the repository.
// Storage failures are logged and never reach the game.
type ScoreKeeper struct {
	logger *slog.Logger
	repo   scoreRepo

	tally entity.ScoreTally
}

func NewScoreKeeper(logger *slog.Logger, repo scoreRepo) *ScoreKeeper {
	return &ScoreKeeper{
		logger: logger.With("component", "scores"),
		repo:   repo,
	}
}

// Load - reads the stored tally. Missing or unreadable data counts as zero.
func (that *ScoreKeeper) Load(ctx context.Context) entity.ScoreTally {
	log := that.logger.With("method", "Load")

	tally, err := that.repo.Get(ctx)
	switch {
	case err == nil:
	case errors.Is(err, apperror.ErrScoresNotFound):
		log.Debug("no stored scores, starting from zero")
	case errors.Is(err, apperror.ErrMalformedScores):
		log.Warn("stored scores are malformed, starting from zero", "error", err)
	default:
		log.Error("failed to load scores, starting from zero", "error", err)
	}

	if err != nil {
		tally = entity.ScoreTally{}
	}
	that.tally = tally

	return tally
}

func (that *ScoreKeeper) RecordWin(mark entity.Mark) {
	that.record(entity.Outcome{Status: entity.StatusWon, Winner: mark})
}

func (that *ScoreKeeper) RecordTie() {
	that.record(entity.Outcome{Status: entity.StatusTied})
}

// Clear - removes the stored record and zeroes the tally.
func (that *ScoreKeeper) Clear(ctx context.Context) error {
	if err := that.repo.Delete(ctx); err != nil {
		return fmt.Errorf("failed to clear scores: %w", err)
	}

	that.tally = entity.ScoreTally{}
	that.logger.Info("scores cleared")

	return nil
}

func (that *ScoreKeeper) Tally() entity.ScoreTally {
	return that.tally
}

func (that *ScoreKeeper) record(outcome entity.Outcome) {
	that.tally = that.tally.Add(outcome)

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := that.repo.Save(ctx, that.tally); err != nil {
		that.logger.Error("failed to save scores", "error", err)
		return
	}

	that.logger.Info("scores updated", "x", that.tally.X, "o", that.tally.O, "ties", that.tally.Ties)
}
