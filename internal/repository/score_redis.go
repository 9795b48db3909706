package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type redisScores struct {
	client *redis.Client
	key    string
}

func NewRedisScoreRepository(client *redis.Client, key string) ScoreRepository {
	if key == "" {
		key = DefaultScoresKey
	}

	return &redisScores{
		client: client,
		key:    key,
	}
}

func (that *redisScores) Get(ctx context.Context) (entity.ScoreTally, error) {
	response, err := that.client.Get(ctx, that.key).Bytes()

	if errors.Is(err, redis.Nil) {
		return entity.ScoreTally{}, apperror.ErrScoresNotFound
	}

	if err != nil {
		return entity.ScoreTally{}, fmt.Errorf("failed to get scores: %w", err)
	}

	return decodeScores(response)
}

func (that *redisScores) Save(ctx context.Context, tally entity.ScoreTally) error {
	scoresJSON, err := encodeScores(tally)
	if err != nil {
		return err
	}

	if err = that.client.Set(ctx, that.key, scoresJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set scores: %w", err)
	}

	return nil
}

func (that *redisScores) Delete(ctx context.Context) error {
	if err := that.client.Del(ctx, that.key).Err(); err != nil {
		return fmt.Errorf("failed to delete scores: %w", err)
	}

	return nil
}
