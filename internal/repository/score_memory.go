package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// MemoryScores keeps encoded records in a map, so decoding behaves as it does for the other stores.
type MemoryScores struct {
	mu      sync.RWMutex
	key     string
	records map[string][]byte
}

func NewMemoryScoreRepository(key string) *MemoryScores {
	if key == "" {
		key = DefaultScoresKey
	}

	return &MemoryScores{
		key:     key,
		records: make(map[string][]byte),
	}
}

// SetRaw stores data as is, for seeding corrupt records in tests.
func (that *MemoryScores) SetRaw(data []byte) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.records[that.key] = data
}

func (that *MemoryScores) Get(_ context.Context) (entity.ScoreTally, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	data, ok := that.records[that.key]
	if !ok {
		return entity.ScoreTally{}, apperror.ErrScoresNotFound
	}

	return decodeScores(data)
}

func (that *MemoryScores) Save(_ context.Context, tally entity.ScoreTally) error {
	data, err := encodeScores(tally)
	if err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.records[that.key] = data

	return nil
}

func (that *MemoryScores) Delete(_ context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.records, that.key)

	return nil
}
