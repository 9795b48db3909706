package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/pkg/random/mocks"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.Empty
)

// cyclingRandom - deterministic source that always stays within [0, n).
type cyclingRandom struct {
	next int
}

func (that *cyclingRandom) Intn(n int) int {
	value := that.next % n
	that.next++
	return value
}

func TestChooseComputerCell(t *testing.T) {
	t.Run("Takes the win before blocking", func(t *testing.T) {
		// Given: O can win at 5 and X threatens 2
		board := entity.Board{
			x, x, e,
			o, o, e,
			e, e, x,
		}

		// When: choosing a cell
		cell := chooseComputerCell(board, mocks.NewMockRandom())

		// Then: O wins
		assert.Equal(t, 5, cell)
	})

	t.Run("Blocks X when there is no win", func(t *testing.T) {
		// Given: X threatens 2, O has only the center
		board := entity.Board{
			x, x, e,
			e, o, e,
			e, e, e,
		}

		// When: choosing a cell
		cell := chooseComputerCell(board, mocks.NewMockRandom())

		// Then: O blocks at 2
		assert.Equal(t, 2, cell)
	})

	t.Run("Wins rather than blocking several threats", func(t *testing.T) {
		// Given: X threatens 3, 5 and 7 while O can finish column 1
		board := entity.Board{
			x, o, x,
			e, o, e,
			x, e, x,
		}

		// When: choosing a cell
		cell := chooseComputerCell(board, mocks.NewMockRandom())

		// Then: O wins at 7
		assert.Equal(t, 7, cell)
	})

	t.Run("Takes the center", func(t *testing.T) {
		// Given: X took a corner
		board := entity.Board{x}
		rnd := mocks.NewMockRandom()

		// When: choosing a cell
		cell := chooseComputerCell(board, rnd)

		// Then: O takes the center without consulting the random source
		assert.Equal(t, 4, cell)
		assert.Empty(t, rnd.Calls)
	})

	t.Run("Picks a random free corner", func(t *testing.T) {
		// Given: X took the center
		board := entity.Board{e, e, e, e, x, e, e, e, e}
		rnd := mocks.NewMockRandom(2)

		// When: choosing a cell
		cell := chooseComputerCell(board, rnd)

		// Then: the third of four free corners is chosen
		assert.Equal(t, 6, cell)
		assert.Equal(t, []int{4}, rnd.Calls)
	})

	t.Run("Skips occupied corners", func(t *testing.T) {
		// Given: center and two corners taken, no threats
		board := entity.Board{
			x, e, e,
			e, o, e,
			e, e, x,
		}
		rnd := mocks.NewMockRandom(1)

		// When: choosing a cell
		cell := chooseComputerCell(board, rnd)

		// Then: the second of the free corners 2 and 6 is chosen
		assert.Equal(t, 6, cell)
		assert.Equal(t, []int{2}, rnd.Calls)
	})

	t.Run("Falls back to a random free edge", func(t *testing.T) {
		// Given: corners and center are full and no line can be completed
		board := entity.Board{
			x, e, o,
			o, x, x,
			x, e, o,
		}
		rnd := mocks.NewMockRandom(1)

		// When: choosing a cell
		cell := chooseComputerCell(board, rnd)

		// Then: the second of the free cells 1 and 7 is chosen
		assert.Equal(t, 7, cell)
		assert.Equal(t, []int{2}, rnd.Calls)
	})

	t.Run("Never picks an occupied cell", func(t *testing.T) {
		// Given: every board reachable by a random legal game
		for seed := 0; seed < 50; seed++ {
			var board entity.Board
			rnd := &cyclingRandom{next: seed}
			mark := x

			for !board.IsFull() && !entity.CheckOutcome(board).IsDecided() {
				// When: choosing a cell for either side
				cell := chooseComputerCell(board, rnd)

				// Then: the cell was free
				if !assert.True(t, board.IsEmpty(cell), "seed %d cell %d", seed, cell) {
					return
				}
				board[cell] = mark
				mark = mark.Opponent()
			}
		}
	})
}

func TestFindWinningCell(t *testing.T) {
	board := entity.Board{
		o, e, e,
		e, o, e,
		e, e, e,
	}

	cell, ok := findWinningCell(board, o)
	assert.True(t, ok)
	assert.Equal(t, 8, cell)

	_, ok = findWinningCell(board, x)
	assert.False(t, ok)

	// the board passed in is never modified
	assert.Equal(t, entity.Board{o, e, e, e, o, e, e, e, e}, board)
}
