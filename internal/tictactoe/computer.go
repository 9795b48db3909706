package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/pkg/random"
)

const centerCell = 4

var cornerCells = [4]int{0, 2, 6, 8}

// chooseComputerCell - picks O's cell: win, block, center, random corner, random cell.
// The board must have at least one empty cell.
func chooseComputerCell(board entity.Board, rnd random.Random) int {
	if cell, ok := findWinningCell(board, entity.PlayerO); ok {
		return cell
	}

	if cell, ok := findWinningCell(board, entity.PlayerX); ok {
		return cell
	}

	if board.IsEmpty(centerCell) {
		return centerCell
	}

	corners := make([]int, 0, len(cornerCells))
	for _, cell := range cornerCells {
		if board.IsEmpty(cell) {
			corners = append(corners, cell)
		}
	}
	if len(corners) > 0 {
		return corners[rnd.Intn(len(corners))]
	}

	available := board.EmptyCells()
	return available[rnd.Intn(len(available))]
}

// findWinningCell - first empty cell, in index order, that completes a triple for mark.
func findWinningCell(board entity.Board, mark entity.Mark) (int, bool) {
	for _, cell := range board.EmptyCells() {
		board[cell] = mark
		outcome := entity.CheckOutcome(board)
		board[cell] = entity.Empty

		if outcome.Status == entity.StatusWon && outcome.Winner == mark {
			return cell, true
		}
	}

	return 0, false
}
