package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

const BoardSize = 9

type Mark string

const (
	Empty   Mark = ""
	PlayerX Mark = "X"
	PlayerO Mark = "O"
)

// Opponent - returns the mark that plays after m.
func (m Mark) Opponent() Mark {
	if m == PlayerX {
		return PlayerO
	}
	return PlayerX
}

type Mode string

const (
	PlayerVsPlayer   Mode = "pvp"
	PlayerVsComputer Mode = "pvc"
)

// ParseMode - accepts "pvp" or "pvc", case-insensitive.
func ParseMode(value string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(value))); mode {
	case PlayerVsPlayer, PlayerVsComputer:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownMode, value)
	}
}

func (m Mode) String() string {
	if m == PlayerVsComputer {
		return "Player vs Computer"
	}
	return "Player vs Player"
}

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusTied       Status = "tied"
)

// WinCombos - rows, then columns, then diagonals. The scan order matters for CheckOutcome.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Board [BoardSize]Mark

func (b Board) IsEmpty(cell int) bool {
	return cell >= 0 && cell < BoardSize && b[cell] == Empty
}

func (b Board) IsFull() bool {
	for _, cell := range b {
		if cell == Empty {
			return false
		}
	}
	return true
}

// EmptyCells - indexes of free cells in ascending order.
func (b Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range b {
		if cell == Empty {
			cells = append(cells, i)
		}
	}
	return cells
}

type Move struct {
	Position int  `json:"position"`
	Mark     Mark `json:"mark"`
}

type Outcome struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
	Combo  [3]int `json:"combo"`
}

func (o Outcome) IsDecided() bool {
	return o.Status == StatusWon || o.Status == StatusTied
}

// HasCell - reports whether cell belongs to the winning combo.
func (o Outcome) HasCell(cell int) bool {
	if o.Status != StatusWon {
		return false
	}
	for _, c := range o.Combo {
		if c == cell {
			return true
		}
	}
	return false
}

// CheckOutcome - determines the game result from the board alone.
func CheckOutcome(board Board) Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != Empty && a == b && b == c {
			return Outcome{Status: StatusWon, Winner: a, Combo: combo}
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return Outcome{Status: StatusInProgress}
	}

	return Outcome{Status: StatusTied}
}
