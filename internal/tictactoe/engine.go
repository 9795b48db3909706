package tictactoe

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/pkg/random"
)

// Renderer - observer notified after every state change of the engine.
type Renderer interface {
	Render(snapshot Snapshot)
}

// Scorer - receives decided games. It never owns engine state.
type Scorer interface {
	RecordWin(mark entity.Mark)
	RecordTie()
}

// Snapshot - read-only view of the engine passed to renderers.
type Snapshot struct {
	GameID  string
	Board   entity.Board
	Current entity.Mark
	Mode    entity.Mode
	Outcome entity.Outcome
	Over    bool
}

type nopScorer struct{}

func (nopScorer) RecordWin(entity.Mark) {}
func (nopScorer) RecordTie()            {}

// GameEngine owns one game of tic-tac-toe. Invalid requests are ignored
// rather than reported; callers observe only the lack of a state change.
// It is not safe for concurrent use.
type GameEngine struct {
	logger *slog.Logger
	scorer Scorer
	random random.Random

	renderers []Renderer

	gameID  string
	board   entity.Board
	current entity.Mark
	over    bool
	history []entity.Move
	mode    entity.Mode
}

func NewGameEngine(logger *slog.Logger, scorer Scorer, rnd random.Random) *GameEngine {
	if scorer == nil {
		scorer = nopScorer{}
	}

	engine := &GameEngine{
		logger: logger.With("component", "engine"),
		scorer: scorer,
		random: rnd,
		mode:   entity.PlayerVsPlayer,
	}
	engine.clear()

	return engine
}

// Subscribe - adds a renderer. It is not notified until the next change.
func (that *GameEngine) Subscribe(renderer Renderer) {
	that.renderers = append(that.renderers, renderer)
}

// Reset - starts a new game in the current mode with X to move.
func (that *GameEngine) Reset() {
	that.clear()
	that.logger.Debug("game reset", "game_id", that.gameID, "mode", that.mode)
	that.notify()
}

// SetMode - switches between PvP and PvC, always starting a new game.
func (that *GameEngine) SetMode(mode entity.Mode) {
	that.mode = mode
	that.Reset()
}

// PlayMove - places the current player's mark. It reports whether the move was applied.
func (that *GameEngine) PlayMove(position int) bool {
	if that.over || !that.board.IsEmpty(position) {
		that.logger.Debug("move ignored", "game_id", that.gameID, "position", position, "over", that.over)
		return false
	}

	that.apply(position, that.current)

	return true
}

// ComputerMove - plays for O using the heuristic. It is a no-op on a finished or full board.
func (that *GameEngine) ComputerMove() (entity.Move, bool) {
	if that.over || that.board.IsFull() {
		return entity.Move{}, false
	}

	position := chooseComputerCell(that.board, that.random)
	that.apply(position, entity.PlayerO)

	return entity.Move{Position: position, Mark: entity.PlayerO}, true
}

// Undo - takes back the last move, or the last two in PvC mode.
func (that *GameEngine) Undo() bool {
	if len(that.history) == 0 || that.over {
		return false
	}

	that.pop()
	// right after the human's first move there is no reply to take back
	if that.mode == entity.PlayerVsComputer && len(that.history) > 0 {
		that.pop()
	}

	that.current = entity.PlayerX
	if n := len(that.history); n > 0 && that.history[n-1].Mark == entity.PlayerX {
		that.current = entity.PlayerO
	}
	that.over = false

	that.logger.Debug("move undone", "game_id", that.gameID, "history", len(that.history))
	that.notify()

	return true
}

// CheckOutcome - evaluates the board without touching it.
func (that *GameEngine) CheckOutcome() entity.Outcome {
	return entity.CheckOutcome(that.board)
}

func (that *GameEngine) Board() entity.Board {
	return that.board
}

func (that *GameEngine) Current() entity.Mark {
	return that.current
}

func (that *GameEngine) Mode() entity.Mode {
	return that.mode
}

func (that *GameEngine) IsOver() bool {
	return that.over
}

func (that *GameEngine) GameID() string {
	return that.gameID
}

func (that *GameEngine) History() []entity.Move {
	history := make([]entity.Move, len(that.history))
	copy(history, that.history)
	return history
}

func (that *GameEngine) Snapshot() Snapshot {
	return Snapshot{
		GameID:  that.gameID,
		Board:   that.board,
		Current: that.current,
		Mode:    that.mode,
		Outcome: that.CheckOutcome(),
		Over:    that.over,
	}
}

func (that *GameEngine) clear() {
	that.gameID = uuid.NewString()
	that.board = entity.Board{}
	that.current = entity.PlayerX
	that.over = false
	that.history = nil
}

func (that *GameEngine) apply(position int, mark entity.Mark) {
	that.board[position] = mark
	that.history = append(that.history, entity.Move{Position: position, Mark: mark})

	that.logger.Debug("move played", "game_id", that.gameID, "position", position, "mark", mark)

	outcome := that.CheckOutcome()
	switch outcome.Status {
	case entity.StatusWon:
		that.over = true
		that.logger.Info("game won", "game_id", that.gameID, "winner", outcome.Winner, "combo", outcome.Combo)
		that.scorer.RecordWin(outcome.Winner)
	case entity.StatusTied:
		that.over = true
		that.logger.Info("game tied", "game_id", that.gameID)
		that.scorer.RecordTie()
	default:
		that.current = mark.Opponent()
	}

	that.notify()
}

func (that *GameEngine) pop() {
	last := that.history[len(that.history)-1]
	that.history = that.history[:len(that.history)-1]
	that.board[last.Position] = entity.Empty
}

func (that *GameEngine) notify() {
	snapshot := that.Snapshot()
	for _, renderer := range that.renderers {
		renderer.Render(snapshot)
	}
}
