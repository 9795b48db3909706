package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const spinnerCharSet = 14

var helpText = heredoc.Doc(`
	Commands:
	  1-9      place your mark (cells are numbered left to right, top to bottom)
	  undo     take back the last move (and the computer's reply in pvc mode)
	  reset    start a new game
	  pvp      play against another human
	  pvc      play against the computer
	  scores   show the score line
	  clear    clear the saved scores
	  help     show this help
	  quit     leave the game
`)

type engine interface {
	PlayMove(position int) bool
	ComputerMove() (entity.Move, bool)
	Undo() bool
	Reset()
	SetMode(mode entity.Mode)
	Mode() entity.Mode
	IsOver() bool
	Snapshot() tictactoe.Snapshot
}

type scoreKeeper interface {
	Clear(ctx context.Context) error
}

// Session reads commands line by line and drives the engine. One command
// is handled to completion before the next is read.
type Session struct {
	logger   *slog.Logger
	engine   engine
	scores   scoreKeeper
	renderer *Renderer
	out      io.Writer

	computerDelay time.Duration
}

func NewSession(logger *slog.Logger, engine engine, scores scoreKeeper, renderer *Renderer, out io.Writer, computerDelay time.Duration) *Session {
	return &Session{
		logger:        logger.With("component", "terminal"),
		engine:        engine,
		scores:        scores,
		renderer:      renderer,
		out:           out,
		computerDelay: computerDelay,
	}
}

// Run - plays until "quit", end of input or ctx cancellation.
func (that *Session) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	that.print(helpText)
	that.renderer.Render(that.engine.Snapshot())
	that.prompt()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return readFailure(readErr)
			}

			if quit := that.handle(ctx, line); quit || ctx.Err() != nil {
				return nil
			}
			that.prompt()
		}
	}
}

// handle - runs one command and reports whether the session should end.
func (that *Session) handle(ctx context.Context, line string) bool {
	command := strings.ToLower(strings.TrimSpace(line))
	log := that.logger.With("command", command)

	if cell, err := strconv.Atoi(command); err == nil {
		that.play(ctx, cell-1)
		return false
	}

	switch command {
	case "":
	case "undo", "u":
		if !that.engine.Undo() {
			log.Debug("nothing to undo")
		}
	case "reset", "r":
		that.engine.Reset()
	case "pvp":
		that.engine.SetMode(entity.PlayerVsPlayer)
	case "pvc":
		that.engine.SetMode(entity.PlayerVsComputer)
	case "scores", "s":
		that.renderer.RenderScores()
	case "clear":
		if err := that.scores.Clear(ctx); err != nil {
			log.Error("failed to clear scores", "error", err)
			that.print("Could not clear the scores.\n")
			break
		}
		that.renderer.Render(that.engine.Snapshot())
	case "help", "h", "?":
		that.print(helpText)
	case "quit", "exit", "q":
		return true
	default:
		that.print(fmt.Sprintf("Unknown command %q, type help for the list.\n", command))
	}

	return false
}

// play - a human move, followed by the computer's reply in PvC mode.
func (that *Session) play(ctx context.Context, position int) {
	if !that.engine.PlayMove(position) {
		return
	}

	if that.engine.Mode() != entity.PlayerVsComputer || that.engine.IsOver() {
		return
	}

	if !that.think(ctx) {
		return
	}

	that.engine.ComputerMove()
}

// think - waits the configured delay with a spinner. It reports false when ctx ended first.
func (that *Session) think(ctx context.Context) bool {
	if that.computerDelay <= 0 {
		return true
	}

	s := spinner.New(spinner.CharSets[spinnerCharSet], 100*time.Millisecond, spinner.WithWriter(that.out))
	s.Suffix = " computer is thinking..."
	s.Start()
	defer s.Stop()

	timer := time.NewTimer(that.computerDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (that *Session) prompt() {
	that.print("> ")
}

func (that *Session) print(text string) {
	_, _ = io.WriteString(that.out, text)
}

func readFailure(readErr <-chan error) error {
	select {
	case err := <-readErr:
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	default:
	}

	return nil
}
