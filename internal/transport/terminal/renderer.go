package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type tallySource interface {
	Tally() entity.ScoreTally
}

// Renderer draws the board, the status line and the score line after every engine change.
type Renderer struct {
	out    io.Writer
	scores tallySource

	xColor    *color.Color
	oColor    *color.Color
	hintColor *color.Color
	winColor  *color.Color
}

func NewRenderer(out io.Writer, scores tallySource, colored bool) *Renderer {
	renderer := &Renderer{
		out:       out,
		scores:    scores,
		xColor:    color.New(color.FgCyan, color.Bold),
		oColor:    color.New(color.FgMagenta, color.Bold),
		hintColor: color.New(color.Faint),
		winColor:  color.New(color.FgYellow, color.Bold),
	}

	for _, c := range []*color.Color{renderer.xColor, renderer.oColor, renderer.hintColor, renderer.winColor} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return renderer
}

func (that *Renderer) Render(snapshot tictactoe.Snapshot) {
	var sb strings.Builder

	sb.WriteString("\n")
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}
		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteString("|")
			}
			sb.WriteString(that.cell(snapshot, row*3+col))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(that.status(snapshot))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Mode: %s\n", snapshot.Mode)
	sb.WriteString(that.scoreLine())
	sb.WriteString("\n")

	_, _ = io.WriteString(that.out, sb.String())
}

// RenderScores - prints only the score line.
func (that *Renderer) RenderScores() {
	_, _ = fmt.Fprintln(that.out, that.scoreLine())
}

func (that *Renderer) cell(snapshot tictactoe.Snapshot, index int) string {
	mark := snapshot.Board[index]
	if mark == entity.Empty {
		// cells are numbered from 1 for the player
		return " " + that.hintColor.Sprint(index+1) + " "
	}

	text := that.markColor(mark).Sprint(string(mark))
	if snapshot.Outcome.HasCell(index) {
		return that.winColor.Sprint("[") + text + that.winColor.Sprint("]")
	}

	return " " + text + " "
}

func (that *Renderer) status(snapshot tictactoe.Snapshot) string {
	switch snapshot.Outcome.Status {
	case entity.StatusWon:
		return "Winner: " + that.markColor(snapshot.Outcome.Winner).Sprint(string(snapshot.Outcome.Winner))
	case entity.StatusTied:
		return "Result: It's a tie!"
	default:
		return "Current: " + that.markColor(snapshot.Current).Sprint(string(snapshot.Current))
	}
}

func (that *Renderer) scoreLine() string {
	tally := that.scores.Tally()
	return fmt.Sprintf("Score  X: %d  O: %d  Ties: %d", tally.X, tally.O, tally.Ties)
}

func (that *Renderer) markColor(mark entity.Mark) *color.Color {
	if mark == entity.PlayerO {
		return that.oColor
	}
	return that.xColor
}
