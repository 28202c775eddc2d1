package tui

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

// Marks maps engine marks to the symbols shown on screen.
type Marks struct {
	First  string
	Second string
}

func DefaultMarks() Marks {
	return Marks{First: string(entity.PlayerX), Second: string(entity.PlayerO)}
}

func (that Marks) Symbol(mark entity.Mark) string {
	switch mark {
	case entity.PlayerX:
		return that.First
	case entity.PlayerO:
		return that.Second
	default:
		return " "
	}
}

// StatusLine - "Winner: X", "Draw" or "Next player: O".
func StatusLine(status entity.Status, marks Marks) string {
	switch {
	case status.Winner != entity.EmptyCell:
		return "Winner: " + marks.Symbol(status.Winner)
	case status.IsDraw:
		return "Draw"
	default:
		return "Next player: " + marks.Symbol(status.NextPlayer)
	}
}

// MoveLabel - label of the history entry that jumps to step.
func MoveLabel(step int, moves []entity.Move) string {
	for _, move := range moves {
		if move.Step == step {
			return fmt.Sprintf("Go to move #%d (%d,%d)", move.Step, move.Row, move.Col)
		}
	}

	return "Go to game start"
}

// RenderBoard - plain text board, one row per line.
func RenderBoard(board entity.Board, marks Marks) string {
	var b strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			b.WriteString("---+---+---\n")
		}

		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			cells[col] = " " + marks.Symbol(board[row*3+col]) + " "
		}

		b.WriteString(strings.Join(cells, "|"))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderMoves - numbered history list, marking the current step.
func RenderMoves(status entity.Status) string {
	var b strings.Builder

	for step := 0; step < status.Steps; step++ {
		pointer := "  "
		if step == status.Step {
			pointer = "> "
		}

		fmt.Fprintf(&b, "%s%d. %s\n", pointer, step, MoveLabel(step, status.Moves))
	}

	return b.String()
}
