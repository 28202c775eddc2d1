package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

const boardWidth = 3

// WinCombos - every line that wins the game, checked in this order.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Winner - returns the mark of the first complete line, or entity.EmptyCell.
func Winner(board entity.Board) entity.Mark {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	return entity.EmptyCell
}

// IsDraw - the board is full and nobody has three in a row.
func IsDraw(board entity.Board) bool {
	return board.IsFull() && Winner(board) == entity.EmptyCell
}

func Outcome(board entity.Board) entity.Outcome {
	switch {
	case Winner(board) != entity.EmptyCell:
		return entity.OutcomeWon
	case board.IsFull():
		return entity.OutcomeDrawn
	default:
		return entity.OutcomeInProgress
	}
}

// ValidateMove - checks if the move is valid and reports which rule it breaks.
func ValidateMove(board entity.Board, cell int) error {
	if cell < 0 || cell >= len(board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if Outcome(board) != entity.OutcomeInProgress {
		return apperror.ErrGameFinished
	}

	if board[cell] != entity.EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

func IsLegalMove(board entity.Board, cell int) bool {
	return ValidateMove(board, cell) == nil
}

// PlayerForStep - X moves on even steps, O on odd ones.
func PlayerForStep(step int) entity.Mark {
	if step%2 == 0 {
		return entity.PlayerX
	}
	return entity.PlayerO
}

// Position - row and column of a cell index.
func Position(cell int) (int, int) {
	return cell / boardWidth, cell % boardWidth
}

// Cell - inverse of Position.
func Cell(row, col int) int {
	return row*boardWidth + col
}
