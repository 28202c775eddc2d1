package apperror

import (
	"errors"
	"fmt"
)

// ErrIllegalMove covers every move rejected by the rules: an occupied cell or a decided game.
var ErrIllegalMove = errors.New("illegal move")

var (
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrIllegalMove)
	ErrGameFinished = fmt.Errorf("%w: game is already finished", ErrIllegalMove)

	ErrInvalidCell     = errors.New("invalid cell index")
	ErrInvalidStep     = errors.New("invalid step index")
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidScript   = errors.New("invalid replay script")
)
