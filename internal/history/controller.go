package history

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

// Controller owns the snapshots of one game and the pointer to the current one.
// It is not safe for concurrent use.
type Controller struct {
	snapshots []entity.Snapshot
	step      int
}

func NewController() *Controller {
	controller := &Controller{}
	controller.Reset()

	return controller
}

// Reset - starts a new game from the empty board.
func (that *Controller) Reset() {
	that.snapshots = []entity.Snapshot{{}}
	that.step = 0
}

// SubmitMove - plays cell for the player whose turn it is at the current step.
// A rejected move leaves the controller untouched.
func (that *Controller) SubmitMove(cell int) (bool, entity.Status) {
	status, err := that.Play(cell)
	return err == nil, status
}

// JumpTo - moves the current step without touching the history.
func (that *Controller) JumpTo(step int) (bool, entity.Status) {
	status, err := that.Travel(step)
	return err == nil, status
}

// Play - same as SubmitMove, but reports why a move was rejected.
func (that *Controller) Play(cell int) (entity.Status, error) {
	current := that.snapshots[that.step]

	if err := tictactoe.ValidateMove(current.Board, cell); err != nil {
		return that.Status(), err
	}

	next := current.Board
	next[cell] = tictactoe.PlayerForStep(that.step)

	played := cell
	snapshot := entity.Snapshot{Board: next, Played: &played}
	checkTransition(current, snapshot)

	// drop the abandoned branch; the new slice never shares memory with the old one
	kept := that.step + 1
	snapshots := make([]entity.Snapshot, kept, kept+1)
	copy(snapshots, that.snapshots[:kept])

	that.snapshots = append(snapshots, snapshot)
	that.step = len(that.snapshots) - 1

	return that.Status(), nil
}

// Travel - same as JumpTo, but reports why a jump was rejected.
func (that *Controller) Travel(step int) (entity.Status, error) {
	if step < 0 || step >= len(that.snapshots) {
		return that.Status(), fmt.Errorf("%w: step %d, history has %d", apperror.ErrInvalidStep, step, len(that.snapshots))
	}

	that.step = step

	return that.Status(), nil
}

// Status - derived view of the current step. Nothing in it aliases controller state.
func (that *Controller) Status() entity.Status {
	board := that.snapshots[that.step].Board
	winner := tictactoe.Winner(board)

	moves := make([]entity.Move, 0, len(that.snapshots)-1)
	for step, snapshot := range that.snapshots {
		if !snapshot.HasMove() {
			continue
		}

		row, col := tictactoe.Position(*snapshot.Played)
		moves = append(moves, entity.Move{
			Step: step,
			Cell: *snapshot.Played,
			Row:  row,
			Col:  col,
		})
	}

	return entity.Status{
		Board:      board,
		Step:       that.step,
		Steps:      len(that.snapshots),
		Winner:     winner,
		IsDraw:     tictactoe.IsDraw(board),
		Outcome:    tictactoe.Outcome(board),
		NextPlayer: tictactoe.PlayerForStep(that.step),
		Moves:      moves,
	}
}

func (that *Controller) Step() int {
	return that.step
}

func (that *Controller) Len() int {
	return len(that.snapshots)
}

// History - deep copy of every snapshot.
func (that *Controller) History() []entity.Snapshot {
	snapshots := make([]entity.Snapshot, len(that.snapshots))
	for i, snapshot := range that.snapshots {
		snapshots[i] = entity.Snapshot{Board: snapshot.Board}
		if snapshot.HasMove() {
			played := *snapshot.Played
			snapshots[i].Played = &played
		}
	}

	return snapshots
}

// checkTransition panics when next is not prev plus exactly one newly filled cell.
func checkTransition(prev, next entity.Snapshot) {
	changed := 0
	for i := range prev.Board {
		if prev.Board[i] == next.Board[i] {
			continue
		}

		changed++
		if prev.Board[i] != entity.EmptyCell || i != *next.Played {
			panic(fmt.Sprintf("history: corrupted transition at cell %d", i))
		}
	}

	if changed != 1 {
		panic(fmt.Sprintf("history: transition changed %d cells", changed))
	}
}
