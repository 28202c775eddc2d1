package entity

const BoardSize = 9

type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeWon        Outcome = "won"
	OutcomeDrawn      Outcome = "drawn"
)

// Board is a value type: assigning or passing it copies all nine cells.
type Board [BoardSize]Mark

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Snapshot - board state after a move. Played is nil for the initial snapshot.
type Snapshot struct {
	Board  Board `json:"board"`
	Played *int  `json:"played"`
}

func (that Snapshot) HasMove() bool {
	return that.Played != nil
}

// Move describes the cell played to reach Step.
type Move struct {
	Step int `json:"step"`
	Cell int `json:"cell"`
	Row  int `json:"row"`
	Col  int `json:"col"`
}

type Status struct {
	Board      Board   `json:"board"`
	Step       int     `json:"step"`
	Steps      int     `json:"steps"`
	Winner     Mark    `json:"winner"`
	IsDraw     bool    `json:"is_draw"`
	Outcome    Outcome `json:"outcome"`
	NextPlayer Mark    `json:"next_player"`
	Moves      []Move  `json:"moves"`
}

func (that Status) IsFinished() bool {
	return that.Outcome != OutcomeInProgress
}

type Session struct {
	ID     string `json:"id"`
	Status Status `json:"status"`
}
