package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoard_IsFull(t *testing.T) {
	t.Run("Empty board is not full", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// Then: it is not full
		assert.False(t, board.IsFull())
	})

	t.Run("One empty cell left", func(t *testing.T) {
		board := Board{PlayerX, PlayerO, PlayerX, PlayerX, PlayerO, PlayerO, PlayerO, PlayerX, EmptyCell}

		assert.False(t, board.IsFull())
	})

	t.Run("Every cell taken", func(t *testing.T) {
		board := Board{PlayerX, PlayerO, PlayerX, PlayerX, PlayerO, PlayerO, PlayerO, PlayerX, PlayerX}

		assert.True(t, board.IsFull())
	})
}

func TestBoard_IsValue(t *testing.T) {
	// Given: a board and a copy of it
	board := Board{}
	copied := board

	// When: the copy is changed
	copied[0] = PlayerX

	// Then: the original is untouched
	assert.Equal(t, EmptyCell, board[0])
}

func TestSnapshot_HasMove(t *testing.T) {
	played := 4

	assert.False(t, Snapshot{}.HasMove())
	assert.True(t, Snapshot{Played: &played}.HasMove())
}

func TestStatus_IsFinished(t *testing.T) {
	assert.False(t, Status{Outcome: OutcomeInProgress}.IsFinished())
	assert.True(t, Status{Outcome: OutcomeWon}.IsFinished())
	assert.True(t, Status{Outcome: OutcomeDrawn}.IsFinished())
}
