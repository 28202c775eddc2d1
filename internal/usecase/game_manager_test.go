package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/history"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-timetravel/mocks/usecase"
	"github.com/rocketscienceinc/tictactoe-timetravel/testing/suite"
)

var errStorageIsFull = errors.New("storage is full")

func TestGameManager_NewGame(t *testing.T) {
	t.Run("Creates a new session", func(t *testing.T) {
		ctx, s := suite.New(t)

		// Given: a repository that accepts the new session
		mockSessionRepo := mockedUseCase.NewMocksessionRepo(t)
		manager := NewGameManager(s.Logger, mockSessionRepo)

		mockSessionRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("*history.Controller")).
			Return(nil).
			Once()

		// When: NewGame is called
		session, err := manager.NewGame(ctx)

		// Then: the session has an ID and starts at the empty board
		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, history.NewController().Status(), session.Status)
	})

	t.Run("Returns error when the repository fails", func(t *testing.T) {
		ctx, s := suite.New(t)

		mockSessionRepo := mockedUseCase.NewMocksessionRepo(t)
		manager := NewGameManager(s.Logger, mockSessionRepo)

		mockSessionRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.Anything, mock.Anything).
			Return(errStorageIsFull).
			Once()

		// When: NewGame is called
		session, err := manager.NewGame(ctx)

		// Then: the error is wrapped and returned
		require.ErrorIs(t, err, errStorageIsFull)
		assert.Nil(t, session)
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	t.Run("Accepts a legal move", func(t *testing.T) {
		ctx, s := suite.New(t)

		// Given: a stored session
		mockSessionRepo := mockedUseCase.NewMocksessionRepo(t)
		manager := NewGameManager(s.Logger, mockSessionRepo)
		controller := history.NewController()

		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "session1").
			Return(controller, nil).
			Once()

		// When: X plays the centre
		status, err := manager.MakeTurn(ctx, "session1", 4)

		// Then: the controller has moved on
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, status.Board[4])
		assert.Equal(t, entity.PlayerO, status.NextPlayer)
		assert.Equal(t, 2, controller.Len())
	})

	t.Run("Rejects an occupied cell", func(t *testing.T) {
		ctx, s := suite.New(t)

		// Given: a session where X already holds cell 0
		mockSessionRepo := mockedUseCase.NewMocksessionRepo(t)
		manager := NewGameManager(s.Logger, mockSessionRepo)
		controller := history.NewController()
		controller.SubmitMove(0)
		before := controller.Status()

		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "session1").
			Return(controller, nil).
			Once()

		// When: O plays cell 0
		status, err := manager.MakeTurn(ctx, "session1", 0)

		// Then: the move is rejected and the status is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.True(t, IsRejection(err))
		assert.Equal(t, before, status)
	})

	t.Run("Returns error when the session does not exist", func(t *testing.T) {
		ctx, s := suite.New(t)

		mockSessionRepo := mockedUseCase.NewMocksessionRepo(t)
		manager := NewGameManager(s.Logger, mockSessionRepo)

		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "missing").
			Return((*history.Controller)(nil), apperror.ErrSessionNotFound).
			Once()

		// When: MakeTurn is called for an unknown session
		_, err := manager.MakeTurn(ctx, "missing", 4)

		// Then: the lookup error is returned and it is not a rejection
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		assert.False(t, IsRejection(err))
	})
}

func TestGameManager_JumpTo(t *testing.T) {
	t.Run("Jumps back", func(t *testing.T) {
		ctx, s := suite.New(t)

		// Given: a session with two moves
		mockSessionRepo := mockedUseCase.NewMocksessionRepo(t)
		manager := NewGameManager(s.Logger, mockSessionRepo)
		controller := history.NewController()
		controller.SubmitMove(0)
		controller.SubmitMove(4)

		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "session1").
			Return(controller, nil).
			Once()

		// When: jumping to the start
		status, err := manager.JumpTo(ctx, "session1", 0)

		// Then: the board is empty but the history is kept
		require.NoError(t, err)
		assert.Equal(t, entity.Board{}, status.Board)
		assert.Equal(t, 3, status.Steps)
	})

	t.Run("Rejects an unknown step", func(t *testing.T) {
		ctx, s := suite.New(t)

		mockSessionRepo := mockedUseCase.NewMocksessionRepo(t)
		manager := NewGameManager(s.Logger, mockSessionRepo)

		mockSessionRepo.EXPECT().
			GetByID(mock.Anything, "session1").
			Return(history.NewController(), nil).
			Once()

		// When: jumping past the end of the history
		_, err := manager.JumpTo(ctx, "session1", 5)

		// Then: the jump is rejected
		require.ErrorIs(t, err, apperror.ErrInvalidStep)
		assert.True(t, IsRejection(err))
	})
}

func TestGameManager_GetStatus(t *testing.T) {
	ctx, s := suite.New(t)

	mockSessionRepo := mockedUseCase.NewMocksessionRepo(t)
	manager := NewGameManager(s.Logger, mockSessionRepo)
	controller := history.NewController()
	controller.SubmitMove(8)

	mockSessionRepo.EXPECT().
		GetByID(mock.Anything, "session1").
		Return(controller, nil).
		Once()

	// When: GetStatus is called
	status, err := manager.GetStatus(ctx, "session1")

	// Then: it matches the controller status
	require.NoError(t, err)
	assert.Equal(t, controller.Status(), status)
}

func TestGameManager_Restart(t *testing.T) {
	ctx, s := suite.New(t)

	// Given: a finished game
	mockSessionRepo := mockedUseCase.NewMocksessionRepo(t)
	manager := NewGameManager(s.Logger, mockSessionRepo)
	controller := history.NewController()
	for _, cell := range []int{0, 4, 1, 3, 2} {
		controller.SubmitMove(cell)
	}

	mockSessionRepo.EXPECT().
		GetByID(mock.Anything, "session1").
		Return(controller, nil).
		Once()

	// When: Restart is called
	status, err := manager.Restart(ctx, "session1")

	// Then: the session is back at the empty board
	require.NoError(t, err)
	assert.Equal(t, history.NewController().Status(), status)
	assert.Equal(t, 1, controller.Len())
}

func TestGameManager_EndGame(t *testing.T) {
	t.Run("Deletes the session", func(t *testing.T) {
		ctx, s := suite.New(t)

		mockSessionRepo := mockedUseCase.NewMocksessionRepo(t)
		manager := NewGameManager(s.Logger, mockSessionRepo)

		mockSessionRepo.EXPECT().
			DeleteByID(mock.Anything, "session1").
			Return(nil).
			Once()

		// When: EndGame is called
		err := manager.EndGame(ctx, "session1")

		// Then: no error
		require.NoError(t, err)
	})

	t.Run("Returns error when the session does not exist", func(t *testing.T) {
		ctx, s := suite.New(t)

		mockSessionRepo := mockedUseCase.NewMocksessionRepo(t)
		manager := NewGameManager(s.Logger, mockSessionRepo)

		mockSessionRepo.EXPECT().
			DeleteByID(mock.Anything, "missing").
			Return(apperror.ErrSessionNotFound).
			Once()

		err := manager.EndGame(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}
