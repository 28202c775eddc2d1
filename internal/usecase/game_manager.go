package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/history"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, id string, session *history.Controller) error
	GetByID(ctx context.Context, id string) (*history.Controller, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager is what the presentation layer talks to. Calls are serialized,
// so every intent is applied to completion before the next one starts.
type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo

	mu sync.Mutex
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		sessionRepo: sessionRepo,
	}
}

func (that *GameManager) NewGame(ctx context.Context) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	sessionID := uuid.NewString()
	controller := history.NewController()

	if err := that.sessionRepo.CreateOrUpdate(ctx, sessionID, controller); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("game started", "sessionID", sessionID)

	return &entity.Session{
		ID:     sessionID,
		Status: controller.Status(),
	}, nil
}

func (that *GameManager) MakeTurn(ctx context.Context, sessionID string, cell int) (entity.Status, error) {
	log := that.logger.With("method", "MakeTurn", "sessionID", sessionID, "cell", cell)

	that.mu.Lock()
	defer that.mu.Unlock()

	controller, err := that.getSession(ctx, sessionID)
	if err != nil {
		return entity.Status{}, err
	}

	player := controller.Status().NextPlayer

	status, err := controller.Play(cell)
	if err != nil {
		log.Info("move rejected", "reason", err)
		return status, fmt.Errorf("failed to make turn: %w", err)
	}

	log.Debug("move accepted", "player", player, "step", status.Step)

	if status.IsFinished() {
		log.Info("game decided", "outcome", status.Outcome, "winner", status.Winner)
	}

	return status, nil
}

func (that *GameManager) JumpTo(ctx context.Context, sessionID string, step int) (entity.Status, error) {
	log := that.logger.With("method", "JumpTo", "sessionID", sessionID, "step", step)

	that.mu.Lock()
	defer that.mu.Unlock()

	controller, err := that.getSession(ctx, sessionID)
	if err != nil {
		return entity.Status{}, err
	}

	status, err := controller.Travel(step)
	if err != nil {
		log.Info("jump rejected", "reason", err)
		return status, fmt.Errorf("failed to jump: %w", err)
	}

	log.Debug("jumped", "steps", status.Steps)

	return status, nil
}

func (that *GameManager) GetStatus(ctx context.Context, sessionID string) (entity.Status, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	controller, err := that.getSession(ctx, sessionID)
	if err != nil {
		return entity.Status{}, err
	}

	return controller.Status(), nil
}

// Restart - resets the session to the empty board, keeping its ID.
func (that *GameManager) Restart(ctx context.Context, sessionID string) (entity.Status, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	controller, err := that.getSession(ctx, sessionID)
	if err != nil {
		return entity.Status{}, err
	}

	controller.Reset()
	that.logger.Info("game restarted", "sessionID", sessionID)

	return controller.Status(), nil
}

func (that *GameManager) EndGame(ctx context.Context, sessionID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("game ended", "sessionID", sessionID)

	return nil
}

// IsRejection - reports whether err is an ordinary rejected intent rather than a failure.
func IsRejection(err error) bool {
	return errors.Is(err, apperror.ErrIllegalMove) ||
		errors.Is(err, apperror.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrInvalidStep)
}

func (that *GameManager) getSession(ctx context.Context, sessionID string) (*history.Controller, error) {
	controller, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return controller, nil
}
