package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/history"
)

type SessionRepository interface {
	CreateOrUpdate(ctx context.Context, id string, session *history.Controller) error
	GetByID(ctx context.Context, id string) (*history.Controller, error)
	DeleteByID(ctx context.Context, id string) error
}

// memSession keeps sessions for the lifetime of the process only.
type memSession struct {
	mu       sync.RWMutex
	sessions map[string]*history.Controller
}

func NewSessionRepository() SessionRepository {
	return &memSession{
		sessions: make(map[string]*history.Controller),
	}
}

func (that *memSession) CreateOrUpdate(ctx context.Context, id string, session *history.Controller) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[id] = session

	return nil
}

func (that *memSession) GetByID(ctx context.Context, id string) (*history.Controller, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	session, ok := that.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, id)
	}

	return session, nil
}

func (that *memSession) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, id)
	}

	delete(that.sessions, id)

	return nil
}
