package replay

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

type gameManager interface {
	MakeTurn(ctx context.Context, sessionID string, cell int) (entity.Status, error)
	JumpTo(ctx context.Context, sessionID string, step int) (entity.Status, error)
	Restart(ctx context.Context, sessionID string) (entity.Status, error)
	GetStatus(ctx context.Context, sessionID string) (entity.Status, error)
}

type Rejection struct {
	Index  int    `json:"index"`
	Token  string `json:"token"`
	Reason string `json:"reason"`
}

type Result struct {
	SessionID string        `json:"session_id"`
	Applied   int           `json:"applied"`
	Rejected  []Rejection   `json:"rejected"`
	Status    entity.Status `json:"status"`
}

type Replayer struct {
	logger  *slog.Logger
	manager gameManager
}

func NewReplayer(logger *slog.Logger, manager gameManager) *Replayer {
	return &Replayer{
		logger:  logger.With("component", "replay"),
		manager: manager,
	}
}

// Run - applies intents in order to the session. Rejected intents are recorded and skipped;
// any other error stops the run.
func (that *Replayer) Run(ctx context.Context, sessionID string, intents []Intent) (*Result, error) {
	log := that.logger.With("method", "Run", "sessionID", sessionID)

	result := &Result{
		SessionID: sessionID,
		Rejected:  []Rejection{},
	}

	for i, intent := range intents {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("replay interrupted at token %d: %w", i, err)
		}

		err := that.apply(ctx, sessionID, intent)
		switch {
		case err == nil:
			result.Applied++
		case usecase.IsRejection(err):
			log.Debug("intent rejected", "token", intent.Token, "reason", err)
			result.Rejected = append(result.Rejected, Rejection{
				Index:  i,
				Token:  intent.Token,
				Reason: err.Error(),
			})
		default:
			return nil, fmt.Errorf("failed to apply %q: %w", intent.Token, err)
		}
	}

	status, err := that.manager.GetStatus(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get final status: %w", err)
	}

	result.Status = status
	log.Info("replay finished", "applied", result.Applied, "rejected", len(result.Rejected))

	return result, nil
}

func (that *Replayer) apply(ctx context.Context, sessionID string, intent Intent) error {
	var err error

	switch intent.Kind {
	case KindMove:
		_, err = that.manager.MakeTurn(ctx, sessionID, intent.Value)
	case KindJump:
		_, err = that.manager.JumpTo(ctx, sessionID, intent.Value)
	case KindReset:
		_, err = that.manager.Restart(ctx, sessionID)
	default:
		panic(fmt.Sprintf("replay: unknown intent kind %q", intent.Kind))
	}

	return err
}
