package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tui"
)

func newPlayCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			// the terminal belongs to the UI, so logs are dropped unless a log file is set
			app, closeLogs, err := opts.setup(io.Discard)
			if err != nil {
				return err
			}
			defer closeLogs() //nolint: errcheck

			session, err := app.Manager.NewGame(ctx)
			if err != nil {
				return err
			}

			defer func() {
				if err := app.Manager.EndGame(context.WithoutCancel(ctx), session.ID); err != nil {
					app.Logger.Error("could not end game", "error", err)
				}
			}()

			model := tui.New(ctx, app.Logger, app.Manager, session, app.Marks)
			program := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)

			final, err := program.Run()
			if err != nil {
				if errors.Is(err, tea.ErrProgramKilled) {
					app.Logger.Info("game interrupted", "sessionID", session.ID)
					return nil
				}

				return fmt.Errorf("ui failed: %w", err)
			}

			if m, ok := final.(tui.Model); ok && m.Err() != nil {
				return m.Err()
			}

			return nil
		},
	}
}
