package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/replay"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tui"
)

func newReplayCommand(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "replay [tokens...]",
		Short: "Apply a script of moves and jumps and print the result",
		Long: `Applies each token in order to a new game:
  0-8      play that cell for the player to move
  @<step>  jump to that step of the history
  reset    start over (also: new)
Tokens may be separated by spaces or commas. Rejected tokens are reported and skipped.`,
		Example: `  tictactoe replay 0,4,1,3,2
  tictactoe replay 0 4 8 @1 2 --json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			intents, err := replay.Parse(args)
			if err != nil {
				return err
			}

			app, closeLogs, err := opts.setup(cmd.ErrOrStderr())
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

			result, err := app.Replayer.Run(ctx, session.ID, intents)
			if err != nil {
				return err
			}

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")

				return encoder.Encode(result)
			}

			printResult(cmd.OutOrStdout(), result, app.Marks)

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}

func printResult(w io.Writer, result *replay.Result, marks tui.Marks) {
	fmt.Fprint(w, tui.RenderBoard(result.Status.Board, marks))
	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.StatusLine(result.Status, marks))
	fmt.Fprintln(w)
	fmt.Fprint(w, tui.RenderMoves(result.Status))

	if len(result.Rejected) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Rejected %d of %d:\n", len(result.Rejected), result.Applied+len(result.Rejected))

	for _, rejection := range result.Rejected {
		fmt.Fprintf(w, "  #%d %q: %s\n", rejection.Index, rejection.Token, rejection.Reason)
	}
}
