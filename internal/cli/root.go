package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-timetravel/internal"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
)

type options struct {
	configPath string
}

func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Tic-tac-toe with time travel",
		Long: `Play tic-tac-toe in the terminal and jump back to any earlier move.
Playing from an earlier move discards the moves that came after it.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "config.yml", "path to the config file")

	rootCmd.AddCommand(
		newPlayCommand(opts),
		newReplayCommand(opts),
	)

	return rootCmd
}

func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// setup - loads config and wires the app. Logs go to logOutput unless a log file is configured.
func (that *options) setup(logOutput io.Writer) (*application.App, func() error, error) {
	conf, err := config.Load(that.configPath)
	if err != nil {
		return nil, nil, err
	}

	logger, closeFn, err := application.NewLogger(conf, logOutput)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init logger: %w", err)
	}

	return application.New(logger, conf), closeFn, nil
}
