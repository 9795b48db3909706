package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe/internal"
	"github.com/rocketscienceinc/tictactoe/internal/config"
)

const defaultConfigPath = "./config.yml"

// Root - the tictactoe command. Without a subcommand it starts a game.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe in the terminal",
		Long: heredoc.Doc(`
			Play tic-tac-toe against a friend or the computer.

			Cells are numbered 1-9 from the top left. Type help inside the
			game for the list of commands. Scores are kept between runs.
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			return app.RunApp(logger, conf, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	// global flags
	root.PersistentFlags().StringP("config", "c", defaultConfigPath, "Path to the YAML config file")
	root.PersistentFlags().BoolP("trace", "t", false, "Show debug logs")

	root.Flags().StringP("mode", "m", "", "Game mode to start in: pvp or pvc")
	root.Flags().Duration("delay", 0, "How long the computer thinks before replying")

	root.AddCommand(Scores())
	root.AddCommand(ClearScores())

	return root
}

func Scores() *cobra.Command {
	return &cobra.Command{
		Use:   "scores",
		Short: "Show the saved score tally",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			return app.ShowScores(cmd.Context(), logger, conf, cmd.OutOrStdout())
		},
	}
}

func ClearScores() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-scores",
		Short: "Reset the saved score tally to zero",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			if err = app.ClearScores(cmd.Context(), logger, conf); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Scores cleared.")
			return err
		},
	}
}

// setup - loads the config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, err
	}

	conf, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	if flag := cmd.Flags().Lookup("mode"); flag != nil && flag.Changed {
		conf.Mode = flag.Value.String()
	}

	if flag := cmd.Flags().Lookup("delay"); flag != nil && flag.Changed {
		var delay time.Duration
		if delay, err = cmd.Flags().GetDuration("delay"); err != nil {
			return nil, nil, err
		}
		conf.ComputerDelay = delay
	}

	if trace, _ := cmd.Flags().GetBool("trace"); trace {
		conf.LogLevel = "debug"
	}

	return conf, initLogger(cmd.ErrOrStderr(), conf), nil
}
