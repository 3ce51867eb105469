package main

import (
	"os"

	"github.com/aretw0/steer/internal/cli"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario.yaml>",
	Short: "Replay a scenario and print the command trace",
	Long: `Replays a scripted scenario with a fixed tick interval. On a terminal the trace
is printed as a table with guarded axes highlighted; otherwise, or with --json,
one JSON object per tick is written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, debug, err := newLogger(cmd)
		if err != nil {
			return err
		}
		tuning, _ := cmd.Flags().GetString("tuning")
		ticks, _ := cmd.Flags().GetInt("ticks")
		asJSON, _ := cmd.Flags().GetBool("json")

		tty := term.IsTerminal(int(os.Stdout.Fd()))
		profile := termenv.Ascii
		if tty {
			profile = termenv.EnvColorProfile()
		}

		return cli.Simulate(cli.SimulateOptions{
			EngineOptions: cli.EngineOptions{
				ScenarioPath: args[0],
				TuningPath:   tuning,
				Debug:        debug,
			},
			Ticks:   ticks,
			JSON:    asJSON || !tty,
			Profile: profile,
		}, cmd.OutOrStdout(), logger)
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().String("tuning", "", "Tuning file overriding the scenario's inline tuning")
	simulateCmd.Flags().Int("ticks", 0, "Number of ticks to replay (default: scenario length)")
	simulateCmd.Flags().Bool("json", false, "Write NDJSON even on a terminal")
}
