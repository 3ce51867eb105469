package main

import (
	"github.com/aretw0/steer/internal/cli"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph <scenario.yaml>",
	Short: "Print the composition pipeline as a Mermaid diagram",
	Long: `Renders the driver, the assist branches in priority order and the mixing
stages as a Mermaid flowchart. With --tick the branches active on that tick are
highlighted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, _, err := newLogger(cmd)
		if err != nil {
			return err
		}
		tuning, _ := cmd.Flags().GetString("tuning")
		tick, _ := cmd.Flags().GetInt("tick")

		return cli.Graph(cli.GraphOptions{
			EngineOptions: cli.EngineOptions{ScenarioPath: args[0], TuningPath: tuning},
			Tick:          tick,
		}, cmd.OutOrStdout(), logger)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("tuning", "", "Tuning file overriding the scenario's inline tuning")
	graphCmd.Flags().Int("tick", 0, "Highlight the branches active on this tick")
}
