package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/steer/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "steer",
	Short: "Steer composes driver input and assists into one bounded chassis command",
	Long: `Steer shapes raw stick input, blends it with automated assists under a
priority or weighted arbitration and guarantees a finite, bounded command
for the chassis on every control tick.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Log every tick, branch and guard event")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// newLogger builds the process logger from the persistent flags.
func newLogger(cmd *cobra.Command) (*slog.Logger, bool, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	levelName, _ := cmd.Flags().GetString("log-level")

	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, false, err
	}
	if debug {
		level = slog.LevelDebug
	}
	return logging.New(level), debug, nil
}
