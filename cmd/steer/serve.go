package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/steer/internal/cli"
	"github.com/aretw0/steer/internal/presentation/tui"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var serveCmd = &cobra.Command{
	Use:   "serve <scenario.yaml>",
	Short: "Run the control loop in real time",
	Long: `Runs the scenario against the wall clock, serving the latest command, engine
status and Prometheus metrics over HTTP. With --redis every command is also
stored and broadcast through Redis for an out-of-process chassis layer.
Every flag also reads a STEER_* environment variable (STEER_ADDR,
STEER_REDIS_ADDR, STEER_REDIS_TTL, ...).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, debug, err := newLogger(cmd)
		if err != nil {
			return err
		}
		envCfg, err := cli.ParseServeEnv()
		if err != nil {
			return err
		}
		opts := envCfg.Options()

		// Flags override the environment only when given explicitly.
		flags := cmd.Flags()
		if flags.Changed("addr") {
			opts.Addr, _ = flags.GetString("addr")
		}
		if flags.Changed("tick-rate") {
			opts.TickRate, _ = flags.GetFloat64("tick-rate")
		}
		if flags.Changed("redis") {
			opts.RedisAddr, _ = flags.GetString("redis")
		}
		if flags.Changed("redis-password") {
			opts.RedisPassword, _ = flags.GetString("redis-password")
		}
		if flags.Changed("redis-db") {
			opts.RedisDB, _ = flags.GetInt("redis-db")
		}
		if flags.Changed("redis-prefix") {
			opts.RedisPrefix, _ = flags.GetString("redis-prefix")
		}
		if flags.Changed("redis-ttl") {
			opts.RedisTTL, _ = flags.GetDuration("redis-ttl")
		}
		tuning, _ := flags.GetString("tuning")
		opts.EngineOptions = cli.EngineOptions{
			ScenarioPath: args[0],
			TuningPath:   tuning,
			Debug:        debug,
		}

		if term.IsTerminal(int(os.Stderr.Fd())) {
			tui.PrintBanner(termenv.NewOutput(os.Stderr), os.Stderr)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return cli.Serve(ctx, opts, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "HTTP listen address (env STEER_ADDR)")
	serveCmd.Flags().Float64("tick-rate", 0, "Loop frequency in Hz (default: scenario tick_rate)")
	serveCmd.Flags().String("tuning", "", "Tuning file overriding the scenario's inline tuning")
	serveCmd.Flags().String("redis", "", "Redis address; enables publishing when set (env STEER_REDIS_ADDR)")
	serveCmd.Flags().String("redis-password", "", "Redis password")
	serveCmd.Flags().Int("redis-db", 0, "Redis database")
	serveCmd.Flags().String("redis-prefix", "", "Key prefix (default \"steer:\")")
	serveCmd.Flags().Duration("redis-ttl", 0, "Expire the latest command after this long without a new tick")
}
