package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/steer/internal/adapters/http"
	"github.com/aretw0/steer/pkg/adapters/memory"
	"github.com/aretw0/steer/pkg/adapters/redis"
	"github.com/aretw0/steer/pkg/observability"
	"github.com/aretw0/steer/pkg/ports"
	"github.com/aretw0/steer/pkg/runner"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ShutdownTimeout bounds the graceful HTTP shutdown.
const ShutdownTimeout = 5 * time.Second

// ServeOptions configure the real-time loop and its HTTP surface.
type ServeOptions struct {
	EngineOptions
	Addr string
	// TickRate overrides the scenario rate when positive.
	TickRate float64

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
	RedisTTL      time.Duration
}

// Serve runs the control loop in real time until ctx is cancelled.
// The latest command is served over HTTP and optionally published to Redis.
func Serve(ctx context.Context, opts ServeOptions, logger *slog.Logger) error {
	// Distinguishes restarts in aggregated logs.
	logger = logger.With("run_id", uuid.NewString())

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(reg)
	opts.Hooks = opts.Hooks.Merge(metrics.Hooks())

	eng, sc, err := createEngine(opts.EngineOptions, logger)
	if err != nil {
		return err
	}

	latest := memory.NewRecorder(1)
	sinks := []ports.CommandSink{latest}

	if opts.RedisAddr != "" {
		var ropts []redis.Option
		if opts.RedisPrefix != "" {
			ropts = append(ropts, redis.WithPrefix(opts.RedisPrefix))
		}
		if opts.RedisTTL > 0 {
			ropts = append(ropts, redis.WithTTL(opts.RedisTTL))
		}
		pub := redis.New(opts.RedisAddr, opts.RedisPassword, opts.RedisDB, ropts...)
		defer pub.Close()

		if err := pub.Ping(ctx); err != nil {
			return fmt.Errorf("redis unreachable at %s: %w", opts.RedisAddr, err)
		}
		logger.Info("Publishing to redis", "addr", opts.RedisAddr, "key", pub.Key(), "channel", pub.Channel())
		sinks = append(sinks, pub)
	}

	rate := sc.TickRate
	if opts.TickRate > 0 {
		rate = opts.TickRate
	}
	loop := runner.New(eng,
		runner.WithSink(ports.MultiSink(sinks...)),
		runner.WithTickRate(rate),
		runner.WithLogger(logger),
	)
	reg.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
		Name: "steer_sink_errors_total",
		Help: "Commands that could not be published",
	}, func() float64 { return float64(loop.SinkErrors()) }))

	ln, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", opts.Addr, err)
	}
	srv := &http.Server{
		Handler:           httpAdapter.NewHandler(eng, latest, reg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	loopDone := make(chan error, 1)
	go func() { loopDone <- loop.Run(runCtx) }()

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting steer server", "addr", ln.Addr().String(), "scenario", sc.Name, "tick_rate", rate)
		serverErrors <- srv.Serve(ln)
	}()

	var serveErr error
	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			serveErr = fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		logger.Info("Start shutdown...")
	}

	cancel()
	loopErr := <-loopDone

	shutdownCtx, stop := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Graceful shutdown did not complete", "timeout", ShutdownTimeout, "error", err)
		_ = srv.Close()
	}
	logger.Info("Steer server stopped gracefully", "sink_errors", loop.SinkErrors())

	return errors.Join(serveErr, loopErr)
}
