package cli

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServeEnv holds serve settings that can come from the environment.
// Command-line flags take precedence.
type ServeEnv struct {
	Addr          string        `env:"STEER_ADDR" envDefault:":8080"`
	TickRate      float64       `env:"STEER_TICK_RATE"`
	RedisAddr     string        `env:"STEER_REDIS_ADDR"`
	RedisPassword string        `env:"STEER_REDIS_PASSWORD"`
	RedisDB       int           `env:"STEER_REDIS_DB"`
	RedisPrefix   string        `env:"STEER_REDIS_PREFIX"`
	RedisTTL      time.Duration `env:"STEER_REDIS_TTL"`
}

// ParseServeEnv loads ServeEnv from environment variables.
func ParseServeEnv() (ServeEnv, error) {
	var cfg ServeEnv
	if err := env.Parse(&cfg); err != nil {
		return ServeEnv{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Options converts the environment into serve options.
func (e ServeEnv) Options() ServeOptions {
	return ServeOptions{
		Addr:          e.Addr,
		TickRate:      e.TickRate,
		RedisAddr:     e.RedisAddr,
		RedisPassword: e.RedisPassword,
		RedisDB:       e.RedisDB,
		RedisPrefix:   e.RedisPrefix,
		RedisTTL:      e.RedisTTL,
	}
}
