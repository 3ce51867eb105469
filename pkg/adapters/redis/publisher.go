package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/steer/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Message is the payload stored and broadcast for every published command.
type Message struct {
	Tick    domain.Tick    `json:"tick"`
	Command domain.Command `json:"command"`
}

// Publisher implements ports.CommandSink and ports.CommandSource using Redis.
// The latest command is kept under a single key and broadcast on a channel.
type Publisher struct {
	client  *backend.Client
	prefix  string
	channel string
	ttl     time.Duration
}

type Option func(*Publisher)

// WithTTL sets the expiration of the latest-command key.
// A command older than ttl reads back as domain.ErrNoCommand, which lets a
// consumer detect a stalled control loop.
func WithTTL(ttl time.Duration) Option {
	return func(p *Publisher) {
		p.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(p *Publisher) {
		p.prefix = prefix
	}
}

// WithChannel sets the pub/sub channel. An empty channel disables PUBLISH.
func WithChannel(channel string) Option {
	return func(p *Publisher) {
		p.channel = channel
	}
}

// New creates a new Redis publisher with options.
func New(address, password string, db int, opts ...Option) *Publisher {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis publisher from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Publisher {
	p := &Publisher{
		client:  client,
		prefix:  "steer:",
		channel: "steer:commands",
		ttl:     0, // No expiration by default
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Key returns the key holding the latest command.
func (p *Publisher) Key() string {
	return p.prefix + "last"
}

// Channel returns the pub/sub channel, empty when broadcasting is disabled.
func (p *Publisher) Channel() string {
	return p.channel
}

// Publish stores the command and broadcasts it in one pipeline.
func (p *Publisher) Publish(ctx context.Context, tick domain.Tick, cmd domain.Command) error {
	data, err := json.Marshal(Message{Tick: tick, Command: cmd})
	if err != nil {
		return fmt.Errorf("failed to marshal command: %w", err)
	}

	pipe := p.client.Pipeline()
	pipe.Set(ctx, p.Key(), data, p.ttl)
	if p.channel != "" {
		pipe.Publish(ctx, p.channel, data)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish to redis: %w", err)
	}
	return nil
}

// Last retrieves the latest command from Redis.
func (p *Publisher) Last(ctx context.Context) (domain.Tick, domain.Command, error) {
	val, err := p.client.Get(ctx, p.Key()).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return domain.Tick{}, domain.Command{}, domain.ErrNoCommand
		}
		return domain.Tick{}, domain.Command{}, fmt.Errorf("failed to get from redis: %w", err)
	}

	msg, err := Decode([]byte(val))
	if err != nil {
		return domain.Tick{}, domain.Command{}, err
	}
	return msg.Tick, msg.Command, nil
}

// Decode parses a payload produced by Publish, as received by subscribers.
func Decode(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("failed to unmarshal command: %w", err)
	}
	return msg, nil
}

// Ping checks connectivity.
func (p *Publisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// Close closes the redis client.
func (p *Publisher) Close() error {
	return p.client.Close()
}
