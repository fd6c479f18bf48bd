package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"darkparadise-rest-api/internal/model"

	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
)

const (
	// DefaultStreamKey is the Redis stream receiving samples.
	DefaultStreamKey = "darkparadise:stream:server_stats"

	// DefaultMaxStreamLen is the approximate max length of the stream.
	DefaultMaxStreamLen = 100000

	// PublishTimeout bounds one XADD.
	PublishTimeout = 500 * time.Millisecond
)

// SamplePayload is the stream entry format.
type SamplePayload struct {
	EventID    string `json:"id"`
	ServerKey  string `json:"server_key"`
	Players    int    `json:"players_count"`
	IsOnline   bool   `json:"is_online"`
	RecordedAt int64  `json:"recorded_at"` // Unix milliseconds
}

// StreamConfig holds configuration for StreamPublisher.
type StreamConfig struct {
	Addr     string
	Password string
	DB       int
	Stream   string
	MaxLen   int64
}

// StreamPublisher appends samples to a Redis stream for downstream consumers.
type StreamPublisher struct {
	client *redis.Client
	stream string
	maxLen int64
}

// NewStreamPublisher connects to Redis and verifies the connection.
func NewStreamPublisher(cfg StreamConfig) (*StreamPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     5,
		MinIdleConns: 1,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	p := NewStreamPublisherWithClient(client, cfg.Stream, cfg.MaxLen)
	log.Printf("[StreamPublisher] Started - DB:%d, stream:%s, maxlen:%d", cfg.DB, p.stream, p.maxLen)
	return p, nil
}

// NewStreamPublisherWithClient wraps an existing Redis client.
func NewStreamPublisherWithClient(client *redis.Client, stream string, maxLen int64) *StreamPublisher {
	if stream == "" {
		stream = DefaultStreamKey
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxStreamLen
	}
	return &StreamPublisher{
		client: client,
		stream: stream,
		maxLen: maxLen,
	}
}

// NewPayload converts a sample into its stream form.
func NewPayload(sample model.ServerStatSample) SamplePayload {
	recordedAt := sample.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}
	return SamplePayload{
		EventID:    ulid.Make().String(),
		ServerKey:  sample.ServerKey,
		Players:    sample.PlayersCount,
		IsOnline:   sample.IsOnline,
		RecordedAt: recordedAt.UnixMilli(),
	}
}

// Record implements Recorder.
func (p *StreamPublisher) Record(ctx context.Context, sample model.ServerStatSample) error {
	data, err := json.Marshal(NewPayload(sample))
	if err != nil {
		return fmt.Errorf("marshal sample: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, PublishTimeout)
	defer cancel()

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		ID:     "*",
		Values: map[string]interface{}{
			"payload": string(data),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", p.stream, err)
	}
	return nil
}

// Close closes the Redis client.
func (p *StreamPublisher) Close() error {
	return p.client.Close()
}
