package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

type RecheckMessage struct {
	OrganizationID int64
	Reason         string
	TraceID        *string
	Attempt        int
}

type Producer interface {
	EnqueueRecheck(ctx context.Context, msg RecheckMessage) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) EnqueueRecheck(ctx context.Context, msg RecheckMessage) error {
	attempt := msg.Attempt
	if attempt <= 0 {
		attempt = 1
	}

	fields := map[string]any{
		"task_type":       string(TaskTypeCompletenessRecheck),
		"organization_id": msg.OrganizationID,
		"attempt":         attempt,
	}
	if msg.Reason != "" {
		fields["reason"] = msg.Reason
	}
	if msg.TraceID != nil && *msg.TraceID != "" {
		fields["trace_id"] = *msg.TraceID
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue recheck: %w", err)
	}

	p.logger.InfoContext(ctx, "enqueued completeness recheck", "organization_id", msg.OrganizationID, "reason", msg.Reason, "attempt", attempt)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}
