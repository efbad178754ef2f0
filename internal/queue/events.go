package queue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// VisibilityChanged records a flip of an organization's public visibility.
type VisibilityChanged struct {
	OrganizationID      int64
	IsPubliclyActive    bool
	MissingRequirements []string
	OccurredAt          time.Time
}

// EventPublisher appends domain events to a Redis stream for downstream consumers.
type EventPublisher struct {
	client *redis.Client
	stream string
	maxLen int64
}

func NewEventPublisher(client *redis.Client, stream string) *EventPublisher {
	return &EventPublisher{client: client, stream: stream, maxLen: 10000}
}

func (p *EventPublisher) PublishVisibilityChanged(ctx context.Context, evt VisibilityChanged) error {
	occurred := evt.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now()
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: visibilityValues(evt, occurred),
	}).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", EventTypeVisibilityChanged, err)
	}
	return nil
}

func visibilityValues(evt VisibilityChanged, occurred time.Time) map[string]any {
	return map[string]any{
		"event_type":           EventTypeVisibilityChanged,
		"organization_id":      evt.OrganizationID,
		"is_publicly_active":   evt.IsPubliclyActive,
		"missing_requirements": strings.Join(evt.MissingRequirements, ","),
		"occurred_at":          occurred.UTC().Format(time.RFC3339Nano),
	}
}
