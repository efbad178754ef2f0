package worker

import (
	"context"

	"givebase.app/crm/internal/queue"
)

// Consumer abstracts the message queue for testability.
type Consumer interface {
	Read(ctx context.Context) ([]queue.Message, error)
	Ack(ctx context.Context, msg queue.Message) error
	Requeue(ctx context.Context, msg queue.Message, errMsg string) error
	SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error
}

// StatusChecker re-evaluates and persists an organization's public visibility.
// service.CompletenessService satisfies it.
type StatusChecker interface {
	CheckAndSetPublicStatus(ctx context.Context, orgID int64) (bool, error)
}
