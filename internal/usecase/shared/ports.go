package shared

import (
	"context"

	"coachdesk/internal/domain/notification"
)

type RecipientDirectory interface {
	Resolve(ctx context.Context, recipientID string) (notification.Recipient, error)
}

// EmailTransport owns its timeouts; callers issue exactly one Send per flush.
type EmailTransport interface {
	Send(ctx context.Context, ch notification.Channel, msg OutboundEmail) error
}

type DeliveryLogRepository interface {
	Record(ctx context.Context, rec DeliveryRecord) error
}

type DeliveryLogReadStore interface {
	// ListByRecipient returns newest first, strictly older than after when set.
	ListByRecipient(ctx context.Context, recipientID string, after *DeliveryCursor, limit int) ([]DeliveryRecord, error)
}

// NotificationScheduler is the bundling scheduler as seen by the intake facade.
type NotificationScheduler interface {
	Configure(ch notification.Channel) error
	Channel() (notification.Channel, bool)
	AddEvent(ev *notification.PendingEvent) bool
	FlushOne(ctx context.Context, recipientID string) int
	FlushAll(ctx context.Context) int
	Status() PendingStatus
}
