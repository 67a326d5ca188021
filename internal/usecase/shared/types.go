package shared

import (
	"time"

	"github.com/google/uuid"
)

// OutboundEmail is what the transport receives for one flush.
type OutboundEmail struct {
	ToEmail string
	ToName  string
	Subject string
	Body    string
}

type DeliveryStatus string

const (
	DeliveryStatusSent   DeliveryStatus = "sent"
	DeliveryStatusFailed DeliveryStatus = "failed"
)

// DeliveryRecord is the audit row of one flush attempt. It is never read back by
// the scheduler.
type DeliveryRecord struct {
	ID             uuid.UUID
	RecipientID    string
	RecipientEmail string
	Subject        string
	EventCount     int
	Kinds          []string
	Status         DeliveryStatus
	Error          *string
	AttemptedAt    time.Time
}

type RecipientStatus struct {
	RecipientID  string
	EventCount   int
	HasLiveTimer bool
}

// PendingStatus is a point-in-time view of the scheduler's queues.
type PendingStatus struct {
	RecipientCount int
	TotalEvents    int
	Recipients     []RecipientStatus
	ChannelReady   bool
	IdleWindow     time.Duration
	DeliveredTotal uint64
	FailedTotal    uint64
	DroppedTotal   uint64
}

// DeliveryCursor is the keyset position of the last record already seen.
type DeliveryCursor struct {
	AttemptedAt time.Time
	ID          uuid.UUID
}
