package queries

import (
	"time"

	"github.com/google/uuid"
)

// PendingStatusView is the operator diagnostics snapshot of the scheduler.
type PendingStatusView struct {
	RecipientCount int                    `json:"recipient_count"`
	TotalEvents    int                    `json:"total_events"`
	Recipients     []RecipientPendingView `json:"recipients"`
	ChannelReady   bool                   `json:"channel_ready"`
	IdleWindow     time.Duration          `json:"idle_window"`
	DeliveredTotal uint64                 `json:"delivered_total"`
	FailedTotal    uint64                 `json:"failed_total"`
	DroppedTotal   uint64                 `json:"dropped_total"`
}

type RecipientPendingView struct {
	RecipientID  string `json:"recipient_id"`
	EventCount   int    `json:"event_count"`
	HasLiveTimer bool   `json:"has_live_timer"`
}

// ChannelView is the configured outbound channel.
type ChannelView struct {
	Provider    string `json:"provider"`
	FromAddress string `json:"from_address"`
	FromName    string `json:"from_name"`
	Endpoint    string `json:"endpoint,omitempty"`
}

// DeliveryView is one recorded flush attempt.
type DeliveryView struct {
	ID             uuid.UUID `json:"id"`
	RecipientID    string    `json:"recipient_id"`
	RecipientEmail string    `json:"recipient_email"`
	Subject        string    `json:"subject"`
	EventCount     int       `json:"event_count"`
	Kinds          []string  `json:"kinds"`
	Status         string    `json:"status"`
	Error          *string   `json:"error,omitempty"`
	AttemptedAt    time.Time `json:"attempted_at"`
}
