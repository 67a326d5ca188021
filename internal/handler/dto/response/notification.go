package response

import (
	"coachdesk/internal/usecase/commands"
	"coachdesk/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type IntakeResponse struct {
	Queued  []string `json:"queued"`
	Skipped []string `json:"skipped"`
	Dropped []string `json:"dropped"`
}

func FromIntakeResult(r commands.IntakeResult) *IntakeResponse {
	return &IntakeResponse{
		Queued:  orEmpty(r.Queued),
		Skipped: orEmpty(r.Skipped),
		Dropped: orEmpty(r.Dropped),
	}
}

type FlushResponse struct {
	Flushed int `json:"flushed"`
}

type RecipientPendingResponse struct {
	RecipientID  string `json:"recipient_id"`
	EventCount   int    `json:"event_count"`
	HasLiveTimer bool   `json:"has_live_timer"`
}

type StatusResponse struct {
	RecipientCount    int                        `json:"recipient_count"`
	TotalEvents       int                        `json:"total_events"`
	Recipients        []RecipientPendingResponse `json:"recipients"`
	ChannelReady      bool                       `json:"channel_ready"`
	IdleWindowSeconds float64                    `json:"idle_window_seconds"`
	DeliveredTotal    uint64                     `json:"delivered_total"`
	FailedTotal       uint64                     `json:"failed_total"`
	DroppedTotal      uint64                     `json:"dropped_total"`
}

func FromStatusView(v *queries.PendingStatusView) *StatusResponse {
	res := &StatusResponse{}
	_ = copier.Copy(res, v)
	res.IdleWindowSeconds = v.IdleWindow.Seconds()
	if res.Recipients == nil {
		res.Recipients = []RecipientPendingResponse{}
	}
	return res
}

type ChannelResponse struct {
	Provider    string `json:"provider"`
	FromAddress string `json:"from_address"`
	FromName    string `json:"from_name"`
	Endpoint    string `json:"endpoint,omitempty"`
}

func FromChannelView(v *queries.ChannelView) *ChannelResponse {
	res := &ChannelResponse{}
	_ = copier.Copy(res, v)
	return res
}

type DeliveryResponse struct {
	ID             string   `json:"id"`
	RecipientID    string   `json:"recipient_id"`
	RecipientEmail string   `json:"recipient_email"`
	Subject        string   `json:"subject"`
	EventCount     int      `json:"event_count"`
	Kinds          []string `json:"kinds"`
	Status         string   `json:"status"`
	Error          *string  `json:"error,omitempty"`
	AttemptedAt    int64    `json:"attempted_at"`
}

func FromDeliveryList(items []*queries.DeliveryView) []*DeliveryResponse {
	res := make([]*DeliveryResponse, len(items))
	for i, it := range items {
		res[i] = &DeliveryResponse{
			ID:             it.ID.String(),
			RecipientID:    it.RecipientID,
			RecipientEmail: it.RecipientEmail,
			Subject:        it.Subject,
			EventCount:     it.EventCount,
			Kinds:          orEmpty(it.Kinds),
			Status:         it.Status,
			Error:          it.Error,
			AttemptedAt:    it.AttemptedAt.Unix(),
		}
	}
	return res
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
