package queries

import (
	"context"
	"strings"

	"coachdesk/internal/pkg/errs"
	"coachdesk/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

var (
	ErrChannelNotConfigured = errs.New("outbound channel not configured")
	ErrInvalidCursor        = errs.New("invalid cursor")
	ErrRecipientRequired    = errs.New("recipient id is required")
)

type NotificationQueries interface {
	GetStatusSnapshot(ctx context.Context) *PendingStatusView
	GetChannel(ctx context.Context) (*ChannelView, error)
	ListDeliveries(ctx context.Context, recipientID string, cursor *Cursor, limit int) ([]*DeliveryView, *Cursor, error)
}

type notificationQueriesImpl struct {
	scheduler  shared.NotificationScheduler
	deliveries shared.DeliveryLogReadStore
}

func NewNotificationQueries(scheduler shared.NotificationScheduler, deliveries shared.DeliveryLogReadStore) NotificationQueries {
	return &notificationQueriesImpl{
		scheduler:  scheduler,
		deliveries: deliveries,
	}
}

func (q *notificationQueriesImpl) GetStatusSnapshot(_ context.Context) *PendingStatusView {
	st := q.scheduler.Status()

	view := &PendingStatusView{}
	_ = copier.Copy(view, &st)
	if view.Recipients == nil {
		view.Recipients = []RecipientPendingView{}
	}
	return view
}

func (q *notificationQueriesImpl) GetChannel(_ context.Context) (*ChannelView, error) {
	ch, ok := q.scheduler.Channel()
	if !ok {
		return nil, ErrChannelNotConfigured
	}
	return &ChannelView{
		Provider:    string(ch.Provider),
		FromAddress: ch.FromAddress,
		FromName:    ch.FromName,
		Endpoint:    ch.Endpoint,
	}, nil
}

func (q *notificationQueriesImpl) ListDeliveries(ctx context.Context, recipientID string, cursor *Cursor, limit int) ([]*DeliveryView, *Cursor, error) {
	recipientID = strings.TrimSpace(recipientID)
	if recipientID == "" {
		return nil, nil, ErrRecipientRequired
	}
	limit = ValidateLimit(limit)

	var after *shared.DeliveryCursor
	if cursor != nil && cursor.After != "" {
		t, id, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidCursor)
		}
		after = &shared.DeliveryCursor{AttemptedAt: t, ID: id}
	}

	// One extra row tells us whether another page exists.
	records, err := q.deliveries.ListByRecipient(ctx, recipientID, after, limit+1)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to list deliveries")
	}

	var next *Cursor
	if len(records) > limit {
		records = records[:limit]
		last := records[len(records)-1]
		next = &Cursor{After: EncodeAfterCursor(last.AttemptedAt, last.ID)}
	}

	views := make([]*DeliveryView, len(records))
	for i, rec := range records {
		views[i] = toDeliveryView(rec)
	}
	return views, next, nil
}

func toDeliveryView(rec shared.DeliveryRecord) *DeliveryView {
	return &DeliveryView{
		ID:             rec.ID,
		RecipientID:    rec.RecipientID,
		RecipientEmail: rec.RecipientEmail,
		Subject:        rec.Subject,
		EventCount:     rec.EventCount,
		Kinds:          rec.Kinds,
		Status:         string(rec.Status),
		Error:          rec.Error,
		AttemptedAt:    rec.AttemptedAt,
	}
}
