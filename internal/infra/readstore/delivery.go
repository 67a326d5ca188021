package readstore

import (
	"context"
	"log/slog"

	"coachdesk/internal/infra"
	"coachdesk/internal/infra/db"
	"coachdesk/internal/pkg/pgconv"
	"coachdesk/internal/usecase/shared"
)

type DeliveryReadQueries interface {
	ListDeliveriesByRecipient(ctx context.Context, db db.DBTX, arg db.ListDeliveriesParams) ([]db.NotificationDelivery, error)
}

type DeliveryReadStore struct {
	queries DeliveryReadQueries
	db      db.DBTX
	logger  *slog.Logger
}

func NewDeliveryReadStore(queries DeliveryReadQueries, db db.DBTX, logger *slog.Logger) *DeliveryReadStore {
	return &DeliveryReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

// ListByRecipient returns the newest records first, strictly after the cursor
// when one is given.
func (s *DeliveryReadStore) ListByRecipient(ctx context.Context, recipientID string, after *shared.DeliveryCursor, limit int) ([]shared.DeliveryRecord, error) {
	params := db.ListDeliveriesParams{
		RecipientID: recipientID,
		Limit:       int32(limit),
	}
	if after != nil {
		params.AfterTime = pgconv.TimeToPgtype(after.AttemptedAt)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}

	rows, err := s.queries.ListDeliveriesByRecipient(ctx, s.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list deliveries", err)
	}

	out := make([]shared.DeliveryRecord, len(rows))
	for i, row := range rows {
		out[i] = toDeliveryRecord(row)
	}
	return out, nil
}

func toDeliveryRecord(row db.NotificationDelivery) shared.DeliveryRecord {
	return shared.DeliveryRecord{
		ID:             row.ID,
		RecipientID:    row.RecipientID,
		RecipientEmail: row.RecipientEmail,
		Subject:        row.Subject,
		EventCount:     int(row.EventCount),
		Kinds:          row.Kinds,
		Status:         shared.DeliveryStatus(row.Status),
		Error:          pgconv.StringPtrFromPgtype(row.Error),
		AttemptedAt:    pgconv.TimeFromPgtype(row.AttemptedAt),
	}
}
