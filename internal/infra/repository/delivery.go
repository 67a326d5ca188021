package repository

import (
	"context"
	"log/slog"

	"coachdesk/internal/infra"
	"coachdesk/internal/infra/db"
	"coachdesk/internal/pkg/pgconv"
	"coachdesk/internal/usecase/shared"
)

// DefaultDeliveryRetention is how many delivery rows are kept per recipient.
const DefaultDeliveryRetention = 100

type DeliveryWriteQueries interface {
	InsertDelivery(ctx context.Context, db db.DBTX, arg db.InsertDeliveryParams) error
	PruneDeliveries(ctx context.Context, db db.DBTX, recipientID string, keep int32) (int64, error)
}

type DeliveryRepository struct {
	queries   DeliveryWriteQueries
	pool      shared.TxBeginner
	logger    *slog.Logger
	retention int32
}

func NewDeliveryRepository(queries DeliveryWriteQueries, pool shared.TxBeginner, logger *slog.Logger) *DeliveryRepository {
	return &DeliveryRepository{
		queries:   queries,
		pool:      pool,
		logger:    logger,
		retention: DefaultDeliveryRetention,
	}
}

// Record stores one flush attempt and trims the recipient's history in the
// same transaction.
func (r *DeliveryRepository) Record(ctx context.Context, rec shared.DeliveryRecord) error {
	params := db.InsertDeliveryParams{
		ID:             rec.ID,
		RecipientID:    rec.RecipientID,
		RecipientEmail: rec.RecipientEmail,
		Subject:        rec.Subject,
		EventCount:     int32(rec.EventCount),
		Kinds:          rec.Kinds,
		Status:         string(rec.Status),
		Error:          pgconv.StringPtrToPgtype(rec.Error),
		AttemptedAt:    pgconv.TimeToPgtype(rec.AttemptedAt),
	}
	if params.Kinds == nil {
		params.Kinds = []string{}
	}

	pruned, err := shared.WithDefaultRetry(ctx, r.pool, func(tx db.DBTX) (int64, error) {
		if err := r.queries.InsertDelivery(ctx, tx, params); err != nil {
			return 0, err
		}
		return r.queries.PruneDeliveries(ctx, tx, rec.RecipientID, r.retention)
	})
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to record delivery", err)
	}

	if pruned > 0 {
		r.logger.Debug("pruned delivery history",
			slog.String("recipient_id", rec.RecipientID),
			slog.Int64("rows", pruned))
	}
	return nil
}
