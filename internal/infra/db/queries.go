package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Queries holds the hand-written statements used by the read stores and
// repositories. Every method takes the DBTX it runs on so callers can pass a
// pool or a transaction.
type Queries struct{}

func NewQueries() *Queries {
	return &Queries{}
}

const findProfileByID = `
SELECT id, email, full_name, role
FROM profiles
WHERE id = $1`

func (q *Queries) FindProfileByID(ctx context.Context, db DBTX, id uuid.UUID) (Profile, error) {
	var p Profile
	err := db.QueryRow(ctx, findProfileByID, id).Scan(&p.ID, &p.Email, &p.FullName, &p.Role)
	return p, err
}

const insertDelivery = `
INSERT INTO notification_deliveries (
    id, recipient_id, recipient_email, subject, event_count, kinds, status, error, attempted_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

type InsertDeliveryParams struct {
	ID             uuid.UUID
	RecipientID    string
	RecipientEmail string
	Subject        string
	EventCount     int32
	Kinds          []string
	Status         string
	Error          pgtype.Text
	AttemptedAt    pgtype.Timestamptz
}

func (q *Queries) InsertDelivery(ctx context.Context, db DBTX, arg InsertDeliveryParams) error {
	_, err := db.Exec(ctx, insertDelivery,
		arg.ID,
		arg.RecipientID,
		arg.RecipientEmail,
		arg.Subject,
		arg.EventCount,
		arg.Kinds,
		arg.Status,
		arg.Error,
		arg.AttemptedAt,
	)
	return err
}

// pruneDeliveries keeps the newest $2 rows of a recipient.
const pruneDeliveries = `
DELETE FROM notification_deliveries
WHERE recipient_id = $1
  AND id NOT IN (
    SELECT id FROM notification_deliveries
    WHERE recipient_id = $1
    ORDER BY attempted_at DESC, id DESC
    LIMIT $2
  )`

func (q *Queries) PruneDeliveries(ctx context.Context, db DBTX, recipientID string, keep int32) (int64, error) {
	tag, err := db.Exec(ctx, pruneDeliveries, recipientID, keep)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listDeliveriesByRecipient = `
SELECT id, recipient_id, recipient_email, subject, event_count, kinds, status, error, attempted_at
FROM notification_deliveries
WHERE recipient_id = $1
  AND ($2::timestamptz IS NULL OR (attempted_at, id) < ($2::timestamptz, $3::uuid))
ORDER BY attempted_at DESC, id DESC
LIMIT $4`

type ListDeliveriesParams struct {
	RecipientID string
	AfterTime   pgtype.Timestamptz
	AfterID     pgtype.UUID
	Limit       int32
}

func (q *Queries) ListDeliveriesByRecipient(ctx context.Context, db DBTX, arg ListDeliveriesParams) ([]NotificationDelivery, error) {
	rows, err := db.Query(ctx, listDeliveriesByRecipient, arg.RecipientID, arg.AfterTime, arg.AfterID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (NotificationDelivery, error) {
		var d NotificationDelivery
		err := row.Scan(
			&d.ID,
			&d.RecipientID,
			&d.RecipientEmail,
			&d.Subject,
			&d.EventCount,
			&d.Kinds,
			&d.Status,
			&d.Error,
			&d.AttemptedAt,
		)
		return d, err
	})
}
