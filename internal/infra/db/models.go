package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Profile struct {
	ID       uuid.UUID
	Email    string
	FullName pgtype.Text
	Role     string
}

type NotificationDelivery struct {
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
