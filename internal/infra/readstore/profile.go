package readstore

import (
	"context"
	"log/slog"
	"strings"

	"coachdesk/internal/domain/notification"
	"coachdesk/internal/infra"
	"coachdesk/internal/infra/db"
	"coachdesk/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProfileReadQueries interface {
	FindProfileByID(ctx context.Context, db db.DBTX, id uuid.UUID) (db.Profile, error)
}

// ProfileReadStore resolves recipient ids against the platform's profiles table.
type ProfileReadStore struct {
	queries ProfileReadQueries
	db      db.DBTX
	logger  *slog.Logger
}

func NewProfileReadStore(queries ProfileReadQueries, db db.DBTX, logger *slog.Logger) *ProfileReadStore {
	return &ProfileReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (s *ProfileReadStore) Resolve(ctx context.Context, recipientID string) (notification.Recipient, error) {
	id, err := uuid.Parse(strings.TrimSpace(recipientID))
	if err != nil {
		// Ids that cannot exist in the table are reported like missing rows.
		return notification.Recipient{}, infra.WrapRepoErr(s.logger, infra.KindNotFound, "malformed profile id", err)
	}

	row, err := s.queries.FindProfileByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return notification.Recipient{}, infra.WrapRepoErr(s.logger, infra.KindNotFound, "profile not found", err)
		}
		return notification.Recipient{}, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to find profile by ID", err)
	}

	return toRecipient(row), nil
}

func toRecipient(row db.Profile) notification.Recipient {
	return notification.Recipient{
		ID:          row.ID.String(),
		Email:       strings.TrimSpace(row.Email),
		DisplayName: strings.TrimSpace(pgconv.StringFromPgtype(row.FullName)),
	}
}
