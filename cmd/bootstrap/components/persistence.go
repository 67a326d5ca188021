package components

import (
	"context"
	"log/slog"

	"coachdesk/internal/infra/cache"
	"coachdesk/internal/infra/db"
	"coachdesk/internal/infra/readstore"
	"coachdesk/internal/infra/repository"
	"coachdesk/internal/pkg/config"
	"coachdesk/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	cacheModule,
)

var baseOption = fx.Provide(
	db.NewQueries,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Profile
		fx.Annotate(
			func(q *db.Queries) *db.Queries { return q },
			fx.As(new(readstore.ProfileReadQueries)),
		),
		readstore.NewProfileReadStore,
		// Delivery log
		fx.Annotate(
			func(q *db.Queries) *db.Queries { return q },
			fx.As(new(readstore.DeliveryReadQueries)),
		),
		fx.Annotate(
			readstore.NewDeliveryReadStore,
			fx.As(new(shared.DeliveryLogReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			func(q *db.Queries) *db.Queries { return q },
			fx.As(new(repository.DeliveryWriteQueries)),
		),
		fx.Annotate(
			repository.NewDeliveryRepository,
			fx.As(new(shared.DeliveryLogRepository)),
		),
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		NewRedisClient,
		NewRecipientDirectory,
	),
)

// NewRedisClient returns nil when REDIS_URL is unset.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	rdb, err := cache.NewClient(cfg.Redis)
	if err != nil || rdb == nil {
		return rdb, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				logger.Warn("redis unreachable; directory lookups go straight to postgres", slog.Any("error", err))
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb, nil
}

// NewRecipientDirectory puts the redis read-through cache in front of the
// profile store when redis is configured.
func NewRecipientDirectory(
	store *readstore.ProfileReadStore,
	rdb *redis.Client,
	cfg config.Config,
	logger *slog.Logger,
) shared.RecipientDirectory {
	if rdb == nil {
		return store
	}
	return cache.NewDirectory(store, rdb, cfg.Redis.CacheTTL, logger)
}
