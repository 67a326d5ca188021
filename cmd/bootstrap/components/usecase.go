package components

import (
	"context"
	"log/slog"

	"coachdesk/internal/pkg/clock"
	"coachdesk/internal/usecase/bundler"
	"coachdesk/internal/usecase/commands"
	"coachdesk/internal/usecase/queries"
	"coachdesk/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	fx.Invoke(FlushOnStop),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		bundler.NewSchedulerFromConfig,
		fx.As(new(shared.NotificationScheduler)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewNotificationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewNotificationQueries,
	),
)

// FlushOnStop sends every pending digest before the process exits; armed
// timers would otherwise die with it.
func FlushOnStop(lc fx.Lifecycle, scheduler shared.NotificationScheduler, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			n := scheduler.FlushAll(ctx)
			logger.Info("flushed pending digests on shutdown", slog.Int("recipients", n))
			return nil
		},
	})
}
