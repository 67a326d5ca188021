package components

import (
	"context"
	"log/slog"

	"coachdesk/internal/handler/stream"
	"coachdesk/internal/pkg/config"
	"coachdesk/internal/usecase/commands"

	"go.uber.org/fx"
)

var StreamModule = fx.Module("stream",
	fx.Invoke(StartStreamConsumer),
)

// StartStreamConsumer runs the Kafka intake when KAFKA_BROKERS is set.
func StartStreamConsumer(lc fx.Lifecycle, cfg config.Config, cmds commands.NotificationCommands, logger *slog.Logger) {
	if !cfg.Kafka.Enabled() {
		logger.Info("kafka intake disabled; KAFKA_BROKERS is empty")
		return
	}

	reader := stream.NewReader(cfg.Kafka)
	consumer := stream.NewConsumer(reader, cmds, logger)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("kafka intake started",
				slog.String("topic", cfg.Kafka.EventsTopic),
				slog.String("group_id", cfg.Kafka.GroupID))
			go func() {
				defer close(done)
				if err := consumer.Run(ctx); err != nil {
					logger.Error("kafka intake stopped", slog.Any("error", err))
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return reader.Close()
		},
	})
}
