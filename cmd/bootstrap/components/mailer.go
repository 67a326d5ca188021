package components

import (
	"context"
	"log/slog"

	"coachdesk/internal/infra/mailer"
	"coachdesk/internal/pkg/clock"
	"coachdesk/internal/pkg/config"
	"coachdesk/internal/usecase/shared"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewEmailTransport,
	),
)

func NewEmailTransport(cfg config.Config, clk clock.Clock, logger *slog.Logger) (shared.EmailTransport, error) {
	return mailer.NewTransport(context.Background(), cfg.Mail, clk, logger)
}
