package mailer

import (
	"context"
	"log/slog"

	"coachdesk/internal/domain/notification"
	"coachdesk/internal/usecase/shared"
)

// LogSender only logs the composed email. It backs the "log" provider used in
// development and tests.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger.With(slog.String("component", "log_mailer"))}
}

func (s *LogSender) Send(ctx context.Context, ch notification.Channel, msg shared.OutboundEmail) error {
	s.logger.InfoContext(ctx, "email (log provider)",
		slog.String("from", ch.From()),
		slog.String("to", recipientAddress(msg)),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Body))
	return nil
}
