// Package stream feeds platform events from Kafka into the intake commands.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"coachdesk/internal/domain/notification"
	"coachdesk/internal/pkg/config"
	"coachdesk/internal/pkg/errs"
	"coachdesk/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
)

var ErrMalformedEvent = errs.New("malformed platform event")

const (
	fetchRetryDelay = 500 * time.Millisecond
	commitTimeout   = 3 * time.Second
)

// MessageReader is the subset of *kafka.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PlatformEvent is the JSON payload published by the rest of the platform.
type PlatformEvent struct {
	Type         string   `json:"type"`
	RecipientID  string   `json:"recipient_id,omitempty"`
	RecipientIDs []string `json:"recipient_ids,omitempty"`
	JobTitle     string   `json:"job_title,omitempty"`
	CompanyName  string   `json:"company_name,omitempty"`
	FileName     string   `json:"file_name,omitempty"`
	Message      string   `json:"message,omitempty"`
	TaskTitle    *string  `json:"task_title,omitempty"`
	Count        int      `json:"count,omitempty"`
}

func (e PlatformEvent) recipients() []string {
	var out []string
	if id := strings.TrimSpace(e.RecipientID); id != "" {
		out = append(out, id)
	}
	for _, id := range e.RecipientIDs {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}

func NewReader(cfg config.KafkaConfig) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          cfg.EventsTopic,
		GroupID:        cfg.GroupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0, // manual commits
	})
}

type Consumer struct {
	reader MessageReader
	cmds   commands.NotificationCommands
	logger *slog.Logger
}

func NewConsumer(reader MessageReader, cmds commands.NotificationCommands, logger *slog.Logger) *Consumer {
	return &Consumer{
		reader: reader,
		cmds:   cmds,
		logger: logger.With(slog.String("component", "stream_intake")),
	}
}

// Run consumes until ctx is cancelled. Every fetched message is committed once
// handled, malformed ones included, so a bad payload never blocks the partition.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Warn("kafka fetch failed", slog.Any("error", err))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(fetchRetryDelay):
			}
			continue
		}

		// Resolution must not be cut short by shutdown once a message is fetched,
		// since the message is committed right after.
		if err := c.Handle(context.WithoutCancel(ctx), m.Value); err != nil {
			c.logger.Warn("skipping platform event",
				slog.String("topic", m.Topic),
				slog.Int("partition", m.Partition),
				slog.Int64("offset", m.Offset),
				slog.Any("error", err))
		}

		cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), commitTimeout)
		if err := c.reader.CommitMessages(cctx, m); err != nil {
			c.logger.Warn("kafka commit failed", slog.Int64("offset", m.Offset), slog.Any("error", err))
		}
		cancel()
	}
}

// Handle decodes one payload and dispatches it to the intake commands.
func (c *Consumer) Handle(ctx context.Context, payload []byte) error {
	var ev PlatformEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return errs.Mark(err, ErrMalformedEvent)
	}

	kind, err := notification.ParseKind(ev.Type)
	if err != nil {
		return errs.Mark(err, ErrMalformedEvent)
	}
	ids := ev.recipients()
	if len(ids) == 0 {
		return errs.Mark(errors.New("event has no recipients"), ErrMalformedEvent)
	}

	var res commands.IntakeResult
	switch kind {
	case notification.KindJobRecommendation:
		for _, id := range ids {
			res = mergeResults(res, c.cmds.NotifyJobRecommendation(ctx, id, ev.JobTitle, ev.CompanyName))
		}
	case notification.KindFileUpload:
		for _, id := range ids {
			res = mergeResults(res, c.cmds.NotifyFileUpload(ctx, id, ev.FileName))
		}
	case notification.KindMessage:
		for _, id := range ids {
			res = mergeResults(res, c.cmds.NotifyMessage(ctx, id, ev.Message))
		}
	case notification.KindTaskAssignment:
		count := ev.Count
		if count < 1 {
			count = 1
		}
		res = c.cmds.NotifyTaskAssignment(ctx, ids, ev.TaskTitle, count)
	}

	c.logger.Debug("platform event dispatched",
		slog.String("type", kind.String()),
		slog.Int("queued", len(res.Queued)),
		slog.Int("skipped", len(res.Skipped)),
		slog.Int("dropped", len(res.Dropped)))
	return nil
}

func mergeResults(a, b commands.IntakeResult) commands.IntakeResult {
	a.Queued = append(a.Queued, b.Queued...)
	a.Skipped = append(a.Skipped, b.Skipped...)
	a.Dropped = append(a.Dropped, b.Dropped...)
	return a
}
