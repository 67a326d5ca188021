package commands

import (
	"context"
	"log/slog"
	"strings"

	"coachdesk/internal/domain/notification"
	"coachdesk/internal/pkg/clock"
	"coachdesk/internal/pkg/errs"
	"coachdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidChannel = errs.New("invalid channel configuration")

// NotificationCommands is the intake surface used by the rest of the platform.
// Notify* calls await recipient resolution only; delivery happens later on the
// scheduler's timer and is never awaited here.
type NotificationCommands interface {
	NotifyJobRecommendation(ctx context.Context, recipientID, jobTitle, companyName string) IntakeResult
	NotifyFileUpload(ctx context.Context, recipientID, fileName string) IntakeResult
	NotifyMessage(ctx context.Context, recipientID, text string) IntakeResult
	NotifyTaskAssignment(ctx context.Context, recipientIDs []string, taskTitle *string, count int) IntakeResult
	FlushAllNow(ctx context.Context) int
	FlushRecipient(ctx context.Context, recipientID string) int
	ConfigureChannel(ctx context.Context, in ConfigureChannelInput) error
}

type notificationCommandsImpl struct {
	directory shared.RecipientDirectory
	scheduler shared.NotificationScheduler
	clock     clock.Clock
	logger    *slog.Logger
}

func NewNotificationCommands(
	directory shared.RecipientDirectory,
	scheduler shared.NotificationScheduler,
	clk clock.Clock,
	logger *slog.Logger,
) NotificationCommands {
	return &notificationCommandsImpl{
		directory: directory,
		scheduler: scheduler,
		clock:     clk,
		logger:    logger.With(slog.String("component", "intake")),
	}
}

func (uc *notificationCommandsImpl) NotifyJobRecommendation(ctx context.Context, recipientID, jobTitle, companyName string) IntakeResult {
	return uc.intake(ctx, []string{recipientID}, notification.JobRecommendation(jobTitle, companyName))
}

func (uc *notificationCommandsImpl) NotifyFileUpload(ctx context.Context, recipientID, fileName string) IntakeResult {
	return uc.intake(ctx, []string{recipientID}, notification.FileUpload(fileName))
}

func (uc *notificationCommandsImpl) NotifyMessage(ctx context.Context, recipientID, text string) IntakeResult {
	return uc.intake(ctx, []string{recipientID}, notification.Message(text))
}

// NotifyTaskAssignment gives every recipient its own event and its own timer.
func (uc *notificationCommandsImpl) NotifyTaskAssignment(ctx context.Context, recipientIDs []string, taskTitle *string, count int) IntakeResult {
	return uc.intake(ctx, dedupe(recipientIDs), notification.TaskAssignment(taskTitle, count))
}

func (uc *notificationCommandsImpl) FlushAllNow(ctx context.Context) int {
	return uc.scheduler.FlushAll(ctx)
}

func (uc *notificationCommandsImpl) FlushRecipient(ctx context.Context, recipientID string) int {
	return uc.scheduler.FlushOne(ctx, strings.TrimSpace(recipientID))
}

func (uc *notificationCommandsImpl) ConfigureChannel(_ context.Context, in ConfigureChannelInput) error {
	ch, err := notification.NewChannel(in.Provider, in.FromAddress, in.FromName, in.Endpoint)
	if err != nil {
		return errs.Mark(err, ErrInvalidChannel)
	}
	if err := uc.scheduler.Configure(ch); err != nil {
		return errs.Mark(err, ErrInvalidChannel)
	}
	return nil
}

func (uc *notificationCommandsImpl) intake(ctx context.Context, recipientIDs []string, content notification.Content) IntakeResult {
	var res IntakeResult
	for _, id := range recipientIDs {
		res.merge(uc.intakeOne(ctx, id, content))
	}
	return res
}

func (uc *notificationCommandsImpl) intakeOne(ctx context.Context, recipientID string, content notification.Content) IntakeResult {
	id := strings.TrimSpace(recipientID)
	log := uc.logger.With(slog.String("recipient_id", id), slog.String("kind", content.Kind.String()))

	if id == "" {
		log.Warn("skipping notification: empty recipient id")
		return IntakeResult{Skipped: []string{recipientID}}
	}

	recipient, err := uc.directory.Resolve(ctx, id)
	if err != nil {
		log.Warn("skipping notification: recipient lookup failed", slog.Any("error", err))
		return IntakeResult{Skipped: []string{id}}
	}
	// Queue key is the id callers use, whatever form the directory returns.
	recipient.ID = id

	ev, err := notification.NewPendingEvent(uuid.New(), recipient, content, uc.clock.Now())
	if err != nil {
		log.Warn("skipping notification: invalid event", slog.Any("error", err))
		return IntakeResult{Skipped: []string{id}}
	}

	if !uc.scheduler.AddEvent(ev) {
		return IntakeResult{Dropped: []string{id}}
	}
	return IntakeResult{Queued: []string{id}}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		key := strings.TrimSpace(id)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, id)
	}
	return out
}
