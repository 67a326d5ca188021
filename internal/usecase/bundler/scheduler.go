// Package bundler coalesces notification events per recipient and sends them as
// one digest email once the recipient has been idle for a configured window.
//
// Each recipient owns a queue and at most one live timer. Every new event
// restarts the timer (a sliding window). When the timer fires, or when a flush
// is requested, the queue is removed from the map before the transport is
// called, so an event arriving mid-send always starts a fresh queue. Delivery is
// attempted exactly once; failures are logged and the events are discarded.
package bundler

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"coachdesk/internal/domain/notification"
	"coachdesk/internal/pkg/clock"
	"coachdesk/internal/pkg/config"
	"coachdesk/internal/pkg/errs"
	"coachdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

const DefaultIdleWindow = 30 * time.Second

type recipientQueue struct {
	events []*notification.PendingEvent
	timer  clock.Timer
	// gen identifies the live timer; callbacks carrying an older value are stale.
	gen uint64
}

type Scheduler struct {
	clock      clock.Clock
	window     time.Duration
	transport  shared.EmailTransport
	deliveries shared.DeliveryLogRepository
	logger     *slog.Logger

	mu      sync.Mutex
	channel *notification.Channel
	queues  map[string]*recipientQueue
	order   []string

	delivered atomic.Uint64
	failed    atomic.Uint64
	dropped   atomic.Uint64
}

func NewScheduler(
	clk clock.Clock,
	transport shared.EmailTransport,
	deliveries shared.DeliveryLogRepository,
	logger *slog.Logger,
	window time.Duration,
) *Scheduler {
	if window <= 0 {
		window = DefaultIdleWindow
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		clock:      clk,
		window:     window,
		transport:  transport,
		deliveries: deliveries,
		logger:     logger.With(slog.String("component", "bundler")),
		queues:     make(map[string]*recipientQueue),
	}
}

// NewSchedulerFromConfig builds the scheduler and applies the channel from
// NOTIFY_PROVIDER when one is set.
func NewSchedulerFromConfig(
	cfg config.Config,
	clk clock.Clock,
	transport shared.EmailTransport,
	deliveries shared.DeliveryLogRepository,
	logger *slog.Logger,
) (*Scheduler, error) {
	s := NewScheduler(clk, transport, deliveries, logger, cfg.Notify.IdleWindow)
	if cfg.Notify.Provider == "" {
		s.logger.Warn("no outbound channel configured; notifications are dropped until one is set")
		return s, nil
	}

	ch, err := notification.NewChannel(cfg.Notify.Provider, cfg.Notify.FromAddress, cfg.Notify.FromName, cfg.Notify.Endpoint)
	if err != nil {
		return nil, errs.Wrap(err, "invalid NOTIFY_* channel settings")
	}
	if err := s.Configure(ch); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) IdleWindow() time.Duration { return s.window }

func (s *Scheduler) Configure(ch notification.Channel) error {
	if err := ch.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.channel = &ch
	s.mu.Unlock()

	s.logger.Info("outbound channel configured",
		slog.String("provider", string(ch.Provider)),
		slog.String("from", ch.FromAddress))
	return nil
}

func (s *Scheduler) Channel() (notification.Channel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.channel == nil {
		return notification.Channel{}, false
	}
	return *s.channel, true
}

// AddEvent queues ev and restarts the recipient's idle timer. Without a
// configured channel the event is dropped and false is returned.
func (s *Scheduler) AddEvent(ev *notification.PendingEvent) bool {
	if ev == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.channel == nil {
		s.dropped.Add(1)
		s.logger.Debug("dropping event: no outbound channel configured",
			slog.String("recipient_id", ev.RecipientID()),
			slog.String("kind", ev.Kind().String()))
		return false
	}

	id := ev.RecipientID()
	q, ok := s.queues[id]
	if !ok {
		q = &recipientQueue{}
		s.queues[id] = q
		s.order = append(s.order, id)
	}
	q.events = append(q.events, ev)
	s.armLocked(id, q)

	s.logger.Debug("event queued",
		slog.String("recipient_id", id),
		slog.String("kind", ev.Kind().String()),
		slog.Int("pending", len(q.events)))
	return true
}

func (s *Scheduler) armLocked(id string, q *recipientQueue) {
	if q.timer != nil {
		q.timer.Stop()
	}
	q.gen++
	gen := q.gen
	q.timer = s.clock.AfterFunc(s.window, func() {
		s.onIdle(id, q, gen)
	})
}

func (s *Scheduler) onIdle(id string, q *recipientQueue, gen uint64) {
	// Timer goroutines have no caller to report to; a panic here must not take
	// the process down.
	defer func() {
		if r := recover(); r != nil {
			s.failed.Add(1)
			s.logger.Error("digest delivery panicked; pending events discarded",
				slog.String("recipient_id", id),
				slog.Any("panic", r))
		}
	}()

	events, ch, ok := s.detach(id, func(cur *recipientQueue) bool {
		return cur == q && cur.gen == gen
	})
	if !ok {
		return
	}
	s.deliver(context.Background(), id, events, ch)
}

// FlushOne delivers everything queued for recipientID now and returns the
// number of events handed to the transport. It returns once the attempt settles.
func (s *Scheduler) FlushOne(ctx context.Context, recipientID string) int {
	events, ch, ok := s.detach(recipientID, nil)
	if !ok {
		return 0
	}
	s.deliver(ctx, recipientID, events, ch)
	return len(events)
}

// FlushAll flushes every pending recipient sequentially in first-queued order
// and returns the number of recipients attempted.
func (s *Scheduler) FlushAll(ctx context.Context) int {
	s.mu.Lock()
	ids := slices.Clone(s.order)
	s.mu.Unlock()

	n := 0
	for _, id := range ids {
		if s.FlushOne(ctx, id) > 0 {
			n++
		}
	}
	return n
}

func (s *Scheduler) Status() shared.PendingStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := shared.PendingStatus{
		Recipients:     make([]shared.RecipientStatus, 0, len(s.order)),
		ChannelReady:   s.channel != nil,
		IdleWindow:     s.window,
		DeliveredTotal: s.delivered.Load(),
		FailedTotal:    s.failed.Load(),
		DroppedTotal:   s.dropped.Load(),
	}
	for _, id := range s.order {
		q := s.queues[id]
		if q == nil || len(q.events) == 0 {
			continue
		}
		st.RecipientCount++
		st.TotalEvents += len(q.events)
		st.Recipients = append(st.Recipients, shared.RecipientStatus{
			RecipientID:  id,
			EventCount:   len(q.events),
			HasLiveTimer: q.timer != nil,
		})
	}
	return st
}

// detach removes the recipient's queue and cancels its timer. match, when set,
// must accept the current queue or nothing is detached.
func (s *Scheduler) detach(id string, match func(*recipientQueue) bool) ([]*notification.PendingEvent, notification.Channel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.queues[id]
	if !ok || (match != nil && !match(q)) {
		return nil, notification.Channel{}, false
	}

	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
	delete(s.queues, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}

	if len(q.events) == 0 || s.channel == nil {
		return nil, notification.Channel{}, false
	}
	return q.events, *s.channel, true
}

func (s *Scheduler) deliver(ctx context.Context, id string, events []*notification.PendingEvent, ch notification.Channel) {
	first := events[0]
	digest := notification.ComposeDigest(first.RecipientName(), events)
	msg := shared.OutboundEmail{
		ToEmail: first.RecipientEmail(),
		ToName:  first.RecipientName(),
		Subject: digest.Subject,
		Body:    digest.Body,
	}

	rec := shared.DeliveryRecord{
		ID:             uuid.New(),
		RecipientID:    id,
		RecipientEmail: msg.ToEmail,
		Subject:        msg.Subject,
		EventCount:     len(events),
		Kinds:          kindsOf(events),
		Status:         shared.DeliveryStatusSent,
		AttemptedAt:    s.clock.Now(),
	}

	// The queue is already detached, so a caller hanging up must not abort the
	// send; the transport bounds it with its own timeout.
	if err := s.transport.Send(context.WithoutCancel(ctx), ch, msg); err != nil {
		s.failed.Add(1)
		errMsg := err.Error()
		rec.Status = shared.DeliveryStatusFailed
		rec.Error = &errMsg
		s.logger.Error("digest delivery failed; pending events discarded",
			slog.String("recipient_id", id),
			slog.String("to", msg.ToEmail),
			slog.Int("event_count", len(events)),
			slog.String("provider", string(ch.Provider)),
			slog.Any("error", err))
	} else {
		s.delivered.Add(1)
		s.logger.Info("digest delivered",
			slog.String("recipient_id", id),
			slog.String("to", msg.ToEmail),
			slog.Int("event_count", len(events)),
			slog.String("subject", msg.Subject))
	}

	s.recordDelivery(ctx, rec)
}

func (s *Scheduler) recordDelivery(ctx context.Context, rec shared.DeliveryRecord) {
	if s.deliveries == nil {
		return
	}
	if err := s.deliveries.Record(context.WithoutCancel(ctx), rec); err != nil {
		s.logger.Warn("failed to record delivery attempt",
			slog.String("recipient_id", rec.RecipientID),
			slog.Any("error", err))
	}
}

func kindsOf(events []*notification.PendingEvent) []string {
	seen := make(map[notification.Kind]bool, 4)
	for _, ev := range events {
		seen[ev.Kind()] = true
	}
	var out []string
	for _, k := range notification.DisplayOrder() {
		if seen[k] {
			out = append(out, k.String())
		}
	}
	return out
}
