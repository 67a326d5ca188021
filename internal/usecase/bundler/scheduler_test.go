//go:build unit

package bundler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"coachdesk/internal/domain/notification"
	"coachdesk/internal/pkg/clock"
	"coachdesk/internal/pkg/config"
	"coachdesk/internal/usecase/bundler"
	"coachdesk/internal/usecase/shared"
	"coachdesk/tests/common/builder"
	sharedmock "coachdesk/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const window = 30 * time.Second

type SchedulerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	clock      *clock.MockClock
	transport  *sharedmock.MockEmailTransport
	deliveries *sharedmock.MockDeliveryLogRepository
	scheduler  *bundler.Scheduler
	sent       []shared.OutboundEmail
}

func (s *SchedulerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.clock = clock.NewMockClock(builder.DefaultEventTime)
	s.transport = sharedmock.NewMockEmailTransport(s.ctrl)
	s.deliveries = sharedmock.NewMockDeliveryLogRepository(s.ctrl)
	s.deliveries.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.sent = nil

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.scheduler = bundler.NewScheduler(s.clock, s.transport, s.deliveries, logger, window)
}

func (s *SchedulerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) configure() {
	s.Require().NoError(s.scheduler.Configure(builder.NewChannelBuilder().MustBuild()))
}

// expectSends records every outbound email and returns err for each call.
func (s *SchedulerTestSuite) expectSends(times int, err error) {
	s.transport.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ notification.Channel, msg shared.OutboundEmail) error {
			s.sent = append(s.sent, msg)
			return err
		}).Times(times)
}

func (s *SchedulerTestSuite) event(recipientID string, c notification.Content) *notification.PendingEvent {
	return builder.NewPendingEventBuilder().
		ForRecipient(recipientID, recipientID+"@example.com", "Mentee "+recipientID).
		WithContent(c).
		At(s.clock.Now()).
		MustBuild()
}

// ================================================================================
// Debounce
// ================================================================================

func (s *SchedulerTestSuite) TestSlidingWindow() {
	s.configure()
	s.expectSends(1, nil)

	s.scheduler.AddEvent(s.event("m1", notification.Message("alpha")))
	s.clock.Add(20 * time.Second)
	s.scheduler.AddEvent(s.event("m1", notification.Message("bravo")))
	s.clock.Add(20 * time.Second)
	s.scheduler.AddEvent(s.event("m1", notification.Message("charlie")))

	s.clock.Add(window - time.Second)
	s.Empty(s.sent, "must not fire before the idle window after the last event")

	s.clock.Add(time.Second)
	s.Require().Len(s.sent, 1)

	body := s.sent[0].Body
	a, b, c := strings.Index(body, "alpha"), strings.Index(body, "bravo"), strings.Index(body, "charlie")
	s.True(a >= 0 && a < b && b < c, "events listed in insertion order")
	s.Contains(s.sent[0].Subject, "3 Messages")

	s.clock.Add(time.Hour)
	s.Len(s.sent, 1, "exactly one delivery")
}

func (s *SchedulerTestSuite) TestPerRecipientIsolation() {
	s.configure()
	s.expectSends(2, nil)

	s.scheduler.AddEvent(s.event("a", notification.Message("for-a-1")))
	s.scheduler.AddEvent(s.event("b", notification.Message("for-b-1")))
	s.scheduler.AddEvent(s.event("a", notification.Message("for-a-2")))

	s.clock.Add(window)
	s.Require().Len(s.sent, 2)

	for _, msg := range s.sent {
		switch msg.ToEmail {
		case "a@example.com":
			s.Contains(msg.Body, "for-a-1")
			s.Contains(msg.Body, "for-a-2")
			s.NotContains(msg.Body, "for-b")
		case "b@example.com":
			s.Contains(msg.Body, "for-b-1")
			s.NotContains(msg.Body, "for-a")
		default:
			s.Failf("unexpected recipient", "%s", msg.ToEmail)
		}
	}
}

func (s *SchedulerTestSuite) TestConcreteScenario() {
	s.configure()
	s.expectSends(1, nil)

	ev := builder.NewPendingEventBuilder().
		ForRecipient("m1", "m1@example.com", "Jane Doe").
		WithContent(notification.JobRecommendation("Senior Engineer", "Acme")).
		MustBuild()
	s.True(s.scheduler.AddEvent(ev))

	s.clock.Add(window)

	s.Require().Len(s.sent, 1)
	got := s.sent[0]
	s.Equal("m1@example.com", got.ToEmail)
	s.Equal("Jane Doe", got.ToName)
	s.Contains(got.Subject, "1 Job")
	s.Contains(got.Body, "Senior Engineer")
	s.Contains(got.Body, "Acme")
	s.Contains(got.Body, "Jane Doe")
}

// ================================================================================
// Configuration
// ================================================================================

func (s *SchedulerTestSuite) TestDroppedWithoutChannel() {
	s.transport.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	accepted := s.scheduler.AddEvent(s.event("m1", notification.Message("lost")))

	s.False(accepted)
	st := s.scheduler.Status()
	s.Zero(st.RecipientCount)
	s.Zero(st.TotalEvents)
	s.False(st.ChannelReady)
	s.EqualValues(1, st.DroppedTotal)
	s.Zero(s.clock.PendingTimers())

	s.clock.Add(time.Hour)
}

func (s *SchedulerTestSuite) TestConfigureRejectsInvalidChannel() {
	err := s.scheduler.Configure(notification.Channel{Provider: "fax", FromAddress: "x@example.com"})
	s.ErrorIs(err, notification.ErrInvalidProvider)

	_, ok := s.scheduler.Channel()
	s.False(ok)
}

func (s *SchedulerTestSuite) TestNewSchedulerFromConfig() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.Run("configures the channel from settings", func() {
		cfg := config.NewTestConfig()
		sch, err := bundler.NewSchedulerFromConfig(cfg, s.clock, s.transport, nil, logger)
		s.Require().NoError(err)

		ch, ok := sch.Channel()
		s.True(ok)
		s.Equal(notification.ProviderLog, ch.Provider)
		s.Equal(cfg.Notify.IdleWindow, sch.IdleWindow())
	})

	s.Run("leaves the channel unset without a provider", func() {
		cfg := config.NewTestConfig()
		cfg.Notify.Provider = ""
		sch, err := bundler.NewSchedulerFromConfig(cfg, s.clock, s.transport, nil, logger)
		s.Require().NoError(err)

		_, ok := sch.Channel()
		s.False(ok)
	})

	s.Run("rejects invalid settings", func() {
		cfg := config.NewTestConfig()
		cfg.Notify.Provider = "smtp"
		_, err := bundler.NewSchedulerFromConfig(cfg, s.clock, s.transport, nil, logger)
		s.ErrorIs(err, notification.ErrMissingEndpoint)
	})

	s.Run("falls back to the default window", func() {
		sch := bundler.NewScheduler(s.clock, s.transport, nil, logger, 0)
		s.Equal(bundler.DefaultIdleWindow, sch.IdleWindow())
	})
}

// ================================================================================
// Flushing
// ================================================================================

func (s *SchedulerTestSuite) TestFlushOneCleansUp() {
	for _, tc := range []struct {
		name string
		err  error
	}{
		{name: "after success", err: nil},
		{name: "after failure", err: errors.New("smtp 554 rejected")},
	} {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.configure()
			s.expectSends(1, tc.err)

			s.scheduler.AddEvent(s.event("m1", notification.FileUpload("cv.pdf")))
			s.scheduler.AddEvent(s.event("m1", notification.Message("hello")))

			n := s.scheduler.FlushOne(context.Background(), "m1")
			s.Equal(2, n)

			st := s.scheduler.Status()
			s.Zero(st.TotalEvents)
			s.Zero(st.RecipientCount)
			s.Empty(st.Recipients)
			s.Zero(s.clock.PendingTimers(), "timer cancelled")

			s.clock.Add(time.Hour)
			s.Len(s.sent, 1, "the cancelled timer never sends again")
		})
	}
}

func (s *SchedulerTestSuite) TestFailureDiscardsEvents() {
	s.expectSends(1, errors.New("provider unavailable"))

	var recorded []shared.DeliveryRecord
	s.deliveries = sharedmock.NewMockDeliveryLogRepository(s.ctrl)
	s.deliveries.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec shared.DeliveryRecord) error {
			recorded = append(recorded, rec)
			return nil
		}).Times(1)
	s.scheduler = bundler.NewScheduler(s.clock, s.transport, s.deliveries, nil, window)
	s.configure()

	s.scheduler.AddEvent(s.event("m1", notification.TaskAssignment(nil, 1)))
	s.clock.Add(window)

	st := s.scheduler.Status()
	s.Zero(st.TotalEvents, "no retry: the queue is gone")
	s.EqualValues(1, st.FailedTotal)
	s.EqualValues(0, st.DeliveredTotal)

	s.Require().Len(recorded, 1)
	s.Equal(shared.DeliveryStatusFailed, recorded[0].Status)
	s.Require().NotNil(recorded[0].Error)
	s.Equal("provider unavailable", *recorded[0].Error)
	s.Equal([]string{"task_assignment"}, recorded[0].Kinds)
	s.Equal(1, recorded[0].EventCount)
}

func (s *SchedulerTestSuite) TestFlushOneAbsentRecipient() {
	s.configure()
	s.transport.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s.Zero(s.scheduler.FlushOne(context.Background(), "nobody"))
}

func (s *SchedulerTestSuite) TestFlushOneLeavesOthersAlone() {
	s.configure()
	s.expectSends(1, nil)

	title := "Update resume"
	s.scheduler.AddEvent(s.event("a", notification.TaskAssignment(&title, 1)))
	s.scheduler.AddEvent(s.event("b", notification.TaskAssignment(&title, 1)))

	s.scheduler.FlushOne(context.Background(), "a")

	st := s.scheduler.Status()
	s.Equal(1, st.RecipientCount)
	s.Require().Len(st.Recipients, 1)
	s.Equal(shared.RecipientStatus{RecipientID: "b", EventCount: 1, HasLiveTimer: true}, st.Recipients[0])

	s.expectSends(1, nil)
	s.clock.Add(window)
	s.Require().Len(s.sent, 2)
	s.Equal("b@example.com", s.sent[1].ToEmail)
}

func (s *SchedulerTestSuite) TestFlushAllInFirstQueuedOrder() {
	s.configure()
	s.expectSends(3, nil)

	s.scheduler.AddEvent(s.event("c", notification.Message("x")))
	s.scheduler.AddEvent(s.event("a", notification.Message("x")))
	s.scheduler.AddEvent(s.event("b", notification.Message("x")))
	s.scheduler.AddEvent(s.event("c", notification.Message("y")))

	n := s.scheduler.FlushAll(context.Background())

	s.Equal(3, n)
	s.Require().Len(s.sent, 3)
	s.Equal("c@example.com", s.sent[0].ToEmail)
	s.Equal("a@example.com", s.sent[1].ToEmail)
	s.Equal("b@example.com", s.sent[2].ToEmail)
	s.Zero(s.scheduler.Status().TotalEvents)
	s.Zero(s.clock.PendingTimers())
}

func (s *SchedulerTestSuite) TestEventDuringFlushStartsFreshQueue() {
	s.configure()

	late := s.event("m1", notification.Message("late arrival"))
	s.transport.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ notification.Channel, msg shared.OutboundEmail) error {
			s.sent = append(s.sent, msg)
			s.True(s.scheduler.AddEvent(late))
			return nil
		}).Times(1)

	s.scheduler.AddEvent(s.event("m1", notification.Message("early")))
	s.scheduler.FlushOne(context.Background(), "m1")

	s.Require().Len(s.sent, 1)
	s.NotContains(s.sent[0].Body, "late arrival")

	st := s.scheduler.Status()
	s.Require().Len(st.Recipients, 1)
	s.Equal(shared.RecipientStatus{RecipientID: "m1", EventCount: 1, HasLiveTimer: true}, st.Recipients[0])

	s.expectSends(1, nil)
	s.clock.Add(window)
	s.Require().Len(s.sent, 2)
	s.Contains(s.sent[1].Body, "late arrival")
	s.NotContains(s.sent[1].Body, "early")
}

// ================================================================================
// Status
// ================================================================================

func (s *SchedulerTestSuite) TestStatusIsReadOnly() {
	s.configure()

	s.scheduler.AddEvent(s.event("m1", notification.Message("a")))
	s.scheduler.AddEvent(s.event("m2", notification.Message("b")))
	s.scheduler.AddEvent(s.event("m2", notification.Message("c")))

	first := s.scheduler.Status()
	second := s.scheduler.Status()

	s.Equal(first, second)
	s.Equal(2, first.RecipientCount)
	s.Equal(3, first.TotalEvents)
	s.True(first.ChannelReady)
	s.Equal(window, first.IdleWindow)
	s.Equal([]shared.RecipientStatus{
		{RecipientID: "m1", EventCount: 1, HasLiveTimer: true},
		{RecipientID: "m2", EventCount: 2, HasLiveTimer: true},
	}, first.Recipients)
	s.Equal(2, s.clock.PendingTimers(), "one live timer per recipient")

	s.expectSends(2, nil)
	s.clock.Add(window)
}

// ================================================================================
// Robustness
// ================================================================================

func (s *SchedulerTestSuite) TestFlushIgnoresCallerCancellation() {
	s.configure()
	s.scheduler.AddEvent(s.event("m1", notification.Message("hello")))

	var sendErr error
	s.transport.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ notification.Channel, _ shared.OutboundEmail) error {
			sendErr = ctx.Err()
			return ctx.Err()
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.Equal(1, s.scheduler.FlushOne(ctx, "m1"))
	s.NoError(sendErr, "transport must get a live context after the queue is detached")

	st := s.scheduler.Status()
	s.Equal(uint64(1), st.DeliveredTotal)
	s.Zero(st.FailedTotal)
	s.Zero(st.TotalEvents)
}

func (s *SchedulerTestSuite) TestIdleDeliveryPanicIsContained() {
	s.configure()
	s.transport.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, notification.Channel, shared.OutboundEmail) error {
			panic("provider client bug")
		})

	s.scheduler.AddEvent(s.event("m1", notification.Message("hello")))

	s.NotPanics(func() { s.clock.Add(window) })

	st := s.scheduler.Status()
	s.Equal(uint64(1), st.FailedTotal)
	s.Zero(st.RecipientCount)

	// the scheduler keeps working for later events
	s.expectSends(1, nil)
	s.scheduler.AddEvent(s.event("m1", notification.Message("again")))
	s.clock.Add(window)
	s.Require().Len(s.sent, 1)
	s.Contains(s.sent[0].Body, "again")
}
