//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"coachdesk/internal/domain/notification"
	"coachdesk/internal/pkg/errs"
	"coachdesk/internal/usecase/queries"
	"coachdesk/internal/usecase/shared"
	sharedmock "coachdesk/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationQueriesTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	scheduler  *sharedmock.MockNotificationScheduler
	deliveries *sharedmock.MockDeliveryLogReadStore
	queries    queries.NotificationQueries
}

func (s *NotificationQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.scheduler = sharedmock.NewMockNotificationScheduler(s.ctrl)
	s.deliveries = sharedmock.NewMockDeliveryLogReadStore(s.ctrl)
	s.queries = queries.NewNotificationQueries(s.scheduler, s.deliveries)
}

func (s *NotificationQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestNotificationQueriesSuite(t *testing.T) {
	suite.Run(t, new(NotificationQueriesTestSuite))
}

func (s *NotificationQueriesTestSuite) TestGetStatusSnapshot() {
	s.Run("copies the scheduler snapshot", func() {
		s.SetupTest()
		s.scheduler.EXPECT().Status().Return(shared.PendingStatus{
			RecipientCount: 1,
			TotalEvents:    3,
			Recipients: []shared.RecipientStatus{
				{RecipientID: "m1", EventCount: 3, HasLiveTimer: true},
			},
			ChannelReady:   true,
			IdleWindow:     30 * time.Second,
			DeliveredTotal: 4,
			FailedTotal:    1,
		})

		got := s.queries.GetStatusSnapshot(context.Background())

		want := &queries.PendingStatusView{
			RecipientCount: 1,
			TotalEvents:    3,
			Recipients: []queries.RecipientPendingView{
				{RecipientID: "m1", EventCount: 3, HasLiveTimer: true},
			},
			ChannelReady:   true,
			IdleWindow:     30 * time.Second,
			DeliveredTotal: 4,
			FailedTotal:    1,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			s.Failf("status mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("empty scheduler renders an empty list", func() {
		s.SetupTest()
		s.scheduler.EXPECT().Status().Return(shared.PendingStatus{})

		got := s.queries.GetStatusSnapshot(context.Background())

		s.NotNil(got.Recipients)
		s.Empty(got.Recipients)
		s.False(got.ChannelReady)
	})
}

func (s *NotificationQueriesTestSuite) TestGetChannel() {
	s.Run("not configured", func() {
		s.SetupTest()
		s.scheduler.EXPECT().Channel().Return(notification.Channel{}, false)

		_, err := s.queries.GetChannel(context.Background())
		s.True(errs.Is(err, queries.ErrChannelNotConfigured))
	})

	s.Run("configured", func() {
		s.SetupTest()
		s.scheduler.EXPECT().Channel().Return(notification.Channel{
			Provider:    notification.ProviderSES,
			FromAddress: "hello@coachdesk.io",
			FromName:    "Coachdesk",
		}, true)

		got, err := s.queries.GetChannel(context.Background())
		s.Require().NoError(err)
		s.Equal(&queries.ChannelView{Provider: "ses", FromAddress: "hello@coachdesk.io", FromName: "Coachdesk"}, got)
	})
}

func deliveryRecords(n int, start time.Time) []shared.DeliveryRecord {
	out := make([]shared.DeliveryRecord, n)
	for i := range out {
		out[i] = shared.DeliveryRecord{
			ID:             uuid.New(),
			RecipientID:    "m1",
			RecipientEmail: "m1@example.com",
			Subject:        "Your mentorship update: 1 Message",
			EventCount:     1,
			Kinds:          []string{"message"},
			Status:         shared.DeliveryStatusSent,
			AttemptedAt:    start.Add(-time.Duration(i) * time.Minute),
		}
	}
	return out
}

func (s *NotificationQueriesTestSuite) TestListDeliveries() {
	start := time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC)

	s.Run("last page has no cursor", func() {
		s.SetupTest()
		records := deliveryRecords(2, start)
		s.deliveries.EXPECT().ListByRecipient(gomock.Any(), "m1", (*shared.DeliveryCursor)(nil), 11).Return(records, nil)

		views, next, err := s.queries.ListDeliveries(context.Background(), "m1", nil, 10)

		s.Require().NoError(err)
		s.Nil(next)
		s.Require().Len(views, 2)
		s.Equal(records[0].ID, views[0].ID)
		s.Equal("sent", views[0].Status)
	})

	s.Run("extra row yields a cursor that round-trips", func() {
		s.SetupTest()
		records := deliveryRecords(3, start)
		s.deliveries.EXPECT().ListByRecipient(gomock.Any(), "m1", gomock.Nil(), 3).Return(records, nil)

		views, next, err := s.queries.ListDeliveries(context.Background(), "m1", nil, 2)
		s.Require().NoError(err)
		s.Len(views, 2)
		s.Require().NotNil(next)

		s.deliveries.EXPECT().ListByRecipient(gomock.Any(), "m1", &shared.DeliveryCursor{
			AttemptedAt: records[1].AttemptedAt,
			ID:          records[1].ID,
		}, 3).Return(nil, nil)

		views, next, err = s.queries.ListDeliveries(context.Background(), "m1", next, 2)
		s.Require().NoError(err)
		s.Empty(views)
		s.Nil(next)
	})

	s.Run("limit is clamped", func() {
		s.SetupTest()
		s.deliveries.EXPECT().ListByRecipient(gomock.Any(), "m1", gomock.Nil(), queries.MaxListLimit+1).Return(nil, nil)

		_, _, err := s.queries.ListDeliveries(context.Background(), "m1", nil, 10_000)
		s.NoError(err)
	})

	s.Run("rejects bad input", func() {
		s.SetupTest()
		s.deliveries.EXPECT().ListByRecipient(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, _, err := s.queries.ListDeliveries(context.Background(), "  ", nil, 10)
		s.True(errs.Is(err, queries.ErrRecipientRequired))

		_, _, err = s.queries.ListDeliveries(context.Background(), "m1", &queries.Cursor{After: "not-a-cursor"}, 10)
		s.True(errs.Is(err, queries.ErrInvalidCursor))
	})

	s.Run("store failure is wrapped", func() {
		s.SetupTest()
		storeErr := errors.New("connection refused")
		s.deliveries.EXPECT().ListByRecipient(gomock.Any(), "m1", gomock.Nil(), gomock.Any()).Return(nil, storeErr)

		_, _, err := s.queries.ListDeliveries(context.Background(), "m1", nil, 10)
		s.ErrorIs(err, storeErr)
	})
}

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 9, 15, 0, 0, 123456000, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !gotAt.Equal(at) || gotID != id {
		t.Fatalf("round trip mismatch: %v %v", gotAt, gotID)
	}

	if _, _, err := queries.DecodeAfterCursor(""); err == nil {
		t.Fatal("empty cursor must fail")
	}
}
