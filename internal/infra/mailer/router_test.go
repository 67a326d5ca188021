//go:build unit

package mailer

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"coachdesk/internal/domain/notification"
	"coachdesk/internal/pkg/errs"
	"coachdesk/internal/usecase/shared"
	sharedmock "coachdesk/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	smtpSender := sharedmock.NewMockEmailTransport(ctrl)
	router := NewRouter(map[notification.Provider]shared.EmailTransport{
		notification.ProviderSMTP: smtpSender,
		notification.ProviderLog:  NewLogSender(slog.New(slog.NewTextHandler(io.Discard, nil))),
	})

	smtpSender.EXPECT().Send(gomock.Any(), testChannel(notification.ProviderSMTP), testEmail()).Return(nil)
	assert.NoError(t, router.Send(context.Background(), testChannel(notification.ProviderSMTP), testEmail()))

	assert.NoError(t, router.Send(context.Background(), testChannel(notification.ProviderLog), testEmail()))

	err := router.Send(context.Background(), testChannel(notification.ProviderSES), testEmail())
	assert.True(t, errs.Is(err, ErrUnsupportedProvider))
}

func TestRateLimited(t *testing.T) {
	t.Run("applies the send timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := sharedmock.NewMockEmailTransport(ctrl)
		next.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ notification.Channel, _ shared.OutboundEmail) error {
				deadline, ok := ctx.Deadline()
				assert.True(t, ok)
				assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 500*time.Millisecond)
				return nil
			})

		limited := NewRateLimited(next, 0, 1, time.Second)
		assert.NoError(t, limited.Send(context.Background(), testChannel(notification.ProviderLog), testEmail()))
	})

	t.Run("waiting past the timeout fails without sending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := sharedmock.NewMockEmailTransport(ctrl)
		next.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

		// One token per minute: the second send cannot get one within 50ms.
		limited := NewRateLimited(next, 1.0/60, 1, 50*time.Millisecond)
		assert.NoError(t, limited.Send(context.Background(), testChannel(notification.ProviderLog), testEmail()))
		assert.Error(t, limited.Send(context.Background(), testChannel(notification.ProviderLog), testEmail()))
	})
}
