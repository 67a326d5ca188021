//go:build unit

package cache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"coachdesk/internal/domain/notification"
	"coachdesk/internal/infra"
	"coachdesk/internal/infra/cache"
	"coachdesk/internal/pkg/config"
	sharedmock "coachdesk/tests/mock/shared"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*miniredis.Miniredis, *sharedmock.MockRecipientDirectory, *cache.Directory) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	next := sharedmock.NewMockRecipientDirectory(gomock.NewController(t))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return mr, next, cache.NewDirectory(next, rdb, time.Minute, logger)
}

func TestDirectory(t *testing.T) {
	jane := notification.Recipient{ID: "m1", Email: "jane@example.com", DisplayName: "Jane Doe"}

	t.Run("second lookup is served from redis", func(t *testing.T) {
		mr, next, dir := setup(t)
		next.EXPECT().Resolve(gomock.Any(), "m1").Return(jane, nil).Times(1)

		for range 2 {
			got, err := dir.Resolve(context.Background(), "m1")
			require.NoError(t, err)
			assert.Equal(t, jane, got)
		}
		assert.True(t, mr.Exists("coachdesk:recipient:m1"))
		assert.Equal(t, time.Minute, mr.TTL("coachdesk:recipient:m1"))
	})

	t.Run("entries expire with the ttl", func(t *testing.T) {
		mr, next, dir := setup(t)
		next.EXPECT().Resolve(gomock.Any(), "m1").Return(jane, nil).Times(2)

		_, err := dir.Resolve(context.Background(), "m1")
		require.NoError(t, err)
		mr.FastForward(2 * time.Minute)
		_, err = dir.Resolve(context.Background(), "m1")
		require.NoError(t, err)
	})

	t.Run("failures are not cached", func(t *testing.T) {
		mr, next, dir := setup(t)
		notFound := infra.RepositoryError{Kind: infra.KindNotFound}
		next.EXPECT().Resolve(gomock.Any(), "ghost").Return(notification.Recipient{}, notFound).Times(2)

		for range 2 {
			_, err := dir.Resolve(context.Background(), "ghost")
			assert.True(t, infra.IsKind(err, infra.KindNotFound))
		}
		assert.False(t, mr.Exists("coachdesk:recipient:ghost"))
	})

	t.Run("redis outage falls back to the directory", func(t *testing.T) {
		mr, next, dir := setup(t)
		mr.Close()
		next.EXPECT().Resolve(gomock.Any(), "m1").Return(jane, nil)

		got, err := dir.Resolve(context.Background(), "m1")
		require.NoError(t, err)
		assert.Equal(t, jane, got)
	})

	t.Run("unreadable entry is replaced", func(t *testing.T) {
		mr, next, dir := setup(t)
		require.NoError(t, mr.Set("coachdesk:recipient:m1", "{not json"))
		next.EXPECT().Resolve(gomock.Any(), "m1").Return(jane, nil)

		got, err := dir.Resolve(context.Background(), "m1")
		require.NoError(t, err)
		assert.Equal(t, jane, got)
	})
}

func TestNewClient(t *testing.T) {
	rdb, err := cache.NewClient(config.RedisConfig{})
	assert.NoError(t, err)
	assert.Nil(t, rdb)

	_, err = cache.NewClient(config.RedisConfig{URL: "://bad"})
	assert.Error(t, err)

	rdb, err = cache.NewClient(config.RedisConfig{URL: "redis://localhost:6379/2"})
	require.NoError(t, err)
	assert.Equal(t, 2, rdb.Options().DB)
	_ = rdb.Close()
}
