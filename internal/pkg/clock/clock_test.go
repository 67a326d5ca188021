//go:build unit

package clock_test

import (
	"testing"
	"time"

	"coachdesk/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)

	t.Run("fires timers once the deadline is reached", func(t *testing.T) {
		c := clock.NewMockClock(start)
		fired := 0
		c.AfterFunc(10*time.Second, func() { fired++ })

		c.Add(9 * time.Second)
		assert.Equal(t, 0, fired)

		c.Add(time.Second)
		assert.Equal(t, 1, fired)
		assert.Equal(t, 0, c.PendingTimers())

		c.Add(time.Minute)
		assert.Equal(t, 1, fired)
	})

	t.Run("stopped timers never fire", func(t *testing.T) {
		c := clock.NewMockClock(start)
		fired := false
		tm := c.AfterFunc(time.Second, func() { fired = true })

		assert.True(t, tm.Stop())
		assert.False(t, tm.Stop())

		c.Add(time.Hour)
		assert.False(t, fired)
	})

	t.Run("fires in deadline order", func(t *testing.T) {
		c := clock.NewMockClock(start)
		var order []string
		c.AfterFunc(3*time.Second, func() { order = append(order, "late") })
		c.AfterFunc(time.Second, func() { order = append(order, "early") })

		c.Add(5 * time.Second)
		assert.Equal(t, []string{"early", "late"}, order)
	})

	t.Run("callbacks may schedule new timers", func(t *testing.T) {
		c := clock.NewMockClock(start)
		fired := 0
		c.AfterFunc(time.Second, func() {
			c.AfterFunc(time.Second, func() { fired++ })
		})

		c.Add(time.Second)
		assert.Equal(t, 1, c.PendingTimers())
		c.Add(time.Second)
		assert.Equal(t, 1, fired)
	})
}
