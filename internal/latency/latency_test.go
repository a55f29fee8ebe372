package latency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWait(t *testing.T) {
	t.Run("zero duration returns immediately", func(t *testing.T) {
		assert.NoError(t, Wait(context.Background(), 0))
	})

	t.Run("waits for the duration", func(t *testing.T) {
		start := time.Now()
		assert.NoError(t, Wait(context.Background(), 20*time.Millisecond))
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("cancelled context aborts the wait", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Wait(ctx, time.Hour)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("cancelled context with zero duration still reports", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, Wait(ctx, 0), context.Canceled)
	})
}

func TestScale(t *testing.T) {
	assert.Equal(t, time.Duration(0), Scale(time.Second, 0))
	assert.Equal(t, 500*time.Millisecond, Scale(time.Second, 0.5))
	assert.Equal(t, time.Second, Scale(time.Second, 1))
}
