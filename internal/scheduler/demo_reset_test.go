package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingReviews struct{ resets int }

func (c *countingReviews) Reset() { c.resets++ }

type countingLibrary struct {
	resets int
	err    error
}

func (c *countingLibrary) Reset() error {
	c.resets++
	return c.err
}

func TestDemoResetScheduler_RunNow(t *testing.T) {
	reviews := &countingReviews{}
	library := &countingLibrary{}
	s := NewDemoResetScheduler(reviews, library, "0 */6 * * *")

	require.True(t, s.LastRun().IsZero())
	require.NoError(t, s.RunNow())

	assert.Equal(t, 1, reviews.resets)
	assert.Equal(t, 1, library.resets)
	assert.False(t, s.LastRun().IsZero())
}

func TestDemoResetScheduler_RunNowLibraryError(t *testing.T) {
	library := &countingLibrary{err: errors.New("disk full")}
	s := NewDemoResetScheduler(&countingReviews{}, library, "0 */6 * * *")

	assert.Error(t, s.RunNow())
	assert.True(t, s.LastRun().IsZero())
}

func TestDemoResetScheduler_StartStop(t *testing.T) {
	s := NewDemoResetScheduler(&countingReviews{}, &countingLibrary{}, "0 */6 * * *")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))
	assert.True(t, s.IsRunning())
	require.NoError(t, s.Start(ctx), "second start is a no-op")

	next := s.NextRun()
	require.NotNil(t, next)
	assert.True(t, next.After(time.Now()))

	s.Stop()
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.NextRun())
	s.Stop()
}

func TestDemoResetScheduler_StopsWithContext(t *testing.T) {
	s := NewDemoResetScheduler(&countingReviews{}, &countingLibrary{}, "*/15 * * * *")
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, s.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool { return !s.IsRunning() }, time.Second, 10*time.Millisecond)
}

func TestDemoResetScheduler_InvalidSchedule(t *testing.T) {
	s := NewDemoResetScheduler(&countingReviews{}, &countingLibrary{}, "every day")

	assert.Error(t, s.Start(context.Background()))
	assert.False(t, s.IsRunning())
}

func TestScheduleHelpers(t *testing.T) {
	assert.NoError(t, ValidateSchedule("0 0 * * *"))
	assert.Error(t, ValidateSchedule("0 0 * *"))

	assert.Equal(t, "Every 6 hours", DescribeSchedule("0 */6 * * *"))
	assert.Equal(t, "Custom schedule: 5 4 * * *", DescribeSchedule("5 4 * * *"))

	from := time.Date(2024, 1, 1, 10, 30, 0, 0, time.Local)
	next, err := NextRunTime("0 * * * *", from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 11, 0, 0, 0, time.Local), next)
}
