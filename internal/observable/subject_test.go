package observable

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject_SubscribeReceivesCurrentValue(t *testing.T) {
	s := New([]string{"a"})

	var got []Snapshot[[]string]
	unsubscribe := s.Subscribe(func(snap Snapshot[[]string]) {
		got = append(got, snap)
	})
	defer unsubscribe()

	require.Len(t, got, 1)
	assert.Equal(t, uint64(1), got[0].Version)
	assert.Equal(t, []string{"a"}, got[0].Value)
}

func TestSubject_NextDeliversInOrder(t *testing.T) {
	s := New(0)

	var versions []uint64
	var values []int
	unsubscribe := s.Subscribe(func(snap Snapshot[int]) {
		versions = append(versions, snap.Version)
		values = append(values, snap.Value)
	})
	defer unsubscribe()

	s.Next(10)
	s.Next(20)
	snap := s.Next(30)

	assert.Equal(t, []int{0, 10, 20, 30}, values)
	assert.Equal(t, []uint64{1, 2, 3, 4}, versions)
	assert.Equal(t, uint64(4), snap.Version)
	assert.Equal(t, 30, s.Value())
}

func TestSubject_Unsubscribe(t *testing.T) {
	s := New("x")

	calls := 0
	unsubscribe := s.Subscribe(func(Snapshot[string]) { calls++ })
	assert.Equal(t, 1, s.Subscribers())

	unsubscribe()
	unsubscribe()
	s.Next("y")

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.Subscribers())
}

func TestSubject_ListenerMayReadValue(t *testing.T) {
	s := New(1)

	var seen []int
	unsubscribe := s.Subscribe(func(Snapshot[int]) {
		seen = append(seen, s.Value())
	})
	defer unsubscribe()

	s.Next(2)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestSubject_Channel(t *testing.T) {
	s := New(0)
	ctx, cancel := context.WithCancel(context.Background())

	ch := s.Channel(ctx)

	first := <-ch
	assert.Equal(t, 0, first.Value)

	// Publish faster than the reader consumes: only the newest survives.
	s.Next(1)
	s.Next(2)
	s.Next(3)

	latest := <-ch
	assert.Equal(t, 3, latest.Value)
	assert.Greater(t, latest.Version, first.Version)

	cancel()
	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should be closed after cancel")
	case <-time.After(time.Second):
		t.Fatal("channel was not closed")
	}
	assert.Eventually(t, func() bool { return s.Subscribers() == 0 }, time.Second, 10*time.Millisecond)
}
