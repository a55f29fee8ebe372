// Package observable holds a value and pushes every new version of it to
// subscribers.
//
// A Subject behaves like a behaviour subject: subscribers receive the
// current value as soon as they subscribe, then every later value in
// publish order. Each published value carries a Version that strictly
// increases, so consumers can tell snapshots apart and never see a
// partial update.
package observable

import (
	"context"
	"sync"
)

// Snapshot is one published value of a Subject.
type Snapshot[T any] struct {
	Version uint64
	Value   T
}

type Subject[T any] struct {
	// publishMu serialises Next and the delivery that follows it.
	publishMu sync.Mutex

	mu        sync.RWMutex
	version   uint64
	value     T
	nextID    uint64
	listeners map[uint64]func(Snapshot[T])
}

// New creates a subject holding initial as version 1.
func New[T any](initial T) *Subject[T] {
	return &Subject[T]{
		version:   1,
		value:     initial,
		listeners: make(map[uint64]func(Snapshot[T])),
	}
}

// Value returns the current value.
func (s *Subject[T]) Value() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Snapshot returns the current value with its version.
func (s *Subject[T]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot[T]{Version: s.version, Value: s.value}
}

// Next publishes v and calls every listener synchronously before returning.
// Listeners must not call Next or Subscribe on the same subject.
func (s *Subject[T]) Next(v T) Snapshot[T] {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	s.version++
	s.value = v
	snap := Snapshot[T]{Version: s.version, Value: v}
	listeners := make([]func(Snapshot[T]), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
	return snap
}

// Subscribe registers fn and immediately calls it with the current
// snapshot. The returned function removes the listener; it is safe to call
// more than once and from inside a listener.
func (s *Subject[T]) Subscribe(fn func(Snapshot[T])) (unsubscribe func()) {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners[id] = fn
	snap := Snapshot[T]{Version: s.version, Value: s.value}
	s.mu.Unlock()

	fn(snap)

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Subscribers returns the number of registered listeners.
func (s *Subject[T]) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

// Channel delivers snapshots on a channel until ctx is done, then closes it.
// A slow reader only ever sees the newest undelivered snapshot; older ones
// are dropped, so versions received are still strictly increasing.
func (s *Subject[T]) Channel(ctx context.Context) <-chan Snapshot[T] {
	ch := make(chan Snapshot[T], 1)

	var mu sync.Mutex
	closed := false

	unsubscribe := s.Subscribe(func(snap Snapshot[T]) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	})

	go func() {
		<-ctx.Done()
		unsubscribe()
		mu.Lock()
		closed = true
		close(ch)
		mu.Unlock()
	}()

	return ch
}
