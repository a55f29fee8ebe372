// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// ReviewResetter restores the seed reviews.
type ReviewResetter interface {
	Reset()
}

// LibraryResetter empties the reading list.
type LibraryResetter interface {
	Reset() error
}

// DemoResetScheduler periodically returns a shared demo instance to its
// initial data.
type DemoResetScheduler struct {
	reviews  ReviewResetter
	library  LibraryResetter
	schedule string

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.RWMutex
	isRunning bool
	lastRun   time.Time
}

func NewDemoResetScheduler(reviews ReviewResetter, library LibraryResetter, schedule string) *DemoResetScheduler {
	return &DemoResetScheduler{
		reviews:  reviews,
		library:  library,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(scheduleParser)),
	}
}

// Start schedules the reset job. It stops when ctx is done.
func (s *DemoResetScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		_ = s.RunNow()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule demo reset job: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true

	nextRun, _ := NextRunTime(s.schedule, time.Now())
	log.Printf("Demo reset scheduler: started with schedule '%s' (%s). Next run: %v",
		s.schedule, DescribeSchedule(s.schedule), nextRun)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running reset to finish.
func (s *DemoResetScheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	entryID := s.entryID
	s.mu.Unlock()

	// The job takes mu itself, so wait outside the lock.
	<-s.cron.Stop().Done()
	s.cron.Remove(entryID)

	log.Printf("Demo reset scheduler: stopped")
}

// RunNow resets reviews and library immediately.
func (s *DemoResetScheduler) RunNow() error {
	s.reviews.Reset()
	if err := s.library.Reset(); err != nil {
		log.Printf("Demo reset: failed to reset library: %v", err)
		return err
	}

	s.mu.Lock()
	s.lastRun = time.Now()
	s.mu.Unlock()

	log.Printf("Demo reset: reviews and library restored")
	return nil
}

func (s *DemoResetScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// LastRun is zero until the first reset.
func (s *DemoResetScheduler) LastRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRun
}

// NextRun returns nil while the scheduler is stopped.
func (s *DemoResetScheduler) NextRun() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}
