package engine

import (
	"sync"
	"time"

	"github.com/pin0513/mido-learning-sub001/core"
)

// Task is a handle to an armed periodic callback
// Cancel is idempotent and never blocks on the callback
type Task interface {
	Cancel()
}

// Scheduler arms periodic callbacks
type Scheduler interface {
	Every(interval time.Duration, fn func()) Task
}

// TickerScheduler runs each task on its own goroutine driven by a time.Ticker
type TickerScheduler struct {
	wg sync.WaitGroup
}

// NewTickerScheduler creates a real-time scheduler
func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{}
}

type tickerTask struct {
	stopChan chan struct{}
	stopOnce sync.Once
}

// Every arms fn to run every interval until the returned task is cancelled
func (s *TickerScheduler) Every(interval time.Duration, fn func()) Task {
	t := &tickerTask{stopChan: make(chan struct{})}
	s.wg.Add(1)
	// core.Go routes a panicking callback to the crash handler
	core.Go(func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-t.stopChan:
				return
			case <-ticker.C:
				// Cancel may race a pending tick, recheck before firing
				select {
				case <-t.stopChan:
					return
				default:
				}
				fn()
			}
		}
	})
	return t
}

// Wait blocks until every cancelled task goroutine has exited
func (s *TickerScheduler) Wait() {
	s.wg.Wait()
}

func (t *tickerTask) Cancel() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
	})
}
