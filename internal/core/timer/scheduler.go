package timer

import (
	"sync"
	"time"
)

// CancelFunc stops a repeating schedule. It is safe to call more than once.
type CancelFunc func()

// Scheduler issues periodic tick callbacks.
type Scheduler interface {
	ScheduleRepeating(interval time.Duration, callback func()) CancelFunc
}

// TickerScheduler runs each schedule on its own goroutine driven by a time.Ticker.
type TickerScheduler struct{}

// NewTickerScheduler returns a wall-clock scheduler.
func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{}
}

// ScheduleRepeating starts invoking callback every interval until cancelled.
// After cancel returns no new callback is dispatched; one already in flight may still finish.
func (scheduler *TickerScheduler) ScheduleRepeating(interval time.Duration, callback func()) CancelFunc {
	if interval <= 0 {
		interval = time.Second
	}
	stopCh := make(chan struct{})
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				select {
				case <-stopCh:
					return
				default:
				}
				callback()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stopCh)
		})
	}
}
