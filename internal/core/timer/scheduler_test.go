package timer

import (
	"sync/atomic"
	"testing"
	"time"

	"pomodoro/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerSchedulerRepeatsUntilCancelled(t *testing.T) {
	var calls atomic.Int32
	cancel := NewTickerScheduler().ScheduleRepeating(5*time.Millisecond, func() {
		calls.Add(1)
	})

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()
	cancel()

	settled := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.LessOrEqual(t, calls.Load(), settled+1)
}

func TestTimerWithTickerScheduler(t *testing.T) {
	timer := New(model.TimerConfigFromMinutes(1, 1, 1, 1), Options{TickInterval: time.Millisecond})
	t.Cleanup(timer.Close)

	timer.Start()
	require.Eventually(t, func() bool {
		return timer.Snapshot().Phase == PhaseLongBreak
	}, 5*time.Second, 5*time.Millisecond)

	timer.Pause()
	paused := timer.Snapshot().Remaining
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, paused, timer.Snapshot().Remaining)
}
