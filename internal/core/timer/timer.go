package timer

import (
	"sync"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/logging"

	"github.com/charmbracelet/log"
)

// TickUnit is the amount of remaining time consumed by every tick, regardless of wall-clock drift.
const TickUnit = time.Second

// SettingsStore persists the active TimerConfig.
type SettingsStore interface {
	Save(config model.TimerConfig) error
}

// Options contains runtime collaborators for IntervalTimer.
type Options struct {
	TickInterval time.Duration
	Scheduler    Scheduler
	Notifier     Notifier
	Store        SettingsStore
	Logger       *log.Logger
	Now          func() time.Time
}

// IntervalTimer is the pomodoro state machine.
type IntervalTimer struct {
	mu      sync.Mutex
	config  model.TimerConfig
	options Options

	phase              Phase
	remaining          time.Duration
	completedSinceLong int
	completedPomodoros int
	running            bool
	snapshot           Snapshot
	epoch              uint64
	cancelTicks        CancelFunc
	subscribers        []subscriber
	closed             bool
	saveGeneration     uint64
	saveMu             sync.Mutex
	pendingSaves       sync.WaitGroup
}

// New creates an idle IntervalTimer. An invalid config is replaced by the defaults.
func New(config model.TimerConfig, options Options) *IntervalTimer {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Scheduler == nil {
		options.Scheduler = NewTickerScheduler()
	}
	if options.Logger == nil {
		options.Logger = logging.Logger
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if err := config.Validate(); err != nil {
		options.Logger.Warn("falling back to default timer config", "err", err)
		config = model.DefaultTimerConfig()
	}

	timer := &IntervalTimer{
		config:    config,
		options:   options,
		phase:     PhaseIdle,
		remaining: config.Work,
	}
	timer.refreshSnapshotLocked()
	return timer
}

type subscriber struct {
	ch    chan Event
	types []EventType
}

func (sub subscriber) wants(eventType EventType) bool {
	if len(sub.types) == 0 {
		return true
	}
	for _, wanted := range sub.types {
		if wanted == eventType {
			return true
		}
	}
	return false
}

// Subscribe registers a new observer channel. Events are dropped when the buffer is full.
// When types are given, only those event types are delivered.
func (timer *IntervalTimer) Subscribe(buffer int, types ...EventType) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	if timer.closed {
		close(ch)
	} else {
		timer.subscribers = append(timer.subscribers, subscriber{ch: ch, types: types})
	}
	timer.mu.Unlock()
	return ch
}

// Snapshot returns the current display projection.
func (timer *IntervalTimer) Snapshot() Snapshot {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.snapshot
}

// Config returns the active settings.
func (timer *IntervalTimer) Config() model.TimerConfig {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.config
}

// Start begins or resumes the countdown. It is a no-op while running.
func (timer *IntervalTimer) Start() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.closed || timer.running {
		return
	}
	if timer.phase == PhaseIdle {
		timer.phase = PhaseWork
		timer.remaining = timer.config.Work
	}
	timer.running = true
	timer.epoch++
	epoch := timer.epoch
	timer.cancelTicks = timer.options.Scheduler.ScheduleRepeating(timer.options.TickInterval, func() {
		timer.tick(&epoch)
	})

	timer.refreshSnapshotLocked()
	timer.emitLocked(Event{Type: EventCommand, Command: "start"})
	timer.options.Logger.Debug("timer started", "phase", timer.phase, "remaining", timer.snapshot.FormattedRemaining)
}

// Pause freezes the countdown, keeping phase and remaining time.
func (timer *IntervalTimer) Pause() {
	timer.mu.Lock()
	if !timer.running {
		timer.mu.Unlock()
		return
	}
	cancel := timer.stopLocked()
	timer.refreshSnapshotLocked()
	timer.emitLocked(Event{Type: EventCommand, Command: "pause"})
	timer.options.Logger.Debug("timer paused", "phase", timer.phase, "remaining", timer.snapshot.FormattedRemaining)
	timer.mu.Unlock()

	cancel()
}

// Toggle pauses a running timer and starts a stopped one.
func (timer *IntervalTimer) Toggle() {
	timer.mu.Lock()
	running := timer.running
	timer.mu.Unlock()

	if running {
		timer.Pause()
		return
	}
	timer.Start()
}

// Reset stops the timer and returns to Idle. Completed pomodoros are kept.
func (timer *IntervalTimer) Reset() {
	timer.mu.Lock()
	cancel := timer.stopLocked()
	timer.resetStateLocked()
	timer.refreshSnapshotLocked()
	timer.emitLocked(Event{Type: EventCommand, Command: "reset"})
	timer.options.Logger.Debug("timer reset", "completed", timer.completedPomodoros)
	timer.mu.Unlock()

	cancel()
}

// ApplySettings validates and installs a new config, resetting the timer to Idle.
// The config is written to the settings store in the background.
func (timer *IntervalTimer) ApplySettings(config model.TimerConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	timer.mu.Lock()
	cancel := timer.stopLocked()
	timer.config = config
	timer.resetStateLocked()
	timer.refreshSnapshotLocked()
	timer.emitLocked(Event{Type: EventSettingsApplied})
	timer.saveGeneration++
	generation := timer.saveGeneration
	timer.options.Logger.Info("settings applied",
		"work", config.Work,
		"short_break", config.ShortBreak,
		"long_break", config.LongBreak,
		"intervals", config.WorkIntervalsPerLongBreak)
	timer.mu.Unlock()

	cancel()
	timer.persist(config, generation)
	return nil
}

// ApplyMinutes applies settings expressed in whole minutes.
func (timer *IntervalTimer) ApplyMinutes(workMinutes, shortBreakMinutes, longBreakMinutes, workIntervals int) error {
	if err := model.ValidateMinutes(workMinutes, shortBreakMinutes, longBreakMinutes); err != nil {
		return err
	}
	return timer.ApplySettings(model.TimerConfigFromMinutes(workMinutes, shortBreakMinutes, longBreakMinutes, workIntervals))
}

// RestoreDefaults applies the default schedule.
func (timer *IntervalTimer) RestoreDefaults() {
	_ = timer.ApplySettings(model.DefaultTimerConfig())
}

// Tick advances the countdown by one TickUnit. It is a no-op unless running.
func (timer *IntervalTimer) Tick() {
	timer.tick(nil)
}

// Close stops ticking, closes observers and waits for pending settings writes.
func (timer *IntervalTimer) Close() {
	timer.mu.Lock()
	if timer.closed {
		timer.mu.Unlock()
		timer.pendingSaves.Wait()
		return
	}
	cancel := timer.stopLocked()
	timer.refreshSnapshotLocked()
	timer.closed = true
	subscribers := timer.subscribers
	timer.subscribers = nil
	timer.mu.Unlock()

	cancel()
	for _, sub := range subscribers {
		close(sub.ch)
	}
	timer.pendingSaves.Wait()
}

func (timer *IntervalTimer) tick(epoch *uint64) {
	timer.mu.Lock()
	if !timer.running || !timer.phase.Timed() || (epoch != nil && *epoch != timer.epoch) {
		timer.mu.Unlock()
		return
	}

	if timer.remaining > TickUnit {
		timer.remaining -= TickUnit
	} else {
		timer.remaining = 0
	}

	if timer.remaining > 0 {
		timer.refreshSnapshotLocked()
		timer.emitLocked(Event{Type: EventProgress})
		timer.mu.Unlock()
		return
	}

	previous := timer.phase
	timer.transitionLocked()
	timer.refreshSnapshotLocked()
	timer.emitLocked(Event{Type: EventPhaseChange, Previous: previous})
	notification := notificationFor(timer.phase)
	notifier := timer.options.Notifier
	timer.options.Logger.Info("phase changed",
		"from", previous,
		"to", timer.phase,
		"completed", timer.completedPomodoros,
		"since_long_break", timer.completedSinceLong)
	timer.mu.Unlock()

	if notifier != nil {
		notifier.Notify(notification)
	}
}

func (timer *IntervalTimer) transitionLocked() {
	switch timer.phase {
	case PhaseWork:
		timer.completedSinceLong++
		timer.completedPomodoros++
		if timer.completedSinceLong >= timer.config.WorkIntervalsPerLongBreak {
			timer.phase = PhaseLongBreak
			timer.remaining = timer.config.LongBreak
			timer.completedSinceLong = 0
		} else {
			timer.phase = PhaseShortBreak
			timer.remaining = timer.config.ShortBreak
		}
	case PhaseShortBreak, PhaseLongBreak:
		timer.phase = PhaseWork
		timer.remaining = timer.config.Work
	}
}

// stopLocked clears the running flag and invalidates in-flight ticks.
// The returned cancel must be called after releasing the lock.
func (timer *IntervalTimer) stopLocked() CancelFunc {
	timer.running = false
	timer.epoch++
	cancel := timer.cancelTicks
	timer.cancelTicks = nil
	if cancel == nil {
		return func() {}
	}
	return cancel
}

func (timer *IntervalTimer) resetStateLocked() {
	timer.phase = PhaseIdle
	timer.remaining = timer.config.Work
	timer.completedSinceLong = 0
}

func (timer *IntervalTimer) refreshSnapshotLocked() {
	timer.snapshot = Snapshot{
		FormattedRemaining:                   FormatRemaining(timer.remaining),
		PhaseLabel:                           timer.phase.Label(),
		Running:                              timer.running,
		CompletedPomodoros:                   timer.completedPomodoros,
		Phase:                                timer.phase,
		Remaining:                            timer.remaining,
		CompletedWorkIntervalsSinceLongBreak: timer.completedSinceLong,
		Config:                               timer.config,
	}
}

func (timer *IntervalTimer) persist(config model.TimerConfig, generation uint64) {
	store := timer.options.Store
	if store == nil {
		return
	}

	timer.pendingSaves.Add(1)
	go func() {
		defer timer.pendingSaves.Done()
		timer.saveMu.Lock()
		defer timer.saveMu.Unlock()

		timer.mu.Lock()
		latest := timer.saveGeneration
		timer.mu.Unlock()
		if generation != latest {
			return
		}

		if err := store.Save(config); err != nil {
			timer.options.Logger.Warn("persist settings", "err", err)
		}
	}()
}

func (timer *IntervalTimer) emitLocked(event Event) {
	event.Snapshot = timer.snapshot
	if event.At.IsZero() {
		event.At = timer.options.Now()
	}
	for _, sub := range timer.subscribers {
		if !sub.wants(event.Type) {
			continue
		}
		select {
		case sub.ch <- event:
		default:
		}
	}
}
