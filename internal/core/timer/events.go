package timer

import (
	"fmt"
	"time"

	"pomodoro/internal/core/model"
)

// Phase represents the current segment of the pomodoro cycle.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// Label returns the human readable name of the phase.
func (phase Phase) Label() string {
	switch phase {
	case PhaseWork:
		return "Work"
	case PhaseShortBreak:
		return "Short break"
	case PhaseLongBreak:
		return "Long break"
	default:
		return "Pomodoro"
	}
}

// Timed reports whether the phase consumes ticks.
func (phase Phase) Timed() bool {
	return phase == PhaseWork || phase == PhaseShortBreak || phase == PhaseLongBreak
}

// IsBreak reports whether the phase is a short or long break.
func (phase Phase) IsBreak() bool {
	return phase == PhaseShortBreak || phase == PhaseLongBreak
}

// Snapshot is the read-only display projection of the timer.
type Snapshot struct {
	FormattedRemaining string
	PhaseLabel         string
	Running            bool
	CompletedPomodoros int

	Phase                                Phase
	Remaining                            time.Duration
	CompletedWorkIntervalsSinceLongBreak int
	Config                               model.TimerConfig
}

// EventType defines the type of timer event.
type EventType string

const (
	EventPhaseChange     EventType = "phase_change"
	EventProgress        EventType = "progress"
	EventCommand         EventType = "command"
	EventSettingsApplied EventType = "settings_applied"
)

// Event represents a timer update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	// Previous is set on phase changes.
	Previous Phase
	Command  string
	At       time.Time
}

// FormatRemaining renders a duration as zero-padded MM:SS.
func FormatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining / time.Second)
	minutes := seconds / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
