package model

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig indicates a non-positive duration or interval count.
var ErrInvalidConfig = errors.New("invalid timer config")

const (
	DefaultWorkMinutes               = 25
	DefaultShortBreakMinutes         = 5
	DefaultLongBreakMinutes          = 15
	DefaultWorkIntervalsPerLongBreak = 4
)

// MaxMinutes is the largest minute count a time.Duration can hold.
const MaxMinutes = int(math.MaxInt64 / int64(time.Minute))

// TimerConfig contains the user-configured pomodoro durations.
type TimerConfig struct {
	Work                      time.Duration
	ShortBreak                time.Duration
	LongBreak                 time.Duration
	WorkIntervalsPerLongBreak int
}

// DefaultTimerConfig returns the classic 25/5/15 schedule with a long break every 4 intervals.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Work:                      DefaultWorkMinutes * time.Minute,
		ShortBreak:                DefaultShortBreakMinutes * time.Minute,
		LongBreak:                 DefaultLongBreakMinutes * time.Minute,
		WorkIntervalsPerLongBreak: DefaultWorkIntervalsPerLongBreak,
	}
}

// TimerConfigFromMinutes converts user-facing minute values into a TimerConfig.
// The result is not validated.
func TimerConfigFromMinutes(workMinutes, shortBreakMinutes, longBreakMinutes, workIntervals int) TimerConfig {
	return TimerConfig{
		Work:                      time.Duration(workMinutes) * time.Minute,
		ShortBreak:                time.Duration(shortBreakMinutes) * time.Minute,
		LongBreak:                 time.Duration(longBreakMinutes) * time.Minute,
		WorkIntervalsPerLongBreak: workIntervals,
	}
}

// ValidateMinutes rejects minute values too large to convert to a time.Duration.
func ValidateMinutes(workMinutes, shortBreakMinutes, longBreakMinutes int) error {
	if workMinutes > MaxMinutes {
		return fmt.Errorf("%w: work minutes must be at most %d", ErrInvalidConfig, MaxMinutes)
	}
	if shortBreakMinutes > MaxMinutes {
		return fmt.Errorf("%w: short break minutes must be at most %d", ErrInvalidConfig, MaxMinutes)
	}
	if longBreakMinutes > MaxMinutes {
		return fmt.Errorf("%w: long break minutes must be at most %d", ErrInvalidConfig, MaxMinutes)
	}
	return nil
}

// Validate reports ErrInvalidConfig for non-positive values.
func (config TimerConfig) Validate() error {
	if config.Work <= 0 {
		return fmt.Errorf("%w: work duration must be positive", ErrInvalidConfig)
	}
	if config.ShortBreak <= 0 {
		return fmt.Errorf("%w: short break duration must be positive", ErrInvalidConfig)
	}
	if config.LongBreak <= 0 {
		return fmt.Errorf("%w: long break duration must be positive", ErrInvalidConfig)
	}
	if config.WorkIntervalsPerLongBreak < 1 {
		return fmt.Errorf("%w: work intervals per long break must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// Minutes returns the durations in whole minutes, as shown in the settings form.
// Partial minutes round up.
func (config TimerConfig) Minutes() (work, shortBreak, longBreak int) {
	return ceilMinutes(config.Work), ceilMinutes(config.ShortBreak), ceilMinutes(config.LongBreak)
}

// WholeMinutes reports whether every duration is a whole number of minutes.
func (config TimerConfig) WholeMinutes() bool {
	return config.Work%time.Minute == 0 &&
		config.ShortBreak%time.Minute == 0 &&
		config.LongBreak%time.Minute == 0
}

func ceilMinutes(duration time.Duration) int {
	minutes := duration / time.Minute
	if duration > 0 && duration%time.Minute != 0 {
		minutes++
	}
	return int(minutes)
}
