package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTimerConfig(t *testing.T) {
	config := DefaultTimerConfig()

	assert.Equal(t, 25*time.Minute, config.Work)
	assert.Equal(t, 5*time.Minute, config.ShortBreak)
	assert.Equal(t, 15*time.Minute, config.LongBreak)
	assert.Equal(t, 4, config.WorkIntervalsPerLongBreak)
	require.NoError(t, config.Validate())
}

func TestTimerConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  TimerConfig
		wantErr bool
	}{
		{"valid", TimerConfigFromMinutes(1, 1, 1, 1), false},
		{"zero work", TimerConfigFromMinutes(0, 5, 15, 4), true},
		{"negative short break", TimerConfigFromMinutes(25, -1, 15, 4), true},
		{"zero long break", TimerConfigFromMinutes(25, 5, 0, 4), true},
		{"zero intervals", TimerConfigFromMinutes(25, 5, 15, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTimerConfigMinutes(t *testing.T) {
	work, shortBreak, longBreak := TimerConfigFromMinutes(50, 10, 30, 3).Minutes()

	assert.Equal(t, 50, work)
	assert.Equal(t, 10, shortBreak)
	assert.Equal(t, 30, longBreak)
}

func TestValidateMinutes(t *testing.T) {
	require.NoError(t, ValidateMinutes(MaxMinutes, 5, 15))
	assert.ErrorIs(t, ValidateMinutes(MaxMinutes+1, 5, 15), ErrInvalidConfig)
	assert.ErrorIs(t, ValidateMinutes(25, 307445735, 15), ErrInvalidConfig)
	assert.ErrorIs(t, ValidateMinutes(25, 5, 307445735), ErrInvalidConfig)
}

func TestTimerConfigMinutesRoundsUp(t *testing.T) {
	config := TimerConfig{Work: 30 * time.Second, ShortBreak: 61 * time.Second, LongBreak: time.Minute}

	work, shortBreak, longBreak := config.Minutes()

	assert.Equal(t, 1, work)
	assert.Equal(t, 2, shortBreak)
	assert.Equal(t, 1, longBreak)
	assert.False(t, config.WholeMinutes())
	assert.True(t, DefaultTimerConfig().WholeMinutes())
}
