package preferences

import (
	"testing"

	"pomodoro/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormFromConfig(t *testing.T) {
	form := FormFromConfig(model.DefaultTimerConfig())

	assert.Equal(t, Form{
		WorkMinutes:       "25",
		ShortBreakMinutes: "5",
		LongBreakMinutes:  "15",
		WorkIntervals:     "4",
	}, form)
}

func TestParse(t *testing.T) {
	values, err := Form{
		WorkMinutes:       " 50 ",
		ShortBreakMinutes: "10",
		LongBreakMinutes:  "30",
		WorkIntervals:     "2",
	}.Parse()

	require.NoError(t, err)
	assert.Equal(t, Values{WorkMinutes: 50, ShortBreakMinutes: 10, LongBreakMinutes: 30, WorkIntervals: 2}, values)
}

func TestParseKeepsOutOfRangeValues(t *testing.T) {
	values, err := Form{WorkMinutes: "0", ShortBreakMinutes: "-1", LongBreakMinutes: "1", WorkIntervals: "1"}.Parse()

	require.NoError(t, err)
	assert.Equal(t, 0, values.WorkMinutes)
	assert.Equal(t, -1, values.ShortBreakMinutes)
}

func TestParseRejectsText(t *testing.T) {
	_, err := Form{WorkMinutes: "25", ShortBreakMinutes: "five", LongBreakMinutes: "15", WorkIntervals: "4"}.Parse()

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "Short break")
}
