package preferences

import (
	"fmt"
	"strconv"
	"strings"

	"pomodoro/internal/core/model"
)

// Form holds the raw text of the preferences entries.
type Form struct {
	WorkMinutes       string
	ShortBreakMinutes string
	LongBreakMinutes  string
	WorkIntervals     string
}

// Values are parsed form fields in the units the timer accepts.
type Values struct {
	WorkMinutes       int
	ShortBreakMinutes int
	LongBreakMinutes  int
	WorkIntervals     int
}

// FormFromConfig renders a config into entry text.
func FormFromConfig(config model.TimerConfig) Form {
	work, shortBreak, longBreak := config.Minutes()
	return Form{
		WorkMinutes:       strconv.Itoa(work),
		ShortBreakMinutes: strconv.Itoa(shortBreak),
		LongBreakMinutes:  strconv.Itoa(longBreak),
		WorkIntervals:     strconv.Itoa(config.WorkIntervalsPerLongBreak),
	}
}

// Parse converts the entries to integers. Range checks are left to the timer.
func (form Form) Parse() (Values, error) {
	var values Values
	fields := []struct {
		name  string
		text  string
		value *int
	}{
		{"Work", form.WorkMinutes, &values.WorkMinutes},
		{"Short break", form.ShortBreakMinutes, &values.ShortBreakMinutes},
		{"Long break", form.LongBreakMinutes, &values.LongBreakMinutes},
		{"Long break every", form.WorkIntervals, &values.WorkIntervals},
	}

	for _, field := range fields {
		parsed, err := strconv.Atoi(strings.TrimSpace(field.text))
		if err != nil {
			return Values{}, fmt.Errorf("%w: %s must be a whole number", model.ErrInvalidConfig, field.name)
		}
		*field.value = parsed
	}
	return values, nil
}
