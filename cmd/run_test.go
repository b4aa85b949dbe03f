package main

import (
	"testing"

	"pomodoro/internal/core/model"
	"pomodoro/internal/ui/preferences"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

type staticConfig model.TimerConfig

func (config staticConfig) Config() model.TimerConfig {
	return model.TimerConfig(config)
}

func TestShowPreferencesRefreshesEntries(t *testing.T) {
	window := preferences.New(test.NewApp(), model.TimerConfigFromMinutes(1, 1, 1, 1), nil, nil)
	active := model.DefaultTimerConfig()

	showPreferences(window, staticConfig(active))

	assert.Equal(t, preferences.FormFromConfig(active), window.Form())
}
