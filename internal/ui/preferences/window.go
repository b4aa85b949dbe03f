package preferences

import (
	"errors"

	"pomodoro/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// SaveFunc applies parsed values. A non-nil error keeps the window open.
type SaveFunc func(values Values) error

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	onSave     SaveFunc
	onDefaults func() model.TimerConfig
	work       *widget.Entry
	shortBreak *widget.Entry
	longBreak  *widget.Entry
	intervals  *widget.Entry
	errorLabel *widget.Label
}

// New creates a preferences window. onDefaults restores and returns the default config.
func New(app fyne.App, config model.TimerConfig, onSave SaveFunc, onDefaults func() model.TimerConfig) *Window {
	window := app.NewWindow("Pomodoro Preferences")

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		onDefaults: onDefaults,
		work:       widget.NewEntry(),
		shortBreak: widget.NewEntry(),
		longBreak:  widget.NewEntry(),
		intervals:  widget.NewEntry(),
		errorLabel: widget.NewLabel(""),
	}
	prefs.errorLabel.Importance = widget.DangerImportance
	prefs.errorLabel.Wrapping = fyne.TextWrapWord
	prefs.errorLabel.Hide()
	prefs.UpdateConfig(config)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work"), prefs.work, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short break"), prefs.shortBreak, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break"), prefs.longBreak, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break every"), prefs.intervals, widget.NewLabel("pomodoros")),
		prefs.errorLabel,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	defaultsButton := widget.NewButton("Restore defaults", prefs.handleDefaults)
	cancelButton := widget.NewButton("Cancel", prefs.Hide)
	buttons := container.NewHBox(saveButton, defaultsButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.SetCloseIntercept(prefs.Hide)
	window.Resize(fyne.NewSize(380, 260))

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Hide hides the window and clears any pending error.
func (prefs *Window) Hide() {
	prefs.setError(nil)
	prefs.window.Hide()
}

// UpdateConfig replaces the entry values.
func (prefs *Window) UpdateConfig(config model.TimerConfig) {
	form := FormFromConfig(config)
	prefs.work.SetText(form.WorkMinutes)
	prefs.shortBreak.SetText(form.ShortBreakMinutes)
	prefs.longBreak.SetText(form.LongBreakMinutes)
	prefs.intervals.SetText(form.WorkIntervals)
}

// Form returns the current entry text.
func (prefs *Window) Form() Form {
	return Form{
		WorkMinutes:       prefs.work.Text,
		ShortBreakMinutes: prefs.shortBreak.Text,
		LongBreakMinutes:  prefs.longBreak.Text,
		WorkIntervals:     prefs.intervals.Text,
	}
}

func (prefs *Window) handleSave() {
	values, err := prefs.Form().Parse()
	if err == nil && prefs.onSave != nil {
		err = prefs.onSave(values)
	}
	if err != nil {
		prefs.setError(err)
		return
	}
	prefs.Hide()
}

func (prefs *Window) handleDefaults() {
	config := model.DefaultTimerConfig()
	if prefs.onDefaults != nil {
		config = prefs.onDefaults()
	}
	prefs.UpdateConfig(config)
	prefs.setError(nil)
}

func (prefs *Window) setError(err error) {
	if err == nil {
		prefs.errorLabel.SetText("")
		prefs.errorLabel.Hide()
		return
	}
	message := err.Error()
	if errors.Is(err, model.ErrInvalidConfig) {
		message = "Invalid settings: " + message
	}
	prefs.errorLabel.SetText(message)
	prefs.errorLabel.Show()
}
