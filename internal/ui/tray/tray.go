package tray

import (
	"fmt"

	"pomodoro/internal/core/timer"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
)

// App is the part of desktop.App the tray needs.
type App interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnToggle          func()
	OnReset           func()
	OnPreferences     func()
	OnRestoreDefaults func()
	OnQuit            func()
}

// Manager renders timer snapshots into the system tray menu.
type Manager struct {
	app        App
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	countItem  *fyne.MenuItem
	toggleItem *fyne.MenuItem
	menu       *fyne.Menu
	icon       string
	snapshot   timer.Snapshot
	today      int
}

// New creates a tray manager with the provided callbacks.
func New(app App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Pomodoro", nil)
	manager.statusItem.Disabled = true
	manager.countItem = fyne.NewMenuItem("", nil)
	manager.countItem.Disabled = true
	manager.toggleItem = fyne.NewMenuItem("Start", func() { invoke(manager.callbacks.OnToggle) })

	manager.menu = fyne.NewMenu("Pomodoro",
		manager.statusItem,
		manager.countItem,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		fyne.NewMenuItem("Reset", func() { invoke(manager.callbacks.OnReset) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences…", func() { invoke(manager.callbacks.OnPreferences) }),
		fyne.NewMenuItem("Restore default settings", func() { invoke(manager.callbacks.OnRestoreDefaults) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { invoke(manager.callbacks.OnQuit) }),
	)

	return manager
}

// Render updates the menu and icon from a snapshot. Call it on the UI thread.
func (manager *Manager) Render(snapshot timer.Snapshot) {
	manager.snapshot = snapshot
	manager.refresh()
}

// SetToday updates the number of pomodoros recorded today.
func (manager *Manager) SetToday(count int) {
	manager.today = count
	manager.refresh()
}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

func (manager *Manager) refresh() {
	manager.statusItem.Label = StatusLine(manager.snapshot)
	manager.countItem.Label = CountLine(manager.snapshot.CompletedPomodoros, manager.today)
	manager.toggleItem.Label = ToggleLabel(manager.snapshot)

	if icon := IconName(manager.snapshot); icon != manager.icon {
		manager.icon = icon
		manager.app.SetSystemTrayIcon(resources.MustIcon(icon))
	}
	manager.app.SetSystemTrayMenu(manager.menu)
}

// StatusLine renders the phase and countdown, e.g. "Work · 24:13".
func StatusLine(snapshot timer.Snapshot) string {
	status := fmt.Sprintf("%s · %s", snapshot.PhaseLabel, snapshot.FormattedRemaining)
	if !snapshot.Running && snapshot.Phase.Timed() {
		status += " (paused)"
	}
	return status
}

// CountLine renders the session and daily pomodoro counts.
func CountLine(session, today int) string {
	return fmt.Sprintf("Pomodoros: %d this session, %d today", session, today)
}

// ToggleLabel names the action of the start/pause item.
func ToggleLabel(snapshot timer.Snapshot) string {
	switch {
	case snapshot.Running:
		return "Pause"
	case snapshot.Phase.Timed():
		return "Resume"
	default:
		return "Start"
	}
}

// IconName picks the tray icon for a snapshot.
func IconName(snapshot timer.Snapshot) string {
	switch {
	case !snapshot.Phase.Timed():
		return resources.IconIdle
	case !snapshot.Running:
		return resources.IconPaused
	case snapshot.Phase.IsBreak():
		return resources.IconBreak
	default:
		return resources.IconWork
	}
}

func invoke(callback func()) {
	if callback != nil {
		callback()
	}
}
