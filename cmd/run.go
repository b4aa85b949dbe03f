package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"
	"pomodoro/internal/history"
	"pomodoro/internal/logging"
	"pomodoro/internal/notify"
	"pomodoro/internal/platform"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const subscriberBuffer = 16

// RunCmd starts the menu bar application
type RunCmd struct {
	Tick    time.Duration `help:"Countdown tick cadence" default:"1s" hidden:""`
	NoSound bool          `help:"Disable notification sounds"`
}

// Run executes the menu bar application
func (r *RunCmd) Run(cli *CLI) error {
	logger := logging.Logger

	guard, err := platform.AcquireSingleInstance(appName)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		if activateErr := platform.ActivateRunningInstance(appName, time.Second); activateErr != nil {
			logger.Warn("could not reach running instance", "err", activateErr)
		}
		fmt.Fprintln(cli.out(), "Pomodoro is already running.")
		return nil
	}
	if err != nil {
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	store, err := cli.settingsStore()
	if err != nil {
		return err
	}
	config, err := store.Load()
	if err != nil {
		logger.Warn("using default settings", "path", store.Path(), "err", err)
	}

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.MustIcon(resources.IconIdle))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		return errors.New("system tray unsupported on this platform")
	}

	trayWindow := fyneApp.NewWindow(appName)
	trayWindow.SetContent(widget.NewLabel("Pomodoro is running in the menu bar."))
	trayWindow.SetCloseIntercept(trayWindow.Hide)
	desktopApp.SetSystemTrayWindow(trayWindow)

	desktopNotifier := notify.NewDesktop(notify.SenderFunc(func(notification *fyne.Notification) {
		fyne.Do(func() {
			fyneApp.SendNotification(notification)
		})
	}), notify.DesktopOptions{Logger: logger})
	defer desktopNotifier.Close()

	notifiers := notify.Multi{desktopNotifier}
	var sound *notify.Sound
	if !r.NoSound {
		sound = notify.NewSound(logger)
		notifiers = append(notifiers, sound)
	}

	pomodoro := timer.New(config, timer.Options{
		TickInterval: r.Tick,
		Notifier:     notifiers,
		Store:        store,
		Logger:       logger,
	})

	var prefsWindow *preferences.Window
	trayManager := tray.New(desktopApp, tray.Callbacks{
		OnToggle: pomodoro.Toggle,
		OnReset:  pomodoro.Reset,
		OnPreferences: func() {
			showPreferences(prefsWindow, pomodoro)
		},
		OnRestoreDefaults: pomodoro.RestoreDefaults,
		OnQuit:            fyneApp.Quit,
	})
	prefsWindow = preferences.New(fyneApp, pomodoro.Config(), func(values preferences.Values) error {
		return pomodoro.ApplyMinutes(values.WorkMinutes, values.ShortBreakMinutes, values.LongBreakMinutes, values.WorkIntervals)
	}, func() model.TimerConfig {
		pomodoro.RestoreDefaults()
		return pomodoro.Config()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	uiEvents := pomodoro.Subscribe(subscriberBuffer)
	go func() {
		for event := range uiEvents {
			snapshot := event.Snapshot
			fyne.Do(func() {
				trayManager.Render(snapshot)
			})
		}
	}()

	journalDone := make(chan struct{})
	journal, err := r.openJournal(cli)
	if err != nil {
		logger.Warn("session journal unavailable", "err", err)
		close(journalDone)
	} else {
		defer journal.Close()
		if today, err := journal.CompletedWorkToday(ctx); err == nil {
			trayManager.SetToday(today)
		}
		journalEvents := pomodoro.Subscribe(subscriberBuffer, timer.EventPhaseChange)
		go func() {
			defer close(journalDone)
			journal.Follow(ctx, journalEvents, func(entry history.Entry) {
				if entry.Phase != timer.PhaseWork {
					return
				}
				today, err := journal.CompletedWorkToday(ctx)
				if err != nil {
					logger.Warn("count today's pomodoros", "err", err)
					return
				}
				fyne.Do(func() {
					trayManager.SetToday(today)
				})
			})
		}()
	}

	go guard.Serve(func() {
		fyne.Do(func() {
			showPreferences(prefsWindow, pomodoro)
		})
	})

	trayManager.Render(pomodoro.Snapshot())
	logger.Info("pomodoro started", "settings", store.Path())
	fyneApp.Run()

	pomodoro.Close()
	cancel()
	<-journalDone
	if sound != nil {
		sound.Wait()
	}
	logger.Info("pomodoro stopped")
	return nil
}

type configSource interface {
	Config() model.TimerConfig
}

// showPreferences refreshes the entries from the active config before showing the window.
func showPreferences(window *preferences.Window, source configSource) {
	window.UpdateConfig(source.Config())
	window.Show()
}

func (r *RunCmd) openJournal(cli *CLI) (*history.Journal, error) {
	dbPath, err := cli.databasePath()
	if err != nil {
		return nil, err
	}
	return history.Open(dbPath, logging.Logger)
}
