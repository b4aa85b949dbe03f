package main

import (
	"fmt"

	"pomodoro/internal/core/model"
	"pomodoro/internal/logging"
	"pomodoro/internal/storage"
)

// ConfigCmd groups the settings subcommands
type ConfigCmd struct {
	Show  ConfigShowCmd  `cmd:"" help:"Print the effective settings as YAML" default:"1"`
	Reset ConfigResetCmd `cmd:"" help:"Overwrite the settings file with the defaults"`
}

// ConfigShowCmd prints the settings the timer would start with
type ConfigShowCmd struct{}

// Run executes the show command
func (s *ConfigShowCmd) Run(cli *CLI) error {
	store, err := cli.settingsStore()
	if err != nil {
		return err
	}

	config, err := store.Load()
	if err != nil {
		logging.Logger.Warn("settings file unreadable, showing defaults", "path", store.Path(), "err", err)
	}

	data, err := storage.Marshal(config)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out(), "# %s\n%s", store.Path(), data)
	return nil
}

// ConfigResetCmd writes the default settings
type ConfigResetCmd struct{}

// Run executes the reset command
func (r *ConfigResetCmd) Run(cli *CLI) error {
	store, err := cli.settingsStore()
	if err != nil {
		return err
	}
	if err := store.Save(model.DefaultTimerConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cli.out(), "Settings reset to defaults at %s\n", store.Path())
	return nil
}
