package main

import (
	"fmt"
	"os"
)

// AutostartCmd toggles launching the timer at login
type AutostartCmd struct {
	Enable  bool `help:"Launch Pomodoro at login" xor:"autostart"`
	Disable bool `help:"Stop launching Pomodoro at login" xor:"autostart"`
}

// Run executes the autostart command
func (a *AutostartCmd) Run(cli *CLI) error {
	service := cli.service()

	switch {
	case a.Enable:
		execPath, err := os.Executable()
		if err != nil {
			return fmt.Errorf("resolve executable: %w", err)
		}
		if err := service.EnableAutostart(appName, execPath); err != nil {
			return err
		}
	case a.Disable:
		if err := service.DisableAutostart(appName); err != nil {
			return err
		}
	}

	enabled, err := service.AutostartEnabled(appName)
	if err != nil {
		return fmt.Errorf("check autostart: %w", err)
	}
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	fmt.Fprintf(cli.out(), "Launch at login: %s\n", state)
	return nil
}
