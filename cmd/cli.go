package main

import (
	"fmt"
	"io"
	"os"

	"pomodoro/internal/history"
	"pomodoro/internal/logging"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
)

// CLI represents the command-line interface structure
type CLI struct {
	Debug     bool   `help:"Enable debug logging" short:"d" env:"POMODORO_DEBUG"`
	LogFile   string `help:"Write logs to this file instead of stderr" type:"path"`
	LogLevel  string `help:"Minimum log level" enum:"debug,info,warn,error" default:"info"`
	ConfigDir string `help:"Directory holding the Pomodoro settings folder" type:"path" env:"POMODORO_CONFIG_DIR"`
	DBPath    string `help:"Path to the session journal database" type:"path" env:"POMODORO_DB_PATH"`

	Run       RunCmd       `cmd:"" help:"Start the menu bar timer (default)" default:"1"`
	Config    ConfigCmd    `cmd:"" help:"Show or reset the saved settings"`
	History   HistoryCmd   `cmd:"" help:"List recently completed phases"`
	Autostart AutostartCmd `cmd:"" help:"Enable or disable launch at login"`

	stdout   io.Writer        `kong:"-"`
	closeLog func() error     `kong:"-"`
	platform platform.Service `kong:"-"`
}

// AfterApply initializes logging after CLI parsing
func (c *CLI) AfterApply() error {
	closer, err := logging.Initialize(logging.Options{
		Debug: c.Debug,
		File:  c.LogFile,
		Level: c.LogLevel,
	})
	if err != nil {
		return err
	}
	c.closeLog = closer
	return nil
}

// Close flushes and closes the log file, if any.
func (c *CLI) Close() {
	if c.closeLog != nil {
		_ = c.closeLog()
		c.closeLog = nil
	}
}

func (c *CLI) out() io.Writer {
	if c.stdout == nil {
		return os.Stdout
	}
	return c.stdout
}

func (c *CLI) service() platform.Service {
	if c.platform == nil {
		c.platform = platform.NewService()
	}
	return c.platform
}

func (c *CLI) configDir() (string, error) {
	if c.ConfigDir != "" {
		return c.ConfigDir, nil
	}
	dir, err := c.service().GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return dir, nil
}

func (c *CLI) settingsStore() (*storage.SettingsStore, error) {
	dir, err := c.configDir()
	if err != nil {
		return nil, err
	}
	return storage.NewSettingsStore(storage.SettingsPath(dir, appName)), nil
}

func (c *CLI) databasePath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	dir, err := c.configDir()
	if err != nil {
		return "", err
	}
	return history.DatabasePath(dir, appName), nil
}
