package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"
	"pomodoro/internal/history"
	"pomodoro/internal/storage"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	configDir string
	enabled   bool
	execPath  string
}

func (service *fakeService) GetConfigDir() (string, error) {
	return service.configDir, nil
}

func (service *fakeService) EnableAutostart(appName, execPath string) error {
	service.enabled = true
	service.execPath = execPath
	return nil
}

func (service *fakeService) DisableAutostart(appName string) error {
	service.enabled = false
	return nil
}

func (service *fakeService) AutostartEnabled(appName string) (bool, error) {
	return service.enabled, nil
}

func newParser(t *testing.T, cli *CLI) *kong.Kong {
	t.Helper()
	parser, err := kong.New(cli, kong.Name("pomodoro"), kong.Exit(func(int) {}))
	require.NoError(t, err)
	t.Cleanup(cli.Close)
	return parser
}

func TestParseRunFlags(t *testing.T) {
	var cli CLI
	parser := newParser(t, &cli)

	ctx, err := parser.Parse([]string{"--config-dir", t.TempDir(), "run", "--tick", "10ms", "--no-sound"})

	require.NoError(t, err)
	assert.Equal(t, "run", ctx.Command())
	assert.Equal(t, 10*time.Millisecond, cli.Run.Tick)
	assert.True(t, cli.Run.NoSound)
}

func TestParseConfigReset(t *testing.T) {
	var cli CLI
	parser := newParser(t, &cli)

	ctx, err := parser.Parse([]string{"config", "reset"})

	require.NoError(t, err)
	assert.Equal(t, "config reset", ctx.Command())
}

func TestParseAutostartFlagsAreExclusive(t *testing.T) {
	var cli CLI
	parser := newParser(t, &cli)

	_, err := parser.Parse([]string{"autostart", "--enable", "--disable"})

	assert.Error(t, err)
}

func TestConfigResetAndShow(t *testing.T) {
	var out bytes.Buffer
	cli := &CLI{ConfigDir: t.TempDir(), stdout: &out}

	require.NoError(t, (&ConfigResetCmd{}).Run(cli))
	settingsPath := storage.SettingsPath(cli.ConfigDir, appName)
	assert.Contains(t, out.String(), settingsPath)

	out.Reset()
	require.NoError(t, (&ConfigShowCmd{}).Run(cli))
	assert.Contains(t, out.String(), "work_minutes: 25")
	assert.Contains(t, out.String(), "work_intervals_per_long_break: 4")
}

func TestConfigShowReflectsSavedSettings(t *testing.T) {
	var out bytes.Buffer
	cli := &CLI{ConfigDir: t.TempDir(), stdout: &out}
	store, err := cli.settingsStore()
	require.NoError(t, err)
	require.NoError(t, store.Save(model.TimerConfigFromMinutes(50, 10, 30, 2)))

	require.NoError(t, (&ConfigShowCmd{}).Run(cli))

	assert.Contains(t, out.String(), "work_minutes: 50")
	assert.Contains(t, out.String(), "short_break_minutes: 10")
}

func TestConfigDirFallsBackToPlatform(t *testing.T) {
	dir := t.TempDir()
	cli := &CLI{platform: &fakeService{configDir: dir}}

	dbPath, err := cli.databasePath()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, appName, "history.db"), dbPath)
}

func TestAutostartCommand(t *testing.T) {
	var out bytes.Buffer
	service := &fakeService{}
	cli := &CLI{stdout: &out, platform: service}

	require.NoError(t, (&AutostartCmd{Enable: true}).Run(cli))
	assert.True(t, service.enabled)
	assert.NotEmpty(t, service.execPath)
	assert.Contains(t, out.String(), "enabled")

	out.Reset()
	require.NoError(t, (&AutostartCmd{Disable: true}).Run(cli))
	assert.False(t, service.enabled)
	assert.Contains(t, out.String(), "disabled")
}

func TestHistoryCommand(t *testing.T) {
	var out bytes.Buffer
	dbPath := filepath.Join(t.TempDir(), "history.db")
	cli := &CLI{DBPath: dbPath, stdout: &out}

	journal, err := history.Open(dbPath, nil)
	require.NoError(t, err)
	_, err = journal.Record(context.Background(), timer.PhaseWork, 25*time.Minute, time.Now())
	require.NoError(t, err)
	require.NoError(t, journal.Close())

	require.NoError(t, (&HistoryCmd{Limit: 5}).Run(cli))

	assert.Contains(t, out.String(), "Work")
	assert.Contains(t, out.String(), "25m0s")
	assert.Contains(t, out.String(), "Today: 1 pomodoros")
}
