package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/logging"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkMinutes               int `yaml:"work_minutes"`
	ShortBreakMinutes         int `yaml:"short_break_minutes"`
	LongBreakMinutes          int `yaml:"long_break_minutes"`
	WorkIntervalsPerLongBreak int `yaml:"work_intervals_per_long_break"`
}

// SettingsStore keeps the timer configuration in a YAML file.
type SettingsStore struct {
	mu   sync.Mutex
	path string
}

// NewSettingsStore returns a store backed by the file at path.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// SettingsPath returns the settings file location inside a config directory.
func SettingsPath(configDir, appName string) string {
	return filepath.Join(configDir, appName, settingsFileName)
}

// Path returns the backing file path.
func (store *SettingsStore) Path() string {
	return store.path
}

// Load reads the timer configuration.
// Missing files yield defaults with no error; absent or non-positive keys fall back per key.
// On read or parse errors the defaults are returned along with the error.
func (store *SettingsStore) Load() (model.TimerConfig, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	config := model.DefaultTimerConfig()
	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return config, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&config, fileData)
	return config, nil
}

// Save writes the timer configuration, replacing the file atomically.
func (store *SettingsStore) Save(config model.TimerConfig) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if !config.WholeMinutes() {
		logging.Logger.Warn("settings rounded up to whole minutes",
			"work", config.Work,
			"short_break", config.ShortBreak,
			"long_break", config.LongBreak)
	}

	serialized, err := Marshal(config)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	tempPath := store.path + ".tmp"
	if err := os.WriteFile(tempPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := os.Rename(tempPath, store.path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("replace settings file: %w", err)
	}

	return nil
}

// Marshal renders a config in the settings file format. Partial minutes round up.
func Marshal(config model.TimerConfig) ([]byte, error) {
	work, shortBreak, longBreak := config.Minutes()
	return yaml.Marshal(yamlSettings{
		WorkMinutes:               work,
		ShortBreakMinutes:         shortBreak,
		LongBreakMinutes:          longBreak,
		WorkIntervalsPerLongBreak: config.WorkIntervalsPerLongBreak,
	})
}

func applyYamlSettings(config *model.TimerConfig, fileData yamlSettings) {
	if usableMinutes(fileData.WorkMinutes) {
		config.Work = time.Duration(fileData.WorkMinutes) * time.Minute
	}
	if usableMinutes(fileData.ShortBreakMinutes) {
		config.ShortBreak = time.Duration(fileData.ShortBreakMinutes) * time.Minute
	}
	if usableMinutes(fileData.LongBreakMinutes) {
		config.LongBreak = time.Duration(fileData.LongBreakMinutes) * time.Minute
	}
	if fileData.WorkIntervalsPerLongBreak > 0 {
		config.WorkIntervalsPerLongBreak = fileData.WorkIntervalsPerLongBreak
	}
}

func usableMinutes(minutes int) bool {
	return minutes > 0 && minutes <= model.MaxMinutes
}
