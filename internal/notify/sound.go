package notify

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"pomodoro/internal/core/timer"
	"pomodoro/internal/logging"

	"github.com/charmbracelet/log"
)

// ErrNoPlayer indicates none of the platform sound players succeeded.
var ErrNoPlayer = errors.New("no sound player available")

type soundCommand struct {
	cmd  string
	args []string
}

// Sound plays a short chime on phase changes. Playback runs in the background.
type Sound struct {
	logger *log.Logger
	run    func(name string, args ...string) error
	bell   io.Writer
	wg     sync.WaitGroup
}

// NewSound creates a Sound notifier using the platform's audio players.
func NewSound(logger *log.Logger) *Sound {
	if logger == nil {
		logger = logging.Logger
	}
	return &Sound{
		logger: logger,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
		bell: os.Stdout,
	}
}

// Notify starts playback for the notification kind.
func (sound *Sound) Notify(notification timer.Notification) {
	sound.wg.Add(1)
	go func() {
		defer sound.wg.Done()
		if err := sound.Play(notification.Kind); err != nil {
			sound.logger.Warn("notification sound failed", "kind", notification.Kind, "err", err)
		}
	}()
}

// Play tries each platform player for kind and falls back to the terminal bell.
func (sound *Sound) Play(kind timer.NotificationKind) error {
	for _, candidate := range soundsFor(kind) {
		if err := sound.run(candidate.cmd, candidate.args...); err == nil {
			return nil
		}
	}
	if sound.bell == nil {
		return ErrNoPlayer
	}
	if _, err := fmt.Fprint(sound.bell, "\a"); err != nil {
		return fmt.Errorf("%w: terminal bell: %v", ErrNoPlayer, err)
	}
	return nil
}

// Wait blocks until background playback has finished.
func (sound *Sound) Wait() {
	sound.wg.Wait()
}
