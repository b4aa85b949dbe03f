//go:build !darwin && !linux && !windows

package notify

import "pomodoro/internal/core/timer"

func soundsFor(timer.NotificationKind) []soundCommand {
	return nil
}
