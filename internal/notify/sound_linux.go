//go:build linux

package notify

import "pomodoro/internal/core/timer"

func soundsFor(kind timer.NotificationKind) []soundCommand {
	switch kind {
	case timer.NotifyShortBreak, timer.NotifyLongBreak:
		return []soundCommand{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.wav"}},
		}
	default:
		return []soundCommand{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.wav"}},
		}
	}
}
