//go:build darwin

package notify

import "pomodoro/internal/core/timer"

func soundsFor(kind timer.NotificationKind) []soundCommand {
	switch kind {
	case timer.NotifyShortBreak, timer.NotifyLongBreak:
		return []soundCommand{{"afplay", []string{"/System/Library/Sounds/Glass.aiff"}}}
	default:
		return []soundCommand{{"afplay", []string{"/System/Library/Sounds/Hero.aiff"}}}
	}
}
