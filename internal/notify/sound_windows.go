//go:build windows

package notify

import "pomodoro/internal/core/timer"

func soundsFor(kind timer.NotificationKind) []soundCommand {
	switch kind {
	case timer.NotifyShortBreak, timer.NotifyLongBreak:
		return []soundCommand{
			{"powershell", []string{"-c", "[System.Media.SystemSounds]::Asterisk.Play()"}},
			{"powershell", []string{"-c", "[System.Media.SystemSounds]::Beep.Play()"}},
		}
	default:
		return []soundCommand{
			{"powershell", []string{"-c", "[System.Media.SystemSounds]::Exclamation.Play()"}},
			{"powershell", []string{"-c", "[System.Media.SystemSounds]::Beep.Play()"}},
		}
	}
}
