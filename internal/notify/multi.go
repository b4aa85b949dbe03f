package notify

import "pomodoro/internal/core/timer"

// Multi fans a notification out to several notifiers in order.
type Multi []timer.Notifier

// Notify forwards the notification to every non-nil notifier.
func (multi Multi) Notify(notification timer.Notification) {
	for _, notifier := range multi {
		if notifier != nil {
			notifier.Notify(notification)
		}
	}
}
