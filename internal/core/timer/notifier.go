package timer

// NotificationKind identifies which phase transition raised a notification.
type NotificationKind string

const (
	NotifyShortBreak  NotificationKind = "short_break"
	NotifyLongBreak   NotificationKind = "long_break"
	NotifyWorkResumed NotificationKind = "work_resumed"
)

const notificationTitle = "Pomodoro"

// Notification is a transient user-facing alert.
type Notification struct {
	Kind  NotificationKind
	Title string
	Body  string
}

// Notifier delivers notifications. Implementations must not block and must not panic;
// delivery failures are theirs to log.
type Notifier interface {
	Notify(notification Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

// Notify calls fn(notification).
func (fn NotifierFunc) Notify(notification Notification) {
	fn(notification)
}

func notificationFor(phase Phase) Notification {
	switch phase {
	case PhaseShortBreak:
		return Notification{Kind: NotifyShortBreak, Title: notificationTitle, Body: "Short break started"}
	case PhaseLongBreak:
		return Notification{Kind: NotifyLongBreak, Title: notificationTitle, Body: "Long break started"}
	default:
		return Notification{Kind: NotifyWorkResumed, Title: notificationTitle, Body: "Get back to work"}
	}
}
