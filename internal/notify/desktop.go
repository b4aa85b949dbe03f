package notify

import (
	"sync"
	"time"

	"pomodoro/internal/core/timer"
	"pomodoro/internal/logging"

	"fyne.io/fyne/v2"
	"github.com/charmbracelet/log"
)

// DefaultDismissAfter is how long a notification stays active before it is dismissed.
const DefaultDismissAfter = 3 * time.Second

// Sender delivers a desktop notification. fyne.App satisfies it.
type Sender interface {
	SendNotification(notification *fyne.Notification)
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(*fyne.Notification)

// SendNotification calls fn(notification).
func (fn SenderFunc) SendNotification(notification *fyne.Notification) {
	fn(notification)
}

// DesktopOptions configures a Desktop notifier.
type DesktopOptions struct {
	DismissAfter time.Duration
	Logger       *log.Logger
}

// Desktop sends phase notifications through the platform notification center.
// A notification of a given kind stays active for DismissAfter; repeats while active are dropped.
type Desktop struct {
	mu           sync.Mutex
	sender       Sender
	dismissAfter time.Duration
	logger       *log.Logger
	active       map[timer.NotificationKind]*time.Timer
}

// NewDesktop creates a Desktop notifier.
func NewDesktop(sender Sender, options DesktopOptions) *Desktop {
	if options.DismissAfter <= 0 {
		options.DismissAfter = DefaultDismissAfter
	}
	if options.Logger == nil {
		options.Logger = logging.Logger
	}
	return &Desktop{
		sender:       sender,
		dismissAfter: options.DismissAfter,
		logger:       options.Logger,
		active:       make(map[timer.NotificationKind]*time.Timer),
	}
}

// Notify sends the notification unless one of the same kind is still active.
func (desktop *Desktop) Notify(notification timer.Notification) {
	desktop.mu.Lock()
	if _, ok := desktop.active[notification.Kind]; ok {
		desktop.mu.Unlock()
		desktop.logger.Debug("notification suppressed", "kind", notification.Kind)
		return
	}
	desktop.active[notification.Kind] = time.AfterFunc(desktop.dismissAfter, func() {
		desktop.dismiss(notification.Kind)
	})
	desktop.mu.Unlock()

	if err := desktop.send(notification); err != nil {
		desktop.logger.Warn("desktop notification failed", "kind", notification.Kind, "err", err)
		return
	}
	desktop.logger.Debug("notification sent", "kind", notification.Kind, "body", notification.Body)
}

// Active reports whether a notification of kind has not been dismissed yet.
func (desktop *Desktop) Active(kind timer.NotificationKind) bool {
	desktop.mu.Lock()
	defer desktop.mu.Unlock()
	_, ok := desktop.active[kind]
	return ok
}

// Close dismisses every active notification.
func (desktop *Desktop) Close() {
	desktop.mu.Lock()
	defer desktop.mu.Unlock()
	for kind, pending := range desktop.active {
		pending.Stop()
		delete(desktop.active, kind)
	}
}

func (desktop *Desktop) send(notification timer.Notification) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = &DeliveryError{Kind: notification.Kind, Cause: recovered}
		}
	}()
	desktop.sender.SendNotification(fyne.NewNotification(notification.Title, notification.Body))
	return nil
}

// fyne cannot retract a delivered notification, so dismissal only ends the active window.
func (desktop *Desktop) dismiss(kind timer.NotificationKind) {
	desktop.mu.Lock()
	delete(desktop.active, kind)
	desktop.mu.Unlock()
	desktop.logger.Debug("notification dismissed", "kind", kind)
}
