package notify

import (
	"fmt"

	"pomodoro/internal/core/timer"
)

// DeliveryError reports a notification that could not be delivered.
type DeliveryError struct {
	Kind  timer.NotificationKind
	Cause any
}

func (err *DeliveryError) Error() string {
	return fmt.Sprintf("deliver %s notification: %v", err.Kind, err.Cause)
}

// Unwrap exposes the cause when it is an error.
func (err *DeliveryError) Unwrap() error {
	if cause, ok := err.Cause.(error); ok {
		return cause
	}
	return nil
}
