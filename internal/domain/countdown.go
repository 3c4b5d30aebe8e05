package domain

import (
	"fmt"
	"time"
)

// Countdown describes how much of a batch's planned duration remains at a
// given instant. It is a value computed on demand and never stored.
type Countdown struct {
	target *time.Time
	status BatchStatus
	now    time.Time
}

// NewCountdown evaluates the countdown for target/status at now.
func NewCountdown(target *time.Time, status BatchStatus, now time.Time) Countdown {
	return Countdown{target: target, status: status, now: now}
}

// ShouldShow reports whether a running batch still has time left.
func (c Countdown) ShouldShow() bool {
	return c.target != nil && c.status.IsRunning() && c.target.After(c.now)
}

// IsScheduleFinished reports whether the planned duration of a running batch
// has elapsed without the batch being finished.
func (c Countdown) IsScheduleFinished() bool {
	return c.target != nil && c.status.IsRunning() && !c.target.After(c.now)
}

// Remaining returns the time left until the target date, or zero when there
// is no target or it has been reached.
func (c Countdown) Remaining() time.Duration {
	if c.target == nil || !c.target.After(c.now) {
		return 0
	}
	return c.target.Sub(c.now)
}

// Display renders the remaining time: "N days" while at least one whole day
// is left, "{H}h {M}m" below that. ok is false when nothing is left.
func (c Countdown) Display() (text string, ok bool) {
	remaining := c.Remaining()
	if remaining <= 0 {
		return "", false
	}

	days := int(remaining / (24 * time.Hour))
	switch {
	case days == 1:
		return "1 day", true
	case days > 1:
		return fmt.Sprintf("%d days", days), true
	}

	hours := int(remaining / time.Hour)
	minutes := int((remaining % time.Hour) / time.Minute)
	return fmt.Sprintf("%dh %dm", hours, minutes), true
}
