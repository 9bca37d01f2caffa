package contract

import (
	"context"
	"time"
)

// TimetableService answers the user-facing timetable queries. All methods
// evaluate against the current instant in the configured timezone and return
// ready-to-send message text.
type TimetableService interface {
	Today() (string, error)
	NextClass() (string, error)
	Week() (string, error)
}

// SubscriptionService registers reminder recipients.
type SubscriptionService interface {
	// Subscribe registers a channel for reminders. It is idempotent:
	// registering an already-subscribed channel is a no-op and reports
	// created=false.
	Subscribe(ctx context.Context, slackChannelID, slackChannelName string) (created bool, err error)
}

// ReminderService evaluates one reminder tick.
type ReminderService interface {
	// Tick scans today's classes and delivers a reminder for every class
	// whose start falls inside the look-ahead band, once per subscriber.
	Tick(ctx context.Context) error

	// PruneLog drops sent-reminder markers older than the cutoff.
	PruneLog(cutoff time.Time) error
}
