package entity

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock start time with no date component, parsed once
// at document load instead of on every comparison.
type TimeOfDay struct {
	Hour   int // 0-23
	Minute int
}

// At anchors the time of day to the calendar date of the given instant,
// in that instant's location.
func (t TimeOfDay) At(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// String renders the time back in the document's "H:MM AM/PM" format.
func (t TimeOfDay) String() string {
	return time.Date(0, 1, 1, t.Hour, t.Minute, 0, 0, time.UTC).Format("3:04 PM")
}

// ClassEntry is one scheduled class occurrence on a weekday.
type ClassEntry struct {
	Time    string `json:"time"` // raw document value, e.g. "9:00 AM"
	Subject string `json:"subject"`
	Room    string `json:"room"`

	// Start is parsed from Time when the document is loaded.
	Start TimeOfDay `json:"-"`
}

// Timetable maps weekday names ("Monday".."Sunday") to the day's classes,
// ordered by start time.
type Timetable struct {
	Days map[string][]ClassEntry
}

// ClassesOn returns the classes for a weekday, nil if the day is absent.
func (t *Timetable) ClassesOn(weekday string) []ClassEntry {
	if t == nil || t.Days == nil {
		return nil
	}
	return t.Days[weekday]
}

// Subscriber is a Slack channel that receives class reminders.
type Subscriber struct {
	ID               int64     `json:"id" db:"id"`
	SlackChannelID   string    `json:"slack_channel_id" db:"slack_channel_id"`
	SlackChannelName string    `json:"slack_channel_name" db:"slack_channel_name"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// Obligation is a single (class, recipient) reminder delivery to attempt.
type Obligation struct {
	Class          ClassEntry
	SlackChannelID string
}

// ReminderKey identifies one class occurrence on one calendar date for a
// single recipient, used to suppress duplicate reminder sends.
type ReminderKey struct {
	ClassDate      string // YYYY-MM-DD
	ClassTime      string // raw document time, e.g. "9:00 AM"
	Subject        string
	SlackChannelID string
}

// KeyFor builds the duplicate-suppression key for an obligation evaluated
// on the given date.
func KeyFor(o Obligation, day time.Time) ReminderKey {
	return ReminderKey{
		ClassDate:      day.Format("2006-01-02"),
		ClassTime:      o.Class.Time,
		Subject:        o.Class.Subject,
		SlackChannelID: o.SlackChannelID,
	}
}

func (k ReminderKey) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", k.ClassDate, k.ClassTime, k.Subject, k.SlackChannelID)
}
