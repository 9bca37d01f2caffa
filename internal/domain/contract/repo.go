package contract

import (
	"context"
	"time"

	"github.com/classdesk/slack-timetable-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Subscriber() SubscriberRepo
	ReminderLog() ReminderLogRepo
}

// SubscriberRepo defines the contract for the subscriber repository
type SubscriberRepo interface {
	Create(subscriber *entity.Subscriber) error
	GetBySlackID(slackChannelID string) (*entity.Subscriber, error)
	GetAll() ([]*entity.Subscriber, error)
}

// ReminderLogRepo defines the contract for the sent-reminder log
type ReminderLogRepo interface {
	WasSent(key entity.ReminderKey) (bool, error)
	MarkSent(key entity.ReminderKey) error
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

// TimetableSource reads the timetable document. Every call re-reads the
// durable copy; the core keeps no cached view between evaluations.
type TimetableSource interface {
	Load() (*entity.Timetable, error)
}
