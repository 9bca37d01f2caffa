package service

import (
	"time"

	"github.com/classdesk/slack-timetable-bot/internal/domain/contract"
	"go.uber.org/zap"
)

type Instance struct {
	Timetable    *timetableService
	Subscription *subscriptionService
	Reminder     *reminderService
}

func NewInstance(dm contract.DataManager, source contract.TimetableSource, slackClient contract.SlackClient, logger *zap.Logger, loc *time.Location, band Band) *Instance {
	now := func() time.Time { return time.Now().In(loc) }

	return &Instance{
		Timetable:    newTimetable(source, logger, now),
		Subscription: newSubscription(dm, logger),
		Reminder:     newReminder(source, dm, slackClient, logger, band, now),
	}
}
