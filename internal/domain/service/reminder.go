package service

import (
	"context"
	"fmt"
	"time"

	"github.com/classdesk/slack-timetable-bot/internal/domain/contract"
	"github.com/classdesk/slack-timetable-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// Band is the look-ahead window that flags a class for reminder delivery.
// A class is due when band.Min <= start - now <= band.Max, inclusive on both
// ends. With a one-minute band and ticks at most 60 s apart, every class is
// flagged on exactly one tick.
type Band struct {
	Min time.Duration
	Max time.Duration
}

// DefaultBand mirrors the 9–10 minute look-ahead of the original bot.
var DefaultBand = Band{Min: 9 * time.Minute, Max: 10 * time.Minute}

// ComputeDueReminders returns one delivery obligation per recipient for every
// class on now's weekday whose start time falls inside the band. It is a pure
// function: the same timetable, recipients, and instant always produce the
// same obligations, in class order then recipient order.
func ComputeDueReminders(tt *entity.Timetable, recipients []string, now time.Time, band Band) []entity.Obligation {
	var obligations []entity.Obligation
	for _, c := range tt.ClassesOn(now.Weekday().String()) {
		delta := c.Start.At(now).Sub(now)
		if delta < band.Min || delta > band.Max {
			continue
		}
		for _, r := range recipients {
			obligations = append(obligations, entity.Obligation{Class: c, SlackChannelID: r})
		}
	}
	return obligations
}

// FormatReminder renders the push message for one due class.
func FormatReminder(c entity.ClassEntry) string {
	return fmt.Sprintf("⏰ Class Reminder\n\n%s\n🕒 %s\n🏫 %s", c.Subject, c.Time, c.Room)
}

type reminderService struct {
	source      contract.TimetableSource
	dm          contract.DataManager
	slackClient contract.SlackClient
	logger      *zap.Logger
	band        Band
	now         func() time.Time
}

func newReminder(source contract.TimetableSource, dm contract.DataManager, slackClient contract.SlackClient, logger *zap.Logger, band Band, now func() time.Time) *reminderService {
	return &reminderService{
		source:      source,
		dm:          dm,
		slackClient: slackClient,
		logger:      logger,
		band:        band,
		now:         now,
	}
}

// Tick evaluates one reminder cycle. The sent-reminder log suppresses
// duplicate deliveries across ticks, so correctness does not depend on tick
// cadence. A delivery failure for one channel never blocks the others, and
// the log entry is only written after a successful send so the next in-band
// tick retries the failed one.
func (s *reminderService) Tick(ctx context.Context) error {
	now := s.now()

	tt, err := s.source.Load()
	if err != nil {
		return fmt.Errorf("failed to load timetable: %w", err)
	}

	subscribers, err := s.dm.Subscriber().GetAll()
	if err != nil {
		return fmt.Errorf("failed to load subscribers: %w", err)
	}
	if len(subscribers) == 0 {
		return nil
	}

	recipients := make([]string, 0, len(subscribers))
	for _, sub := range subscribers {
		recipients = append(recipients, sub.SlackChannelID)
	}

	for _, o := range ComputeDueReminders(tt, recipients, now, s.band) {
		s.deliver(o, now)
	}
	return nil
}

func (s *reminderService) deliver(o entity.Obligation, now time.Time) {
	key := entity.KeyFor(o, now)

	sent, err := s.dm.ReminderLog().WasSent(key)
	if err != nil {
		s.logger.Error("failed to check reminder log",
			zap.String("key", key.String()), zap.Error(err))
		return
	}
	if sent {
		return
	}

	_, _, err = s.slackClient.PostMessage(o.SlackChannelID,
		slack.MsgOptionText(FormatReminder(o.Class), false))
	if err != nil {
		s.logger.Error("failed to deliver reminder",
			zap.String("channel", o.SlackChannelID),
			zap.String("subject", o.Class.Subject),
			zap.Error(err))
		return
	}

	s.logger.Info("reminder sent",
		zap.String("channel", o.SlackChannelID),
		zap.String("subject", o.Class.Subject),
		zap.String("time", o.Class.Time))

	if err := s.dm.ReminderLog().MarkSent(key); err != nil {
		s.logger.Error("failed to record sent reminder",
			zap.String("key", key.String()), zap.Error(err))
	}
}

// PruneLog drops reminder-log rows older than the cutoff. Entries are only
// needed while their class date can still fall inside the band.
func (s *reminderService) PruneLog(cutoff time.Time) error {
	deleted, err := s.dm.ReminderLog().DeleteOlderThan(cutoff)
	if err != nil {
		return fmt.Errorf("failed to prune reminder log: %w", err)
	}
	if deleted > 0 {
		s.logger.Info("pruned reminder log", zap.Int64("deleted", deleted))
	}
	return nil
}
