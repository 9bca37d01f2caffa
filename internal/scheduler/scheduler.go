package scheduler

import (
	"context"
	"time"

	"github.com/classdesk/slack-timetable-bot/internal/domain/contract"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler drives the reminder service on a fixed wall-clock cadence. Each
// tick is an independent evaluation; the service re-reads the timetable and
// subscriber list every time, so there is no state to invalidate here.
type Scheduler struct {
	reminderService contract.ReminderService
	logger          *zap.Logger
	cron            *cron.Cron
	tickInterval    time.Duration
}

func New(reminderService contract.ReminderService, loc *time.Location, tickInterval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		reminderService: reminderService,
		logger:          logger,
		cron:            cron.New(cron.WithLocation(loc)),
		tickInterval:    tickInterval,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("@every "+s.tickInterval.String(), s.tick)
	if err != nil {
		return err
	}

	// Prune yesterday-and-older reminder log entries once a day.
	_, err = s.cron.AddFunc("@daily", s.prune)
	if err != nil {
		return err
	}

	s.logger.Info("scheduler started", zap.Duration("tick_interval", s.tickInterval))
	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.reminderService.Tick(ctx); err != nil {
		// A bad tick (usually a malformed timetable) must not kill the
		// loop; the next tick re-reads the document.
		s.logger.Error("reminder tick failed", zap.Error(err))
	}
}

func (s *Scheduler) prune() {
	cutoff := time.Now().AddDate(0, 0, -1)
	if err := s.reminderService.PruneLog(cutoff); err != nil {
		s.logger.Error("reminder log prune failed", zap.Error(err))
	}
}
