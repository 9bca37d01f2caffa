package service

import (
	"context"
	"fmt"

	"github.com/classdesk/slack-timetable-bot/internal/domain/contract"
	"github.com/classdesk/slack-timetable-bot/internal/domain/entity"
	"go.uber.org/zap"
)

type subscriptionService struct {
	dm     contract.DataManager
	logger *zap.Logger
}

func newSubscription(dm contract.DataManager, logger *zap.Logger) *subscriptionService {
	return &subscriptionService{
		dm:     dm,
		logger: logger,
	}
}

// Subscribe registers a channel for class reminders. The read-check-append
// sequence runs inside a single transaction so concurrent registrations
// cannot lose an id. Registering an existing channel is a no-op.
func (s *subscriptionService) Subscribe(ctx context.Context, slackChannelID, slackChannelName string) (bool, error) {
	created := false

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		existing, err := tx.Subscriber().GetBySlackID(slackChannelID)
		if err != nil {
			return fmt.Errorf("failed to check subscriber: %w", err)
		}
		if existing != nil {
			return nil
		}

		subscriber := &entity.Subscriber{
			SlackChannelID:   slackChannelID,
			SlackChannelName: slackChannelName,
		}
		if err := tx.Subscriber().Create(subscriber); err != nil {
			return fmt.Errorf("failed to create subscriber: %w", err)
		}

		created = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if created {
		s.logger.Info("channel subscribed",
			zap.String("channel", slackChannelID),
			zap.String("name", slackChannelName))
	}
	return created, nil
}
