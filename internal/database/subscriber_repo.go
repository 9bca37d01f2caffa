package database

import (
	"database/sql"
	"fmt"

	"github.com/classdesk/slack-timetable-bot/internal/domain/contract"
	"github.com/classdesk/slack-timetable-bot/internal/domain/entity"
)

type subscriberRepository struct {
	db dbConn
}

func newSubscriberRepository(db dbConn) contract.SubscriberRepo {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) Create(subscriber *entity.Subscriber) error {
	query := `
		INSERT INTO subscribers (slack_channel_id, slack_channel_name)
		VALUES (?, ?)
	`

	result, err := r.db.Exec(query,
		subscriber.SlackChannelID,
		subscriber.SlackChannelName,
	)
	if err != nil {
		return fmt.Errorf("failed to create subscriber: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	subscriber.ID = id
	return nil
}

func (r *subscriberRepository) GetBySlackID(slackChannelID string) (*entity.Subscriber, error) {
	subscriber := &entity.Subscriber{}
	query := `
		SELECT id, slack_channel_id, slack_channel_name, created_at
		FROM subscribers
		WHERE slack_channel_id = ?
	`

	err := r.db.QueryRow(query, slackChannelID).Scan(
		&subscriber.ID,
		&subscriber.SlackChannelID,
		&subscriber.SlackChannelName,
		&subscriber.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscriber: %w", err)
	}

	return subscriber, nil
}

func (r *subscriberRepository) GetAll() ([]*entity.Subscriber, error) {
	query := `
		SELECT id, slack_channel_id, slack_channel_name, created_at
		FROM subscribers
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscribers: %w", err)
	}
	defer rows.Close()

	var subscribers []*entity.Subscriber
	for rows.Next() {
		subscriber := &entity.Subscriber{}
		err := rows.Scan(
			&subscriber.ID,
			&subscriber.SlackChannelID,
			&subscriber.SlackChannelName,
			&subscriber.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subscribers = append(subscribers, subscriber)
	}

	return subscribers, nil
}
