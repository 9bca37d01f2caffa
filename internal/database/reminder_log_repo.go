package database

import (
	"fmt"
	"time"

	"github.com/classdesk/slack-timetable-bot/internal/domain/contract"
	"github.com/classdesk/slack-timetable-bot/internal/domain/entity"
)

type reminderLogRepository struct {
	db dbConn
}

func newReminderLogRepository(db dbConn) contract.ReminderLogRepo {
	return &reminderLogRepository{db: db}
}

func (r *reminderLogRepository) WasSent(key entity.ReminderKey) (bool, error) {
	query := `
		SELECT COUNT(1)
		FROM reminder_log
		WHERE class_date = ? AND class_time = ? AND subject = ? AND slack_channel_id = ?
	`

	var count int
	err := r.db.QueryRow(query,
		key.ClassDate,
		key.ClassTime,
		key.Subject,
		key.SlackChannelID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check reminder log: %w", err)
	}

	return count > 0, nil
}

func (r *reminderLogRepository) MarkSent(key entity.ReminderKey) error {
	// INSERT OR IGNORE: marking the same occurrence twice is harmless.
	query := `
		INSERT OR IGNORE INTO reminder_log (class_date, class_time, subject, slack_channel_id)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		key.ClassDate,
		key.ClassTime,
		key.Subject,
		key.SlackChannelID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}

	return nil
}

func (r *reminderLogRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	query := `DELETE FROM reminder_log WHERE class_date < ?`

	result, err := r.db.Exec(query, cutoff.Format("2006-01-02"))
	if err != nil {
		return 0, fmt.Errorf("failed to delete old reminder log entries: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return deleted, nil
}
