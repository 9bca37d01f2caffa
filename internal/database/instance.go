package database

import (
	"context"
	"fmt"

	"github.com/classdesk/slack-timetable-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db              *DB
	subscriberRepo  contract.SubscriberRepo
	reminderLogRepo contract.ReminderLogRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.subscriberRepo = newSubscriberRepository(i.db.conn)
	i.reminderLogRepo = newReminderLogRepository(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		subscriberRepo:  newSubscriberRepository(db),
		reminderLogRepo: newReminderLogRepository(db),
	}
}

// Subscriber returns the subscriber repository
func (i *instance) Subscriber() contract.SubscriberRepo {
	return i.subscriberRepo
}

// ReminderLog returns the sent-reminder log repository
func (i *instance) ReminderLog() contract.ReminderLogRepo {
	return i.reminderLogRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
