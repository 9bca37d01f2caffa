package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	TimetablePath      string
	Port               string
	Environment        string

	// Location is the clock all evaluations run in. Explicit so a deployment
	// serving another timezone is a config change, not a host setting.
	Location *time.Location

	// ReminderLeadMin/Max bound the look-ahead band: a class is announced
	// when Min <= start-now <= Max.
	ReminderLeadMin time.Duration
	ReminderLeadMax time.Duration

	// TickInterval is the reminder evaluation cadence. It must not exceed
	// the width of the band plus one minute or classes can be missed.
	TickInterval time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./timetable-bot.db"),
		TimetablePath:      getEnv("TIMETABLE_PATH", "./timetable.json"),
		Port:               getEnv("PORT", "3000"),
		Environment:        getEnv("ENV", "development"),
	}

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Location = loc

	cfg.ReminderLeadMin, err = getDuration("REMINDER_LEAD_MIN", 9*time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.ReminderLeadMax, err = getDuration("REMINDER_LEAD_MAX", 10*time.Minute)
	if err != nil {
		return nil, err
	}
	if cfg.ReminderLeadMin > cfg.ReminderLeadMax {
		return nil, fmt.Errorf("REMINDER_LEAD_MIN (%s) must not exceed REMINDER_LEAD_MAX (%s)",
			cfg.ReminderLeadMin, cfg.ReminderLeadMax)
	}

	cfg.TickInterval, err = getDuration("TICK_INTERVAL", time.Minute)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
