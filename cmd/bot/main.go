package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/classdesk/slack-timetable-bot/internal/app"
	"github.com/classdesk/slack-timetable-bot/internal/config"
	"github.com/classdesk/slack-timetable-bot/internal/database"
	"github.com/classdesk/slack-timetable-bot/internal/domain/service"
	"github.com/classdesk/slack-timetable-bot/internal/handlers"
	"github.com/classdesk/slack-timetable-bot/internal/scheduler"
	"github.com/classdesk/slack-timetable-bot/internal/timetable"
	"github.com/classdesk/slack-timetable-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source := timetable.NewFileSource(cfg.TimetablePath)
	if _, err := source.Load(); err != nil {
		// A broken document should be visible at startup, but the bot can
		// still run: queries report the problem and ticks retry the file.
		logger.Warn("Timetable document failed to load", zap.Error(err))
	}

	watcher, err := timetable.NewWatcher(source, logger)
	if err != nil {
		logger.Warn("Timetable watcher unavailable", zap.Error(err))
	} else {
		watcher.Start(ctx)
		defer watcher.Close()
	}

	slackClient := slack.New(cfg.SlackBotToken)

	dm := database.NewInstance(db)
	services := service.NewInstance(dm, source, slackClient, logger, cfg.Location,
		service.Band{Min: cfg.ReminderLeadMin, Max: cfg.ReminderLeadMax})

	sched := scheduler.New(services.Reminder, cfg.Location, cfg.TickInterval, logger)
	if err := sched.Start(); err != nil {
		logger.Fatal("Failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	handler := handlers.New(services.Timetable, services.Subscription, cfg.SlackSigningSecret, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	server := &http.Server{Addr: ":" + cfg.Port, Handler: mux}

	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
