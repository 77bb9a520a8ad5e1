package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/pathwise-app/pathwise/internal/config"
	"github.com/pathwise-app/pathwise/internal/mailer"
	"github.com/pathwise-app/pathwise/internal/reminder"
	"github.com/pathwise-app/pathwise/pkg/utils/logger"
)

func main() {
	logger.Init()
	log.Info().Msg("Starting reminder relay...")

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}

	mail, err := mailer.NewClient(&cfg.MailerEnvConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing mail client")
	}

	server, err := reminder.NewServer(&cfg.ReminderEnvConfig, mail)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing reminder server")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Info().Msg("Shutdown signal received, gracefully shutting down...")
		cancel()
	}()

	log.Info().Int("port", cfg.ReminderEnvConfig.Port).Msg("Reminder relay is running")
	if err := server.Start(ctx); err != nil {
		log.Error().Err(err).Msg("reminder server shutdown with error")
	}
	log.Info().Msg("Reminder relay shutdown complete")
}
