package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/pathwise-app/pathwise/internal/config"
	"github.com/pathwise-app/pathwise/internal/gemini"
	"github.com/pathwise-app/pathwise/internal/relay"
	"github.com/pathwise-app/pathwise/pkg/utils/logger"
)

func main() {
	logger.Init()
	log.Info().Msg("Starting AI relay...")

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}

	upstream, err := gemini.NewClient(&cfg.GeminiEnvConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing Gemini client")
	}

	server, err := relay.NewServer(&cfg.RelayEnvConfig, upstream)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing relay server")
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

	log.Info().Int("port", cfg.RelayEnvConfig.Port).Msg("AI relay is running")
	if err := server.Start(ctx); err != nil {
		log.Error().Err(err).Msg("relay server shutdown with error")
	}
	log.Info().Msg("AI relay shutdown complete")
}
