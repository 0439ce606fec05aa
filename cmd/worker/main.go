package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/config"
	"library-catalog/internal/infrastructure/email"
	"library-catalog/pkg/logger"
)

// The worker consumes background tasks produced by the API (currently just
// welcome emails). It shares the API's configuration and Redis instance.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(cfg.App.Environment)

	emailSvc := email.NewSMTPEmailService(cfg.SMTP)

	srv := startWorker(cfg, emailSvc)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down worker")
	srv.Shutdown()
	log.Info().Msg("worker exited")
}
