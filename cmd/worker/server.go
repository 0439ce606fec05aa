package main

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/config"
	"library-catalog/internal/infrastructure/email"
	"library-catalog/internal/infrastructure/queue"
	"library-catalog/internal/infrastructure/queue/handlers"
)

func startWorker(cfg *config.Config, emailSvc email.EmailService) *asynq.Server {
	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TypeWelcomeEmail, handlers.WelcomeEmailHandler(emailSvc))

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 10,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).Msg("task failed")
			}),
		},
	)

	go func() {
		log.Info().Msg("worker starting")
		if err := srv.Run(mux); err != nil {
			log.Fatal().Err(err).Msg("worker failed")
		}
	}()

	return srv
}
