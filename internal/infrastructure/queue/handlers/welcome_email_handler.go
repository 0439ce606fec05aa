package handlers

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"

	"library-catalog/internal/infrastructure/email"
	"library-catalog/internal/infrastructure/queue"
)

// WelcomeEmailHandler processes queue.TypeWelcomeEmail tasks.
// Malformed payloads are skipped; transport errors are retried by asynq.
func WelcomeEmailHandler(emailSvc email.EmailService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p queue.WelcomeEmailPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return asynq.SkipRetry
		}
		return emailSvc.SendWelcomeEmail(ctx, email.WelcomeEmailData{
			Name:  p.Name,
			Email: p.Email,
		})
	}
}
