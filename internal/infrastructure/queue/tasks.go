package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type names shared between the API (producer) and the worker (consumer).
const (
	TypeWelcomeEmail = "email:welcome"
)

// WelcomeEmailPayload is the body of a TypeWelcomeEmail task.
type WelcomeEmailPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewWelcomeEmailTask builds the asynq task for a freshly registered user.
func NewWelcomeEmailTask(name, email string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{Name: name, Email: email})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeWelcomeEmail, payload, asynq.MaxRetry(3), asynq.Queue("default")), nil
}
