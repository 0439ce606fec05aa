package queue

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"library-catalog/internal/config"
)

// Enqueuer abstracts task submission so services can be tested without Redis.
type Enqueuer interface {
	EnqueueWelcomeEmail(ctx context.Context, name, email string) error
}

// Client is the asynq-backed Enqueuer used in production.
type Client struct {
	client *asynq.Client
}

// NewClient connects the task producer to Redis.
func NewClient(cfg config.RedisConfig) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (c *Client) EnqueueWelcomeEmail(ctx context.Context, name, email string) error {
	task, err := NewWelcomeEmailTask(name, email)
	if err != nil {
		return fmt.Errorf("build welcome email task: %w", err)
	}
	if _, err := c.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("enqueue welcome email: %w", err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (c *Client) Close() error {
	return c.client.Close()
}
