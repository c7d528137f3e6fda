package tasks

import (
	"encoding/json"
	"fmt"

	"drdhobi/config"
	"drdhobi/models"

	"github.com/hibiken/asynq"
)

const TypeBookingPush = "push:booking"

// NewBookingPushTask builds the queue task for a new-booking push.
func NewBookingPushTask(payload models.BookingPushPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingPush, b), nil
}

// Enqueuer is the minimal enqueue surface the booking service depends on.
type Enqueuer interface {
	EnqueueBookingPush(payload models.BookingPushPayload) error
}

// AsynqEnqueuer enqueues tasks onto the Redis-backed asynq queue.
type AsynqEnqueuer struct {
	client *asynq.Client
}

// NewAsynqEnqueuer creates an enqueuer connected to the push queue Redis DB.
func NewAsynqEnqueuer() *AsynqEnqueuer {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPushQueueDB,
	})
	return &AsynqEnqueuer{client: client}
}

// EnqueueBookingPush places a new-booking push task on the queue.
func (e *AsynqEnqueuer) EnqueueBookingPush(payload models.BookingPushPayload) error {
	task, err := NewBookingPushTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build booking push task: %w", err)
	}
	if _, err := e.client.Enqueue(task); err != nil {
		return fmt.Errorf("failed to enqueue booking push task: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (e *AsynqEnqueuer) Close() error {
	return e.client.Close()
}
