package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"drdhobi/config"
	tokenRepo "drdhobi/database/repository/admintoken"
	"drdhobi/models"
	"drdhobi/services/tasks"
	"drdhobi/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitPushWorker runs the booking push worker in the background. It consumes
// queued new-booking tasks and multicasts a push to every registered admin
// device.
func InitPushWorker(tokens tokenRepo.TokenRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPushQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingPush, handleBookingPush(tokens))

	go monitorRedisConnection()

	go func() {
		log.Println("[PushWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PushWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PushWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleBookingPush(tokens tokenRepo.TokenRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.BookingPushPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("booking push: invalid payload", zap.Error(err))
			return err
		}

		registered, err := tokens.GetAll()
		if err != nil {
			return fmt.Errorf("booking push: failed to load admin tokens: %w", err)
		}
		if len(registered) == 0 {
			logger.Info("booking push: no admin devices registered, skipping",
				zap.String("bookingID", p.BookingID))
			return nil
		}

		tokenStrings := make([]string, 0, len(registered))
		for _, t := range registered {
			tokenStrings = append(tokenStrings, t.Token)
		}

		msg := &messaging.MulticastMessage{
			Tokens: tokenStrings,
			Notification: &messaging.Notification{
				Title: "New Booking!",
				Body:  fmt.Sprintf("%s booked %s", p.Name, p.Service),
			},
			Data: map[string]string{
				"bookingId": p.BookingID,
				"phone":     p.Phone,
				"type":      "booking",
			},
			Android: &messaging.AndroidConfig{
				Priority: "high",
				Notification: &messaging.AndroidNotification{
					ChannelID: "high_priority",
					Sound:     "default",
				},
			},
			APNS: &messaging.APNSConfig{
				Headers: map[string]string{
					"apns-priority":  "10",
					"apns-push-type": "alert",
				},
				Payload: &messaging.APNSPayload{
					Aps: &messaging.Aps{
						Sound: "default",
					},
				},
			},
		}

		resp, err := utils.FCMClient.SendEachForMulticast(ctx, msg)
		if err != nil {
			return fmt.Errorf("booking push: failed to send multicast: %w", err)
		}

		// Prune tokens the push provider rejected so dead devices stop
		// accumulating.
		for i, r := range resp.Responses {
			if r.Success {
				continue
			}
			if messaging.IsUnregistered(r.Error) || messaging.IsInvalidArgument(r.Error) {
				if delErr := tokens.DeleteByToken(tokenStrings[i]); delErr != nil {
					logger.Warn("booking push: failed to prune invalid token", zap.Error(delErr))
				}
			} else {
				logger.Warn("booking push: send failed for token", zap.Error(r.Error))
			}
		}

		logger.Info("booking push: multicast complete",
			zap.String("bookingID", p.BookingID),
			zap.Int("success", resp.SuccessCount),
			zap.Int("failure", resp.FailureCount))
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPushQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[PushWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
