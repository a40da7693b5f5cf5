package cron

import (
	"context"
	"encoding/json"
	"time"

	"devseva/config"
	"devseva/models"
	"devseva/services/booking"
	"devseva/services/notification"
	"devseva/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
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
	mux.HandleFunc(booking.TypeReminderSend, handleReminderTask(notifSvc))

	go func() {
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("reminder worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("reminder task has invalid payload", zap.Error(err))
			return err
		}

		logger.Info("dispatching reservation reminder",
			zap.String("target", p.Target),
			zap.String("id", p.ID),
			zap.String("reservationID", p.ReservationID))

		data := map[string]string{
			"reservationId": p.ReservationID,
			"fireDate":      p.FireDate,
		}

		var err error
		switch p.Target {
		case "user":
			err = notifSvc.SendUserNotification(ctx, p.ID, p.Title, p.Body, data)
		case "provider":
			err = notifSvc.SendProviderNotification(ctx, p.ID, p.Title, p.Body, data)
		default:
			logger.Warn("unknown reminder target", zap.String("target", p.Target))
			return nil
		}

		if err != nil {
			logger.Error("failed to send reminder notification", zap.Error(err))
		}
		return err
	}
}
