package cron

import (
	"context"
	"time"

	"mehfil/config"
	"mehfil/services/notification"
	"mehfil/services/tasks"
	"mehfil/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// MailQueueOpt is the Redis connection used by the mail queue.
func MailQueueOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	}
}

// InitMailWorker runs the mail worker in the background until ctx is done.
func InitMailWorker(ctx context.Context, deliverer notification.Deliverer) *asynq.Server {
	logger := utils.GetLogger().With(zap.String("component", "mail-worker"))

	srv := asynq.NewServer(
		MailQueueOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(_ context.Context, task *asynq.Task, err error) {
				logger.Warn("Mail task failed", zap.String("type", task.Type()), zap.Error(err))
			}),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeMailSend, tasks.HandleMailTask(deliverer))

	go func() {
		logger.Info("Starting mail worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				break
			}
			logger.Error("Failed to start mail worker", zap.Int("attempt", attempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Max retry attempts reached, mail will not be delivered")
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Duration(attempts*2) * time.Second):
			}
		}

		<-ctx.Done()
		srv.Shutdown()
	}()

	return srv
}
