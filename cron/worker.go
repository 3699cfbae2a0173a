package cron

import (
	"context"
	"fmt"
	"time"

	"sparkle/config"
	warningRepo "sparkle/database/repository/warning"
	"sparkle/models"
	"sparkle/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt points asynq at the queue database.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewMux routes every task type the worker handles.
func NewMux(repo warningRepo.WarningRepository, logger *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeUnmatchedExtra, HandleUnmatchedExtraTask(repo, logger))
	return mux
}

// InitWarningWorker starts the pricing-warning worker in the background and
// returns the server so the caller can shut it down.
func InitWarningWorker(repo warningRepo.WarningRepository, logger *zap.Logger) *asynq.Server {
	concurrency := config.AppConfig.WorkerConcurrency
	if concurrency <= 0 {
		concurrency = 5
	}
	srv := asynq.NewServer(
		RedisOpt(),
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)
	mux := NewMux(repo, logger)

	go func() {
		logger.Info("Starting pricing warning worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Error("Failed to start warning worker",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Warning worker not started; unmatched extras will stay queued")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

// HandleUnmatchedExtraTask records every reported extra in one write. A
// retried delivery keeps its task id, so extras it already counted are not
// counted again.
func HandleUnmatchedExtraTask(repo warningRepo.WarningRepository, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseUnmatchedExtraTask(task)
		if err != nil {
			logger.Error("Dropping malformed task", zap.String("type", task.Type()), zap.Error(err))
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}

		seenAt := p.ObservedAt
		if seenAt.IsZero() {
			seenAt = time.Now().UTC()
		}
		taskID, _ := asynq.GetTaskID(ctx)
		err = repo.Record(ctx, warningRepo.Occurrence{
			Kind:        models.WarningUnmatchedExtra,
			ServiceType: p.ServiceType,
			Subjects:    p.Extras,
			SeenAt:      seenAt,
			TaskID:      taskID,
		})
		if err != nil {
			logger.Error("Failed to record pricing warnings",
				zap.String("serviceType", p.ServiceType),
				zap.Strings("extras", p.Extras),
				zap.Error(err))
			return err
		}
		logger.Info("Pricing warnings recorded",
			zap.String("serviceType", p.ServiceType),
			zap.Strings("extras", p.Extras))
		return nil
	}
}
