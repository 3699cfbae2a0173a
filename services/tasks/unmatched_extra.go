package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sparkle/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeUnmatchedExtra = "pricing:unmatched-extra"

// NewUnmatchedExtraTask builds the task recording extras a quote could not price.
func NewUnmatchedExtraTask(payload models.UnmatchedExtraPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeUnmatchedExtra, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.Timeout(30 * time.Second)}

	return task, opts, nil
}

// ParseUnmatchedExtraTask decodes a task built by NewUnmatchedExtraTask.
func ParseUnmatchedExtraTask(task *asynq.Task) (models.UnmatchedExtraPayload, error) {
	var p models.UnmatchedExtraPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid %s payload: %w", TypeUnmatchedExtra, err)
	}
	return p, nil
}

// Enqueuer is the part of *asynq.Client used to publish tasks.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqWarningReporter publishes unmatched extras to the warning worker.
type AsynqWarningReporter struct {
	Client Enqueuer
	Logger *zap.Logger
}

func (r *AsynqWarningReporter) ReportUnmatchedExtras(ctx context.Context, payload models.UnmatchedExtraPayload) error {
	if len(payload.Extras) == 0 {
		return nil
	}
	task, opts, err := NewUnmatchedExtraTask(payload)
	if err != nil {
		return err
	}
	info, err := r.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", TypeUnmatchedExtra, err)
	}
	if r.Logger != nil {
		r.Logger.Debug("Unmatched extras reported",
			zap.String("taskID", info.ID),
			zap.String("serviceType", payload.ServiceType),
			zap.Strings("extras", payload.Extras))
	}
	return nil
}
