package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"resourcebooking/services/storage"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeImageDelete = "image:delete"

type ImageDeletePayload struct {
	ImageURL string `json:"imageUrl"`
}

func NewImageDeleteTask(imageURL string) (*asynq.Task, error) {
	b, err := json.Marshal(ImageDeletePayload{ImageURL: imageURL})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeImageDelete, b, asynq.MaxRetry(5)), nil
}

// ImageJanitor removes images that no entity refers to any more.
type ImageJanitor interface {
	ScheduleImageDelete(ctx context.Context, imageURL string) error
}

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueJanitor hands image deletions to the background worker.
type QueueJanitor struct {
	Client Enqueuer
	Logger *zap.Logger
}

func (j *QueueJanitor) ScheduleImageDelete(ctx context.Context, imageURL string) error {
	task, err := NewImageDeleteTask(imageURL)
	if err != nil {
		return err
	}
	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue image delete: %w", err)
	}
	j.Logger.Debug("Image delete enqueued", zap.String("taskID", info.ID), zap.String("imageURL", imageURL))
	return nil
}

// InlineJanitor deletes images straight away. It is used when no Redis
// queue is configured.
type InlineJanitor struct {
	Storage storage.StorageService
	Logger  *zap.Logger
}

func (j *InlineJanitor) ScheduleImageDelete(ctx context.Context, imageURL string) error {
	found, err := j.Storage.Delete(ctx, imageURL)
	if err != nil {
		return err
	}
	if !found {
		j.Logger.Info("Image already gone", zap.String("imageURL", imageURL))
	}
	return nil
}
