package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resourcebooking/services/storage"
	"resourcebooking/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Worker consumes background tasks from the Redis queue.
type Worker struct {
	srv    *asynq.Server
	mux    *asynq.ServeMux
	logger *zap.Logger
}

// NewWorker builds a worker bound to the given Redis queue database.
func NewWorker(redisOpts asynq.RedisClientOpt, store storage.StorageService, logger *zap.Logger) *Worker {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeImageDelete, HandleImageDelete(store, logger))

	return &Worker{srv: srv, mux: mux, logger: logger}
}

// Start runs the worker in the background, retrying start-up with a backoff.
func (w *Worker) Start() error {
	const maxAttempts = 5

	var err error
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err = w.srv.Start(w.mux); err == nil {
			w.logger.Info("Background worker started")
			return nil
		}
		w.logger.Warn("Failed to start background worker",
			zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
		time.Sleep(time.Duration(attempts*2) * time.Second)
	}
	return fmt.Errorf("background worker did not start: %w", err)
}

func (w *Worker) Shutdown() {
	w.srv.Shutdown()
	w.logger.Info("Background worker stopped")
}

// HandleImageDelete removes an image from the content host. Malformed payloads
// and deletes against an unconfigured host are dropped without retry.
func HandleImageDelete(store storage.StorageService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ImageDeletePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid image delete payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if p.ImageURL == "" {
			return nil
		}

		found, err := store.Delete(ctx, p.ImageURL)
		if errors.Is(err, storage.ErrNotConfigured) {
			logger.Warn("Image delete dropped: storage not configured", zap.String("imageURL", p.ImageURL))
			return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
		}
		if err != nil {
			logger.Warn("Image delete failed", zap.String("imageURL", p.ImageURL), zap.Error(err))
			return err
		}
		logger.Info("Image deleted", zap.String("imageURL", p.ImageURL), zap.Bool("found", found))
		return nil
	}
}
