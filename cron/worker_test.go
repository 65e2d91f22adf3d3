package cron

import (
	"context"
	"errors"
	"io"
	"testing"

	"resourcebooking/services/storage"
	"resourcebooking/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type fakeStorage struct {
	deleted []string
	err     error
}

func (f *fakeStorage) Upload(context.Context, io.Reader, string) (string, error) { return "", nil }

func (f *fakeStorage) Delete(_ context.Context, u string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.deleted = append(f.deleted, u)
	return true, nil
}

func TestHandleImageDelete(t *testing.T) {
	store := &fakeStorage{}
	handler := HandleImageDelete(store, zap.NewNop())

	task, err := tasks.NewImageDeleteTask("https://img/a.png")
	if err != nil {
		t.Fatalf("NewImageDeleteTask: %v", err)
	}
	if err := handler.ProcessTask(context.Background(), task); err != nil {
		t.Fatalf("ProcessTask: %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "https://img/a.png" {
		t.Fatalf("deleted = %v", store.deleted)
	}
}

func TestHandleImageDeleteSkipsRetryOnBadPayload(t *testing.T) {
	handler := HandleImageDelete(&fakeStorage{}, zap.NewNop())
	err := handler.ProcessTask(context.Background(), asynq.NewTask(tasks.TypeImageDelete, []byte("{")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("err = %v, want SkipRetry", err)
	}
}

func TestHandleImageDeletePropagatesStorageErrors(t *testing.T) {
	handler := HandleImageDelete(&fakeStorage{err: errors.New("host down")}, zap.NewNop())
	task, _ := tasks.NewImageDeleteTask("x/y")
	if err := handler.ProcessTask(context.Background(), task); err == nil {
		t.Fatalf("expected the storage error to be returned for retry")
	}
}

func TestHandleImageDeleteSkipsRetryWithoutStorage(t *testing.T) {
	handler := HandleImageDelete(storage.Disabled{}, zap.NewNop())
	task, _ := tasks.NewImageDeleteTask("https://img/a.png")
	err := handler.ProcessTask(context.Background(), task)
	if !errors.Is(err, asynq.SkipRetry) || !errors.Is(err, storage.ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured wrapped with SkipRetry", err)
	}
}
