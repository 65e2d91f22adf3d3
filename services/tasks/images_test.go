package tasks

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type recordingEnqueuer struct {
	tasks []*asynq.Task
}

func (r *recordingEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	r.tasks = append(r.tasks, task)
	return &asynq.TaskInfo{ID: "t1", Type: task.Type()}, nil
}

func TestQueueJanitorEnqueuesImageDelete(t *testing.T) {
	q := &recordingEnqueuer{}
	j := &QueueJanitor{Client: q, Logger: zap.NewNop()}

	if err := j.ScheduleImageDelete(context.Background(), "https://img/x.png"); err != nil {
		t.Fatalf("ScheduleImageDelete: %v", err)
	}
	if len(q.tasks) != 1 || q.tasks[0].Type() != TypeImageDelete {
		t.Fatalf("tasks = %+v", q.tasks)
	}
	var p ImageDeletePayload
	if err := json.Unmarshal(q.tasks[0].Payload(), &p); err != nil || p.ImageURL != "https://img/x.png" {
		t.Fatalf("payload = %+v, %v", p, err)
	}
}

type fakeStorage struct {
	deleted []string
}

func (f *fakeStorage) Upload(context.Context, io.Reader, string) (string, error) { return "", nil }

func (f *fakeStorage) Delete(_ context.Context, u string) (bool, error) {
	f.deleted = append(f.deleted, u)
	return true, nil
}

func TestInlineJanitorDeletesImmediately(t *testing.T) {
	s := &fakeStorage{}
	j := &InlineJanitor{Storage: s, Logger: zap.NewNop()}
	if err := j.ScheduleImageDelete(context.Background(), "a/b"); err != nil {
		t.Fatalf("ScheduleImageDelete: %v", err)
	}
	if len(s.deleted) != 1 || s.deleted[0] != "a/b" {
		t.Fatalf("deleted = %v", s.deleted)
	}
}
