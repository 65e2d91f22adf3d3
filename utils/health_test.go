package utils

import (
	"context"
	"errors"
	"testing"
)

func TestHealthMonitorCheck(t *testing.T) {
	m := NewHealthMonitor(map[string]CheckFunc{
		"mongo": func(context.Context) error { return nil },
		"redis": func(context.Context) error { return errors.New("connection refused") },
	})

	if !m.Status().Healthy {
		t.Fatal("monitor should report healthy before the first check")
	}

	got := m.Check(context.Background())
	if got.Healthy {
		t.Error("Healthy = true with a failing check")
	}
	if !got.Services["mongo"] || got.Services["redis"] {
		t.Errorf("Services = %v", got.Services)
	}
	if m.Status().CheckedAt != got.CheckedAt {
		t.Error("Status does not return the stored snapshot")
	}
}
