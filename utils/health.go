package utils

import (
	"context"
	"sync"
	"time"
)

// CheckFunc probes one external dependency.
type CheckFunc func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Healthy   bool            `json:"healthy"`
	Services  map[string]bool `json:"services"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// HealthMonitor keeps the latest snapshot of its checks.
type HealthMonitor struct {
	checks map[string]CheckFunc

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(checks map[string]CheckFunc) *HealthMonitor {
	return &HealthMonitor{
		checks:  checks,
		current: HealthStatus{Healthy: true, Services: map[string]bool{}},
	}
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check runs every probe once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{Healthy: true, Services: make(map[string]bool, len(m.checks)), CheckedAt: time.Now()}
	for name, check := range m.checks {
		checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		ok := check(checkCtx) == nil
		cancel()
		status.Services[name] = ok
		status.Healthy = status.Healthy && ok
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start performs periodic health checks until ctx is cancelled.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	m.Check(ctx)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
