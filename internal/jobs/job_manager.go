package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lowStockMonitorJob *LowStockMonitorJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(inventoryLister inventoryLister, logger *slog.Logger) *JobManager {
	return &JobManager{
		lowStockMonitorJob: NewLowStockMonitorJob(inventoryLister, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockMonitorJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock monitor job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockMonitorJob.Stop()
}
