// Package jobs provides scheduled background tasks for the warehouse system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. LowStockMonitorJob - Runs every minute to flag inventory items at or below their reorder threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getAllInventoryHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Scan failures are logged and retried on the next tick
// - A flagged item is reported on every tick until it is restocked; the
//   monitor never mutates inventory
package jobs
