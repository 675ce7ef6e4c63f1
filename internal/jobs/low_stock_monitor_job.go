package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// inventoryLister is the read-side dependency of the monitor. The concrete
// queries.GetAllInventoryQueryHandler satisfies it.
type inventoryLister interface {
	Handle(ctx context.Context, query queries.GetAllInventoryQuery) ([]queries.GetAllInventoryQueryResponse, error)
}

// LowStockMonitorJob periodically scans the inventory and logs every item
// whose stock has fallen to or below its reorder threshold. The threshold is
// advisory: the monitor reports, it never blocks admissions.
type LowStockMonitorJob struct {
	lister inventoryLister
	cron   *cron.Cron
	logger *slog.Logger
}

// NewLowStockMonitorJob creates a new job for monitoring inventory levels.
// Uses GetAllInventoryQueryHandler to scan stock once a minute.
func NewLowStockMonitorJob(lister inventoryLister, logger *slog.Logger) *LowStockMonitorJob {
	return &LowStockMonitorJob{
		lister: lister,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "low_stock_monitor_job"),
	}
}

// Start begins the low stock monitor job to run every minute.
func (j *LowStockMonitorJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		flagged, err := j.lowStockItems(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock scan failed", "error", err)
			return
		}

		for _, item := range flagged {
			j.logger.WarnContext(ctx, "Inventory item needs reorder",
				"itemId", item.ID.String(),
				"name", item.Name,
				"stock", item.Stock,
				"reorderThreshold", item.ReorderThreshold)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock monitor job started (running every minute)")
	return nil
}

// Stop stops the low stock monitor job.
func (j *LowStockMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock monitor job stopped")
}

// lowStockItems returns the items at or below their reorder threshold.
func (j *LowStockMonitorJob) lowStockItems(ctx context.Context) ([]queries.GetAllInventoryQueryResponse, error) {
	items, err := j.lister.Handle(ctx, queries.NewGetAllInventoryQuery())
	if err != nil {
		return nil, err
	}

	var flagged []queries.GetAllInventoryQueryResponse
	for _, item := range items {
		if item.Stock <= item.ReorderThreshold {
			flagged = append(flagged, item)
		}
	}
	return flagged, nil
}
