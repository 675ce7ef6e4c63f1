package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInventoryLister struct {
	items []queries.GetAllInventoryQueryResponse
	err   error
}

func (s *stubInventoryLister) Handle(context.Context, queries.GetAllInventoryQuery) ([]queries.GetAllInventoryQueryResponse, error) {
	return s.items, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func inventoryRow(name string, stock, threshold int) queries.GetAllInventoryQueryResponse {
	return queries.GetAllInventoryQueryResponse{
		ID:               kernel.NewUUID(),
		Name:             name,
		Stock:            stock,
		ReorderThreshold: threshold,
		LastUpdatedAt:    time.Now(),
	}
}

func TestLowStockMonitorJob_FlagsItemsAtOrBelowThreshold(t *testing.T) {
	lister := &stubInventoryLister{
		items: []queries.GetAllInventoryQueryResponse{
			inventoryRow("bolt M6", 100, 10),
			inventoryRow("nut M6", 10, 10),
			inventoryRow("washer", 3, 10),
		},
	}
	job := NewLowStockMonitorJob(lister, discardLogger())

	flagged, err := job.lowStockItems(context.Background())

	require.NoError(t, err)
	require.Len(t, flagged, 2)
	assert.Equal(t, "nut M6", flagged[0].Name)
	assert.Equal(t, "washer", flagged[1].Name)
}

func TestLowStockMonitorJob_EmptyInventory(t *testing.T) {
	job := NewLowStockMonitorJob(&stubInventoryLister{}, discardLogger())

	flagged, err := job.lowStockItems(context.Background())

	require.NoError(t, err)
	assert.Empty(t, flagged)
}

func TestLowStockMonitorJob_ScanError(t *testing.T) {
	lister := &stubInventoryLister{err: errors.New("connection refused")}
	job := NewLowStockMonitorJob(lister, discardLogger())

	_, err := job.lowStockItems(context.Background())

	assert.Error(t, err)
}

func TestLowStockMonitorJob_StartStop(t *testing.T) {
	job := NewLowStockMonitorJob(&stubInventoryLister{}, discardLogger())

	require.NoError(t, job.Start())
	job.Stop()
}
