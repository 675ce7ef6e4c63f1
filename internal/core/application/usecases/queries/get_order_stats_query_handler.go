package queries

import (
	"context"

	"warehouse/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler computes terminal-status counts in the database
// rather than loading order rows, so the stats endpoint stays cheap as the
// order table grows.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for throughput stats.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the aggregation.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	var resp GetOrderStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = ?) AS completed,
			COUNT(*) FILTER (WHERE status = ?) AS canceled
		FROM orders
	`, order.Completed.String(), order.Canceled.String()).Row()

	if err := row.Scan(&resp.CompletedOrders, &resp.CanceledOrders); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	return resp, nil
}
