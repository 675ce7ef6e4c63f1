package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery retrieves fulfillment throughput counters: how many
// orders reached COMPLETED and how many were CANCELED.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query for the throughput counters.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryResponse carries the two terminal-status counts.
type GetOrderStatsQueryResponse struct {
	CompletedOrders int
	CanceledOrders  int
}
