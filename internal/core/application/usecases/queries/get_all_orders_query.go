// Package queries contains read-only operations over the warehouse state.
// Implements the query side of the CQRS architecture: handlers read the
// database directly with raw SQL and return lightweight response structs
// instead of domain aggregates.
package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order in the system, newest first.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to list all orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse represents one order row in the listing.
type GetAllOrdersQueryResponse struct {
	ID            kernel.UUID
	RobotID       kernel.UUID
	ItemID        kernel.UUID
	Quantity      int
	Location      string
	Status        string
	CreatedAt     time.Time
	LastUpdatedAt time.Time
}
