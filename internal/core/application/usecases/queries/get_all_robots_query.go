package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetAllRobotsQueryIsNotConstructed = errors.New(
	"GetAllRobotsQuery must be created via NewGetAllRobotsQuery constructor",
)

// GetAllRobotsQuery retrieves the whole robot fleet.
type GetAllRobotsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllRobotsQuery creates a query to list the fleet.
func NewGetAllRobotsQuery() GetAllRobotsQuery {
	return GetAllRobotsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllRobotsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRobotsQueryIsNotConstructed)
}

// GetAllRobotsQueryResponse represents one robot row in the fleet listing.
// CurrentOrderID is nil for robots that are free.
type GetAllRobotsQueryResponse struct {
	ID              kernel.UUID
	Status          string
	CurrentOrderID  *kernel.UUID
	CompletedOrders int
	Errors          string
	LastUpdatedAt   time.Time
}
