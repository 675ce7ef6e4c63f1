package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetAllInventoryQueryIsNotConstructed = errors.New(
	"GetAllInventoryQuery must be created via NewGetAllInventoryQuery constructor",
)

// GetAllInventoryQuery retrieves the whole warehouse catalog.
type GetAllInventoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllInventoryQuery creates a query to list the catalog.
func NewGetAllInventoryQuery() GetAllInventoryQuery {
	return GetAllInventoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetAllInventoryQueryIsNotConstructed)
}

// GetAllInventoryQueryResponse represents one catalog row.
type GetAllInventoryQueryResponse struct {
	ID               kernel.UUID
	Name             string
	Stock            int
	ReorderThreshold int
	LastUpdatedAt    time.Time
}
