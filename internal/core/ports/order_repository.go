// Package ports defines repository interfaces for the warehouse domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order record. The caller is responsible for ensuring
	// the order no longer holds a robot assignment; the coordinator rejects
	// deletion of active orders before reaching the repository.
	Delete(ctx context.Context, id kernel.UUID) error
}
