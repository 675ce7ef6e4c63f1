package ports

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for inventory items.
//
// DebitStock and CreditStock are relative adjustments used by the order
// coordinator as part of the admission transaction. DebitStock is a
// store-level conditional update ("subtract only if enough stock remains"),
// which keeps stock non-negative under any concurrent schedule.
type InventoryRepository interface {
	// Add persists a new inventory item to storage.
	Add(ctx context.Context, aggregate *inventory.InventoryItem) error

	// Update persists changes to an existing inventory item.
	Update(ctx context.Context, aggregate *inventory.InventoryItem) error

	// Get retrieves an inventory item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*inventory.InventoryItem, error)

	// Delete removes an inventory item record.
	Delete(ctx context.Context, id kernel.UUID) error

	// DebitStock subtracts quantity from the item's stock, but only if the
	// remaining stock would stay non-negative. A condition miss is surfaced
	// as an inventory.InsufficientStockError carrying the observed stock
	// level; a missing item is surfaced as an errs.ObjectNotFoundError.
	DebitStock(ctx context.Context, itemID kernel.UUID, quantity int, now time.Time) error

	// CreditStock adds quantity back to the item's stock. Used when a
	// canceled order releases its debit. Crediting an item that no longer
	// exists is a no-op: cancellation must succeed even after the item was
	// removed from the catalog.
	CreditStock(ctx context.Context, itemID kernel.UUID, quantity int, now time.Time) error
}
