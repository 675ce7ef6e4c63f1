package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/inventory"
)

// UpdateInventoryStockCommandHandler overwrites item stock levels.
type UpdateInventoryStockCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewUpdateInventoryStockCommandHandler creates a handler for stock
// overwrites.
func NewUpdateInventoryStockCommandHandler(uowFactory InventoryUoWFactory) UpdateInventoryStockCommandHandler {
	return UpdateInventoryStockCommandHandler{uowFactory: uowFactory}
}

// Handle sets the item's stock and returns the updated aggregate.
//
// This is a last-writer-wins overwrite. A restock racing with an admission
// debit resolves at the store level: both writes are serialized by the
// transaction, and the conditional debit re-checks stock against its own
// snapshot.
func (h UpdateInventoryStockCommandHandler) Handle(ctx context.Context, cmd UpdateInventoryStockCommand) (*inventory.InventoryItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items := uow.InventoryRepository()

	target, err := items.Get(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	if err = target.SetStock(cmd.Stock(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = items.Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}
