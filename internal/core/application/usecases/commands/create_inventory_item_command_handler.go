package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/kernel"
)

// CreateInventoryItemCommandHandler adds items to the warehouse catalog.
type CreateInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewCreateInventoryItemCommandHandler creates a handler for catalog
// additions.
func NewCreateInventoryItemCommandHandler(uowFactory InventoryUoWFactory) CreateInventoryItemCommandHandler {
	return CreateInventoryItemCommandHandler{uowFactory: uowFactory}
}

// Handle creates the item and returns the persisted aggregate.
func (h CreateInventoryItemCommandHandler) Handle(ctx context.Context, cmd CreateInventoryItemCommand) (*inventory.InventoryItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := inventory.NewItem(
		kernel.NewUUID(),
		cmd.Name(),
		cmd.Stock(),
		cmd.ReorderThreshold(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.InventoryRepository().Add(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
