package commands

import (
	"context"
)

// DeleteInventoryItemCommandHandler removes items from the catalog.
type DeleteInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewDeleteInventoryItemCommandHandler creates a handler for catalog
// removals.
func NewDeleteInventoryItemCommandHandler(uowFactory InventoryUoWFactory) DeleteInventoryItemCommandHandler {
	return DeleteInventoryItemCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the item. A missing item surfaces as an
// errs.ObjectNotFoundError from the repository.
func (h DeleteInventoryItemCommandHandler) Handle(ctx context.Context, cmd DeleteInventoryItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items := uow.InventoryRepository()

	if _, err := items.Get(ctx, cmd.ItemID()); err != nil {
		return err
	}

	if err := items.Delete(ctx, cmd.ItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
