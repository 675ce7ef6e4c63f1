package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrDeleteInventoryItemCommandIsNotConstructed = errors.New(
	"DeleteInventoryItemCommand must be created via NewDeleteInventoryItemCommand constructor",
)

// DeleteInventoryItemCommand represents a request to remove an item from the
// warehouse catalog. Orders referencing the item keep their itemID; a later
// cancellation simply finds nothing to re-credit.
type DeleteInventoryItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteInventoryItemCommand creates a command to remove a catalog item.
func NewDeleteInventoryItemCommand(itemID kernel.UUID) (DeleteInventoryItemCommand, error) {
	cmd := DeleteInventoryItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setItemID(itemID); err != nil {
		return DeleteInventoryItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteInventoryItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the item to remove.
func (c DeleteInventoryItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *DeleteInventoryItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}
